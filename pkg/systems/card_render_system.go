package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/jobdeck/pkg/components"
	"github.com/decker502/jobdeck/pkg/config"
	"github.com/decker502/jobdeck/pkg/ecs"
	"github.com/decker502/jobdeck/pkg/types"
)

// 卡片文字
const (
	LikeLabel      = "Gostei"
	DislikeLabel   = "Não Gostei"
	ApplyLabel     = "Candidatar-se"
	LocationPrefix = "Local: "
)

var (
	cardBackground  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cardBorder      = color.RGBA{R: 210, G: 210, B: 220, A: 255}
	titleColor      = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	tagColor        = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	linkColor       = color.RGBA{R: 40, G: 90, B: 200, A: 255}
	likeColor       = color.RGBA{R: 46, G: 160, B: 67, A: 255}
	dislikeColor    = color.RGBA{R: 210, G: 50, B: 50, A: 255}
	buttonColor     = color.RGBA{R: 13, G: 148, B: 136, A: 255}
	buttonTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	cardPadding    = 20.0
	titleMaxLines  = 2
	tagsMaxLines   = 2
	lineSpacing    = 1.3
	borderWidth    = 2
	overlayMarginX = 16.0
	overlayMarginY = 16.0

	applyButtonHeight = 40.0
)

// PeekProvider 提供当前卡片之后即将出现的条目
type PeekProvider func(n int) []types.ListingItem

// CardRenderSystem 卡片渲染系统
//
// 职责：
//   - 为活动卡片实体预渲染画面，存入 CardComponent.Surface（随实体释放）
//   - 按 CardTransformComponent 的平移和旋转绘制活动卡片
//   - 在活动卡片下方绘制缩小的预览卡片
//   - 按覆盖层透明度绘制 Gostei / Não Gostei 标签
type CardRenderSystem struct {
	entityManager *ecs.EntityManager
	fonts         *CardFonts
	peek          PeekProvider
	peekCount     int
	showPeek      bool

	// 预览卡片画面缓存，按卡片堆位置索引（条目 ID 可能重复）；卡片成为活动卡片时转移到实体
	peekSurfaces map[int]*ebiten.Image

	likeOverlay    *ebiten.Image
	dislikeOverlay *ebiten.Image
}

// NewCardRenderSystem 创建卡片渲染系统
//
// 参数：
//   - em: 卡片实体所在的实体管理器
//   - fonts: 卡片字体
//   - peek: 预览条目来源，可为 nil
//   - peekCount: 最多绘制的预览卡片数量
func NewCardRenderSystem(em *ecs.EntityManager, fonts *CardFonts, peek PeekProvider, peekCount int) *CardRenderSystem {
	return &CardRenderSystem{
		entityManager: em,
		fonts:         fonts,
		peek:          peek,
		peekCount:     peekCount,
		showPeek:      true,
		peekSurfaces:  make(map[int]*ebiten.Image),
	}
}

// SetShowPeek 切换预览卡片显示
func (s *CardRenderSystem) SetShowPeek(show bool) {
	s.showPeek = show
	if !show {
		s.releasePeekSurfaces(nil)
	}
}

// ShowPeek 是否显示预览卡片
func (s *CardRenderSystem) ShowPeek() bool {
	return s.showPeek
}

// Draw 绘制所有卡片
func (s *CardRenderSystem) Draw(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.CardComponent, *components.CardTransformComponent](s.entityManager)

	// 先让活动卡片接管预览缓存中的画面，再清理预览缓存
	activeIndex := -1
	for _, id := range ids {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		s.ensureSurface(card)
		activeIndex = card.Index
	}

	if s.showPeek && s.peek != nil && activeIndex >= 0 {
		s.drawPeekCards(screen, activeIndex+1)
	}

	for _, id := range ids {
		card, _ := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.CardTransformComponent](s.entityManager, id)
		s.drawActiveCard(screen, card, transform.CardTransform)
	}
}

func (s *CardRenderSystem) ensureSurface(card *components.CardComponent) {
	if card.Surface != nil {
		return
	}
	if img, ok := s.peekSurfaces[card.Index]; ok {
		card.Surface = img
		delete(s.peekSurfaces, card.Index)
		return
	}
	card.Surface = s.renderCard(card.Item)
}

// drawPeekCards 绘制活动卡片下方的预览卡片，firstIndex 为第一张预览卡片在卡片堆中的位置
func (s *CardRenderSystem) drawPeekCards(screen *ebiten.Image, firstIndex int) {
	items := s.peek(s.peekCount)

	keep := make(map[int]bool, len(items))
	for i := range items {
		keep[firstIndex+i] = true
	}
	s.releasePeekSurfaces(keep)

	// 从最底下一张开始绘制
	for i := len(items) - 1; i >= 0; i-- {
		index := firstIndex + i
		img, ok := s.peekSurfaces[index]
		if !ok {
			img = s.renderCard(items[i])
			s.peekSurfaces[index] = img
		}

		depth := float64(i + 1)
		scale := 1 - config.PeekScaleStep*depth

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-config.CardWidth/2, -config.CardHeight/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(config.CardCenterX(), config.CardCenterY+config.PeekOffsetY*depth+config.CardHeight*(1-scale)/2)
		op.ColorScale.Scale(0.92, 0.92, 0.92, 1)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}
}

func (s *CardRenderSystem) drawActiveCard(screen *ebiten.Image, card *components.CardComponent, t types.CardTransform) {
	img, ok := card.Surface.(*ebiten.Image)
	if !ok {
		return
	}

	geoM := CardGeoM(t)

	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)

	if t.LikeOverlayOpacity > 0 {
		s.drawOverlay(screen, s.likeOverlayImage(), geoM, overlayMarginX, t.LikeOverlayOpacity)
	}
	if t.DislikeOverlayOpacity > 0 {
		s.drawOverlay(screen, s.dislikeOverlayImage(), geoM, config.CardWidth-config.OverlayLabelWidth-overlayMarginX, t.DislikeOverlayOpacity)
	}
}

// CardGeoM 返回卡片画面到屏幕的几何变换
// 绕卡片中心旋转，再水平平移
func CardGeoM(t types.CardTransform) ebiten.GeoM {
	var geoM ebiten.GeoM
	geoM.Translate(-config.CardWidth/2, -config.CardHeight/2)
	geoM.Rotate(t.RotateDeg * math.Pi / 180)
	geoM.Translate(config.CardCenterX()+t.TranslateX, config.CardCenterY)
	return geoM
}

func (s *CardRenderSystem) drawOverlay(screen, overlay *ebiten.Image, cardGeoM ebiten.GeoM, offsetX, opacity float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(offsetX, overlayMarginY)
	op.GeoM.Concat(cardGeoM)
	op.ColorScale.ScaleAlpha(float32(opacity))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(overlay, op)
}

func (s *CardRenderSystem) likeOverlayImage() *ebiten.Image {
	if s.likeOverlay == nil {
		s.likeOverlay = s.renderOverlay(LikeLabel, likeColor)
	}
	return s.likeOverlay
}

func (s *CardRenderSystem) dislikeOverlayImage() *ebiten.Image {
	if s.dislikeOverlay == nil {
		s.dislikeOverlay = s.renderOverlay(DislikeLabel, dislikeColor)
	}
	return s.dislikeOverlay
}

func (s *CardRenderSystem) renderOverlay(label string, clr color.RGBA) *ebiten.Image {
	w, h := float32(config.OverlayLabelWidth), float32(config.OverlayLabelHeight)
	img := ebiten.NewImage(int(w), int(h))
	vector.StrokeRect(img, 1.5, 1.5, w-3, h-3, 3, clr, true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(w)/2, float64(h)/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(img, label, s.fonts.Body, op)
	return img
}

// renderCard 预渲染卡片画面：标题、标签行、申请链接和按钮
func (s *CardRenderSystem) renderCard(item types.ListingItem) *ebiten.Image {
	img := ebiten.NewImage(int(config.CardWidth), int(config.CardHeight))
	img.Fill(cardBackground)
	vector.StrokeRect(img, borderWidth/2, borderWidth/2, float32(config.CardWidth)-borderWidth, float32(config.CardHeight)-borderWidth, borderWidth, cardBorder, true)

	maxWidth := config.CardWidth - cardPadding*2
	y := cardPadding + config.OverlayLabelHeight + overlayMarginY

	y = s.drawLines(img, item.Title, s.fonts.Title, titleColor, maxWidth, titleMaxLines, y)
	y += s.fonts.Body.Size * 0.5
	s.drawLines(img, LocationPrefix+item.TagLine(), s.fonts.Body, tagColor, maxWidth, tagsMaxLines, y)

	// 底部按钮，链接在按钮上方
	buttonX, buttonY, buttonW, buttonH := ApplyButtonBounds()
	vector.DrawFilledRect(img, float32(buttonX), float32(buttonY), float32(buttonW), float32(buttonH), buttonColor, true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(buttonX+buttonW/2, buttonY+buttonH/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(buttonTextColor)
	text.Draw(img, ApplyLabel, s.fonts.Body, op)

	if item.ApplyURL != "" {
		linkY := buttonY - s.fonts.Small.Size*lineSpacing - 4
		s.drawLines(img, item.ApplyURL, s.fonts.Small, linkColor, maxWidth, 1, linkY)
	}
	return img
}

// ApplyButtonBounds 申请按钮在卡片局部坐标中的位置和大小
func ApplyButtonBounds() (x, y, w, h float64) {
	return cardPadding, config.CardHeight - cardPadding - applyButtonHeight, config.CardWidth - cardPadding*2, applyButtonHeight
}

// ApplyButtonContains 屏幕坐标 (x, y) 是否落在按 t 变换后的申请按钮内
func ApplyButtonContains(t types.CardTransform, x, y float64) bool {
	geoM := CardGeoM(t)
	if !geoM.IsInvertible() {
		return false
	}
	geoM.Invert()
	lx, ly := geoM.Apply(x, y)

	bx, by, bw, bh := ApplyButtonBounds()
	return lx >= bx && lx <= bx+bw && ly >= by && ly <= by+bh
}

// drawLines 自动换行绘制文本，返回下一行的 Y 坐标
func (s *CardRenderSystem) drawLines(dst *ebiten.Image, str string, face *text.GoTextFace, clr color.Color, maxWidth float64, maxLines int, y float64) float64 {
	lineHeight := face.Size * lineSpacing
	for _, line := range LimitLines(WrapText(str, FaceMeasure(face), maxWidth), maxLines) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(cardPadding, y)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(dst, line, face, op)
		y += lineHeight
	}
	return y
}

// releasePeekSurfaces 释放不在 keep 中的预览画面，keep 为 nil 时全部释放
func (s *CardRenderSystem) releasePeekSurfaces(keep map[int]bool) {
	for index, img := range s.peekSurfaces {
		if keep[index] {
			continue
		}
		img.Deallocate()
		delete(s.peekSurfaces, index)
	}
}

// Dispose 释放渲染系统持有的画面（活动卡片画面随实体释放）
func (s *CardRenderSystem) Dispose() {
	s.releasePeekSurfaces(nil)
	if s.likeOverlay != nil {
		s.likeOverlay.Deallocate()
		s.likeOverlay = nil
	}
	if s.dislikeOverlay != nil {
		s.dislikeOverlay.Deallocate()
		s.dislikeOverlay = nil
	}
}
