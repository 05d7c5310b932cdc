package scenes

import (
	"context"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/jobdeck/pkg/config"
	"github.com/decker502/jobdeck/pkg/game"
	"github.com/decker502/jobdeck/pkg/listing"
	"github.com/decker502/jobdeck/pkg/systems"
	"github.com/decker502/jobdeck/pkg/types"
	"github.com/decker502/jobdeck/pkg/utils"
)

// 界面文字
const (
	loadingText   = "Carregando vagas"
	noDataTitle   = "Nenhuma vaga disponível"
	noDataSubline = "Verifique sua conexão e tente novamente"
)

// noDataFadeDuration “无数据”提示淡入时长（秒）
const noDataFadeDuration = 0.4

var (
	backgroundColor = color.RGBA{R: 23, G: 23, B: 23, A: 255}
	textColor       = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	mutedTextColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// DeckSceneFactory 列表加载完成后创建卡片堆场景
type DeckSceneFactory func(items []types.ListingItem) game.Scene

type loadResult struct {
	items []types.ListingItem
	err   error
}

// LoadingScene 加载场景
// 在后台 goroutine 中获取职位列表，成功后切换到卡片堆场景，失败时显示“无数据”
type LoadingScene struct {
	sceneManager *game.SceneManager
	fonts        *systems.CardFonts
	newDeckScene DeckSceneFactory

	cancel  context.CancelFunc
	results chan loadResult

	elapsedTime float64
	failedTime  float64 // 失败后经过的时间，用于提示淡入
	err         error   // 非 nil 表示加载失败
}

// NewLoadingScene 创建加载场景并立即开始获取列表
func NewLoadingScene(sm *game.SceneManager, source listing.Source, fonts *systems.CardFonts, factory DeckSceneFactory) *LoadingScene {
	ctx, cancel := context.WithCancel(context.Background())

	s := &LoadingScene{
		sceneManager: sm,
		fonts:        fonts,
		newDeckScene: factory,
		cancel:       cancel,
		results:      make(chan loadResult, 1),
	}

	go func() {
		items, err := source.Fetch(ctx)
		s.results <- loadResult{items: items, err: err}
	}()

	return s
}

// Update 轮询加载结果
func (s *LoadingScene) Update(deltaTime float64) {
	s.elapsedTime += deltaTime

	if s.err != nil {
		s.failedTime += deltaTime
		return
	}

	select {
	case result := <-s.results:
		if result.err != nil {
			s.err = result.err
			log.Printf("[LoadingScene] 加载失败: %v", result.err)
			return
		}
		log.Printf("[LoadingScene] 加载完成: %d 个职位 (%.1fs)", len(result.items), s.elapsedTime)
		s.sceneManager.SwitchTo(s.newDeckScene(result.items))
	default:
	}
}

// Failed 返回加载错误，仍在加载或已成功时返回 nil
func (s *LoadingScene) Failed() error {
	return s.err
}

// Dispose 取消进行中的请求
func (s *LoadingScene) Dispose() {
	s.cancel()
}

// Draw 绘制加载动画或“无数据”提示
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	centerX := float64(config.WindowWidth) / 2
	centerY := float64(config.WindowHeight) / 2

	if s.err != nil {
		fade := utils.EaseOutCubic(s.failedTime / noDataFadeDuration)
		drawCenteredText(screen, noDataTitle, s.fonts.Title, fadeColor(textColor, fade), centerX, centerY-20)
		drawCenteredText(screen, noDataSubline, s.fonts.Small, fadeColor(mutedTextColor, fade), centerX, centerY+20)
		return
	}

	s.drawSpinner(screen, centerX, centerY-40)
	dots := strings.Repeat(".", int(s.elapsedTime*2)%4)
	drawCenteredText(screen, loadingText+dots, s.fonts.Body, textColor, centerX, centerY+20)
}

// drawSpinner 绘制旋转的圆点
func (s *LoadingScene) drawSpinner(screen *ebiten.Image, cx, cy float64) {
	const (
		dotCount = 8
		radius   = 20.0
		dotSize  = 4.0
	)
	head := int(s.elapsedTime*10) % dotCount
	for i := 0; i < dotCount; i++ {
		angle := 2 * math.Pi * float64(i) / dotCount
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)

		// 越靠近 head 越亮
		age := (head - i + dotCount) % dotCount
		alpha := uint8(255 - age*28)
		vector.DrawFilledCircle(screen, float32(x), float32(y), dotSize, color.RGBA{R: alpha, G: alpha, B: alpha, A: alpha}, true)
	}
}

// fadeColor 按 alpha 缩放颜色（预乘）
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// drawCenteredText 以 (x, y) 为中心绘制单行文本
func drawCenteredText(screen *ebiten.Image, str string, face *text.GoTextFace, clr color.Color, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
