package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/jobdeck/pkg/config"
	"github.com/decker502/jobdeck/pkg/deck"
	"github.com/decker502/jobdeck/pkg/ecs"
	"github.com/decker502/jobdeck/pkg/game"
	"github.com/decker502/jobdeck/pkg/systems"
	"github.com/decker502/jobdeck/pkg/types"
	"github.com/decker502/jobdeck/pkg/utils"
)

const (
	endTitle = "Fim das vagas!"
	endStats = "Gostei: %d   Não Gostei: %d"
)

// KeyInput 键盘输入接口
// 用于依赖注入，支持测试时 mock
type KeyInput interface {
	IsKeyJustPressed(key ebiten.Key) bool
}

type ebitenKeyInput struct{}

func (ebitenKeyInput) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// DeckSceneInput 卡片堆场景的输入源
type DeckSceneInput struct {
	Pointer utils.PointerSource
	Focus   systems.FocusSource
	Keys    KeyInput
	Opener  systems.URLOpener // 打开申请链接
}

// DeckScene 卡片堆场景
//
// 持有实体管理器、DeckController、输入系统和渲染系统；
// 场景被替换或程序退出时 Dispose() 卸载控制器并释放所有卡片画面。
//
// 快捷键：
//   - F: 切换甩动提交
//   - P: 切换预览卡片
type DeckScene struct {
	entityManager *ecs.EntityManager
	controller    *deck.DeckController
	inputSystem   *systems.DeckInputSystem
	renderSystem  *systems.CardRenderSystem
	settings      *game.SettingsManager
	history       *game.HistoryDecisionSink
	fonts         *systems.CardFonts
	keys          KeyInput
	disposed      bool
}

// NewDeckScene 创建使用 Ebitengine 输入的卡片堆场景
//
// 参数：
//   - items: 已获取的职位条目
//   - cfg: 卡片堆配置
//   - settings: 用户设置，可为 nil
//   - sink: 决策接收方，可为 nil
//   - fonts: 卡片字体
func NewDeckScene(items []types.ListingItem, cfg *config.DeckConfig, settings *game.SettingsManager, sink deck.DecisionSink, fonts *systems.CardFonts) *DeckScene {
	return NewDeckSceneWithInput(items, cfg, settings, sink, fonts, DeckSceneInput{})
}

// NewDeckSceneWithInput 创建带自定义输入的卡片堆场景（用于测试）
// input 中为 nil 的字段使用 Ebitengine 默认实现
func NewDeckSceneWithInput(items []types.ListingItem, cfg *config.DeckConfig, settings *game.SettingsManager, sink deck.DecisionSink, fonts *systems.CardFonts, input DeckSceneInput) *DeckScene {
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}
	prefs := settings.GetSettings()

	em := ecs.NewEntityManager()
	history := game.NewHistoryDecisionSink(sink)

	ctrlConfig := cfg.ControllerConfig(config.WindowWidth)
	ctrlConfig.Classifier.FlingEnabled = cfg.FlingEnabled || prefs.FlingEnabled
	controller := deck.NewDeckController(em, items, ctrlConfig, history)

	inputSystem := systems.NewDeckInputSystemWithInput(controller, input.Pointer, input.Focus)
	inputSystem.SetURLOpener(input.Opener)

	keys := input.Keys
	if keys == nil {
		keys = ebitenKeyInput{}
	}

	renderSystem := systems.NewCardRenderSystem(em, fonts, controller.PeekWindow, cfg.PeekCount)
	renderSystem.SetShowPeek(prefs.ShowPeek)

	log.Printf("[DeckScene] 创建: %d 个职位, 甩动=%v, 预览=%v", len(items), controller.FlingEnabled(), prefs.ShowPeek)

	return &DeckScene{
		entityManager: em,
		controller:    controller,
		inputSystem:   inputSystem,
		renderSystem:  renderSystem,
		settings:      settings,
		history:       history,
		fonts:         fonts,
		keys:          keys,
	}
}

// Update 处理快捷键、手势和结算动画
func (s *DeckScene) Update(deltaTime float64) {
	if s.disposed {
		return
	}

	if s.keys.IsKeyJustPressed(ebiten.KeyF) {
		s.ToggleFling()
	}
	if s.keys.IsKeyJustPressed(ebiten.KeyP) {
		s.TogglePeek()
	}

	s.inputSystem.Update(deltaTime)
	s.controller.Update(deltaTime)
}

// ToggleFling 切换甩动提交并保存设置
func (s *DeckScene) ToggleFling() {
	enabled := !s.controller.FlingEnabled()
	s.controller.SetFlingEnabled(enabled)
	s.settings.SetFlingEnabled(enabled)
	s.saveSettings()
	log.Printf("[DeckScene] 甩动提交: %v", enabled)
}

// TogglePeek 切换预览卡片并保存设置
func (s *DeckScene) TogglePeek() {
	show := !s.renderSystem.ShowPeek()
	s.renderSystem.SetShowPeek(show)
	s.settings.SetShowPeek(show)
	s.saveSettings()
	log.Printf("[DeckScene] 预览卡片: %v", show)
}

func (s *DeckScene) saveSettings() {
	if err := s.settings.Save(); err != nil {
		log.Printf("[DeckScene] Warning: %v", err)
	}
}

// Controller 返回卡片堆控制器
func (s *DeckScene) Controller() *deck.DeckController {
	return s.controller
}

// Counts 返回本次会话右滑与左滑的数量
func (s *DeckScene) Counts() (liked, disliked int) {
	return s.history.Counts()
}

// Dispose 卸载控制器并释放画面，可重复调用
func (s *DeckScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.controller.Unmount()
	s.renderSystem.Dispose()
	s.entityManager.DestroyAll()
	log.Printf("[DeckScene] 已释放")
}

// Draw 绘制卡片或结束页
func (s *DeckScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	centerX := float64(config.WindowWidth) / 2
	centerY := float64(config.WindowHeight) / 2

	if s.controller.IsExhausted() {
		liked, disliked := s.Counts()
		drawCenteredText(screen, endTitle, s.fonts.Title, textColor, centerX, centerY-20)
		drawCenteredText(screen, fmt.Sprintf(endStats, liked, disliked), s.fonts.Body, mutedTextColor, centerX, centerY+20)
		return
	}

	s.renderSystem.Draw(screen)

	progress := fmt.Sprintf("%d / %d", s.controller.Cursor()+1, s.controller.Len())
	drawCenteredText(screen, progress, s.fonts.Small, mutedTextColor, centerX, config.CardCenterY+config.CardHeight/2+60)

	if !utils.IsMobile() {
		ebitenutil.DebugPrintAt(screen, s.hintLine(), 8, config.WindowHeight-20)
	}
}

func (s *DeckScene) hintLine() string {
	return fmt.Sprintf("F: fling [%s]  P: peek [%s]", onOff(s.controller.FlingEnabled()), onOff(s.renderSystem.ShowPeek()))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
