// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/jobdeck/pkg/config"
	"github.com/decker502/jobdeck/pkg/embedded"
	"github.com/decker502/jobdeck/pkg/game"
	"github.com/decker502/jobdeck/pkg/listing"
	"github.com/decker502/jobdeck/pkg/scenes"
	"github.com/decker502/jobdeck/pkg/systems"
	"github.com/decker502/jobdeck/pkg/types"
	"github.com/decker502/jobdeck/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "jobdeck"

// embeddedConfigPath 嵌入的默认配置
const embeddedConfigPath = "data/deck.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空则使用嵌入的 data/deck.yaml
	ConfigPath string
	// SourceURL 覆盖配置中的远程职位接口
	SourceURL string
	// Offline 只使用嵌入的职位列表，不访问网络
	Offline bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	deckConfig, err := LoadConfig(cfg)
	if err != nil {
		return nil, err
	}

	fonts, err := systems.LoadCardFonts()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	settings := game.NewSettingsManager(openStorage())
	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	decisionSink := game.NewLogDecisionSink(nil)
	source := BuildSource(deckConfig, cfg.Offline)

	sceneManager := game.NewSceneManager()
	loadingScene := scenes.NewLoadingScene(sceneManager, source, fonts, func(items []types.ListingItem) game.Scene {
		return scenes.NewDeckScene(items, deckConfig, settings, decisionSink, fonts)
	})
	sceneManager.SwitchTo(loadingScene)

	log.Printf("[App] 启动完成 (offline=%v, source=%s)", cfg.Offline, deckConfig.Source.URL)

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

// LoadConfig 加载卡片堆配置
// 优先使用 cfg.ConfigPath；否则读取嵌入的 data/deck.yaml，不存在时使用默认值
func LoadConfig(cfg Config) (*config.DeckConfig, error) {
	var deckConfig *config.DeckConfig

	switch {
	case cfg.ConfigPath != "":
		loaded, err := config.LoadDeckConfig(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("配置加载失败: %w", err)
		}
		deckConfig = loaded
		log.Printf("[Config] 加载配置文件: %s", cfg.ConfigPath)

	case embedded.Exists(embeddedConfigPath):
		data, err := embedded.ReadFile(embeddedConfigPath)
		if err != nil {
			return nil, fmt.Errorf("读取嵌入配置失败: %w", err)
		}
		parsed, err := config.ParseDeckConfig(data)
		if err != nil {
			return nil, fmt.Errorf("嵌入配置无效: %w", err)
		}
		deckConfig = parsed
		log.Printf("[Config] 加载嵌入配置: %s", embeddedConfigPath)

	default:
		deckConfig = config.DefaultDeckConfig()
		log.Printf("[Config] 使用默认配置")
	}

	if cfg.SourceURL != "" {
		deckConfig.Source.URL = cfg.SourceURL
		if err := deckConfig.Validate(); err != nil {
			return nil, fmt.Errorf("配置无效: %w", err)
		}
	}

	return deckConfig, nil
}

// BuildSource 根据配置创建职位数据源
// 在线模式下远程接口失败时回退到嵌入的职位列表
func BuildSource(deckConfig *config.DeckConfig, offline bool) listing.Source {
	fixture := listing.NewYAMLSource(deckConfig.Source.Fixture, embedded.ReadFile)
	if offline || deckConfig.Source.URL == "" {
		return fixture
	}

	timeout := time.Duration(deckConfig.Source.Timeout * float64(time.Second))
	remote := listing.NewHTTPSource(deckConfig.Source.URL, timeout)
	return listing.NewFallbackSource(remote, fixture)
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置仅保存在内存中）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata 初始化失败: %v (设置不会保存)", err)
		return nil
	}
	return manager
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Shutdown 释放当前场景，程序退出前调用
func (a *App) Shutdown() {
	a.sceneManager.Shutdown()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
