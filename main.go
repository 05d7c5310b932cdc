package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/jobdeck/pkg/app"
	"github.com/decker502/jobdeck/pkg/config"
	"github.com/decker502/jobdeck/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	configPath = flag.String("config", "", "外部配置文件路径（默认使用嵌入的 data/deck.yaml）")
	sourceURL  = flag.String("source", "", "覆盖远程职位接口地址")
	offline    = flag.Bool("offline", false, "只使用嵌入的职位列表，不访问网络")
)

func main() {
	flag.Parse()
	os.Exit(exitCode(os.Stderr, run()))
}

// run 初始化并运行游戏循环，返回前释放场景资源
func run() error {
	embedded.Init(dataFS)

	jobApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		SourceURL:  *sourceURL,
		Offline:    *offline,
	})
	if err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}
	defer jobApp.Shutdown()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Vagas")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(jobApp); err != nil {
		return fmt.Errorf("运行失败: %w", err)
	}
	return nil
}

// exitCode 将错误写到 w 并返回退出码
// 非 verbose 模式下 log 输出被丢弃，错误直接写到 w
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(w, "%v\n", err)
	return 1
}
