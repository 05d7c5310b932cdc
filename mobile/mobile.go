//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	cp -r data mobile/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.jobdeck -o build/android/jobdeck.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	cp -r data mobile/ && ebitenmobile bind -target ios -tags mobile -o build/ios/JobDeck.xcframework -v ./mobile
package mobile

import (
	"errors"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/jobdeck/pkg/app"
	"github.com/decker502/jobdeck/pkg/embedded"
	"github.com/decker502/jobdeck/pkg/systems"
)

// URLOpener 由原生宿主实现（Android Intent / iOS UIApplication.open）
type URLOpener interface {
	OpenURL(url string)
}

var (
	openerMu sync.Mutex
	opener   URLOpener
)

var errNoURLOpener = errors.New("no URL opener registered by host")

// SetURLOpener 注册打开申请链接的宿主实现，可在任意时刻调用
func SetURLOpener(o URLOpener) {
	openerMu.Lock()
	defer openerMu.Unlock()
	opener = o
}

func openURL(url string) error {
	openerMu.Lock()
	o := opener
	openerMu.Unlock()

	if o == nil {
		return errNoURLOpener
	}
	o.OpenURL(url)
	return nil
}

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)
	systems.DefaultURLOpener = systems.URLOpenerFunc(openURL)

	jobApp, err := app.NewApp(app.Config{
		Verbose: true,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(jobApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
