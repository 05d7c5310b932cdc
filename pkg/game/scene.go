package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents an application scene (loading screen, card deck, end-of-list screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，场景被替换或程序退出时调用 Dispose() 释放资源
//
// 卡片堆场景借此卸载控制器：取消进行中的动画并销毁卡片实体
type Disposable interface {
	Dispose()
}
