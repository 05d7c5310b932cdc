package components

import "github.com/decker502/jobdeck/pkg/types"

// CardSurface 卡片的预渲染画面
// 由渲染系统在首次绘制时创建（*ebiten.Image 满足此接口），
// 卡片被移出时随实体一起释放
type CardSurface interface {
	Deallocate()
}

// CardComponent 卡片实体的数据
// 每张活动卡片对应一个实体，由 DeckController 在卡片成为顶部卡片时创建，
// 在卡片被移出或卡片堆卸载时销毁
type CardComponent struct {
	// Item 卡片展示的职位条目
	Item types.ListingItem
	// Index 条目在卡片堆中的位置
	Index int
	// Surface 预渲染画面，可为 nil（尚未绘制）
	Surface CardSurface
}

// Dispose 释放预渲染画面
func (c *CardComponent) Dispose() {
	if c.Surface != nil {
		c.Surface.Deallocate()
		c.Surface = nil
	}
}
