package components

import "github.com/decker502/jobdeck/pkg/types"

// CardTransformComponent 卡片的当前可视变换
// 拖拽中由 DeckController 每帧写入，结算动画期间跟随动画位置
type CardTransformComponent struct {
	types.CardTransform
}
