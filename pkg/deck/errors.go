package deck

import "errors"

var (
	// ErrOutOfRange 在已耗尽的卡片堆上调用 Advance
	// 属于调用方违反契约，正确接线的状态机不会触发
	ErrOutOfRange = errors.New("deck cursor out of range")

	// ErrAnimationAborted 结算动画被取消（卸载或新手势打断）
	// 控制器静默吞掉，无用户可见影响
	ErrAnimationAborted = errors.New("settle animation aborted")
)
