// Package deck 实现可滑动职位卡片堆的核心状态机
//
// 卡片堆由五个部分组成（从叶子到根）：
//   - GestureTracker: 将拖拽转换为一维水平位移信号
//   - CommitClassifier: 根据终止位移（可选速度）判定提交方向或回弹
//   - CardAnimator: 拖拽中的实时变换和松手后的结算动画
//   - DeckCursor: 有序条目和只增不减的游标
//   - DeckController: 编排以上部分的显式状态机
//
// 本包不做任何渲染，也不关心条目如何获取、决策如何处理。
// 所有方法都在宿主的帧循环中单线程调用，不需要加锁。
package deck

import "github.com/decker502/jobdeck/pkg/types"

// ListingItem 职位条目，见 types.ListingItem
type ListingItem = types.ListingItem

// GesturePhase 手势阶段
type GesturePhase int

const (
	// PhaseBegan 手势开始
	PhaseBegan GesturePhase = iota
	// PhaseChanged 拖拽中位移变化
	PhaseChanged
	// PhaseEnded 手势正常结束（松手）
	PhaseEnded
	// PhaseCancelled 手势被系统中断
	PhaseCancelled
)

// String 返回阶段名称（用于日志）
func (p GesturePhase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// GestureSample 单个手势采样
// 拖拽过程中高频产生，消费后即丢弃
type GestureSample struct {
	// DisplacementX 相对手势起点的水平位移（像素）
	DisplacementX float64
	// VelocityX 松手时的水平速度（像素/毫秒），仅在 HasVelocity 为 true 时有效
	VelocityX float64
	// HasVelocity 是否携带速度
	HasVelocity bool
	// Phase 手势阶段
	Phase GesturePhase
}

// SwipeOutcome 滑动判定结果（派生值，从不存储）
type SwipeOutcome int

const (
	// SnapBack 未越过阈值，卡片回弹到原位
	SnapBack SwipeOutcome = iota
	// CommitRight 向右提交（喜欢/申请）
	CommitRight
	// CommitLeft 向左提交（不喜欢/跳过）
	CommitLeft
)

// String 返回判定结果名称（用于日志）
func (o SwipeOutcome) String() string {
	switch o {
	case CommitRight:
		return "commit-right"
	case CommitLeft:
		return "commit-left"
	default:
		return "snap-back"
	}
}

// IsCommit 是否为提交结果
func (o SwipeOutcome) IsCommit() bool {
	return o == CommitRight || o == CommitLeft
}

// Direction 决策方向
type Direction int

const (
	// Right 向右（接受）
	Right Direction = iota
	// Left 向左（拒绝）
	Left
)

// String 返回方向名称
func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// Decision 对外发出的决策
// 由 DeckController 生成，之后归外部协作者所有；卡片堆不保留历史
type Decision struct {
	Item      ListingItem
	Direction Direction
}

// DecisionSink 决策接收方
// 每次提交在游标前进的同一时刻同步调用 HandleDecision
type DecisionSink interface {
	HandleDecision(decision Decision)
}

// DecisionSinkFunc 函数适配器
type DecisionSinkFunc func(decision Decision)

// HandleDecision 实现 DecisionSink 接口
func (f DecisionSinkFunc) HandleDecision(decision Decision) {
	f(decision)
}

// CardTransform 卡片的可视变换，见 types.CardTransform
type CardTransform = types.CardTransform
