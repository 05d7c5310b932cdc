package deck

import (
	"fmt"
	"log"

	"github.com/decker502/jobdeck/pkg/components"
	"github.com/decker502/jobdeck/pkg/ecs"
	"github.com/decker502/jobdeck/pkg/entities"
)

// DeckState 卡片堆状态
type DeckState int

const (
	// StateIdle 无活动手势，卡片静止在原位
	StateIdle DeckState = iota
	// StateDragging 正在跟踪拖拽
	StateDragging
	// StateSettling 松手后的结算动画进行中
	StateSettling
	// StateExhausted 所有卡片都已移出，不再接受手势
	StateExhausted
	// StateUnmounted 宿主视图已卸载，不再触发任何回调
	StateUnmounted
)

// String 返回状态名称（用于日志）
func (s DeckState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDragging:
		return "Dragging"
	case StateSettling:
		return "Settling"
	case StateExhausted:
		return "Exhausted"
	case StateUnmounted:
		return "Unmounted"
	default:
		return "Unknown"
	}
}

// ControllerConfig 控制器参数
type ControllerConfig struct {
	// ViewportWidth 视口宽度（传给判定器）
	ViewportWidth float64
	// Classifier 提交判定器
	Classifier CommitClassifier
	// Animator 卡片动画参数
	Animator AnimatorConfig
}

// DefaultControllerConfig 返回指定视口宽度下的默认参数
// 参考宽度 W 取视口宽度
func DefaultControllerConfig(viewportWidth float64) ControllerConfig {
	return ControllerConfig{
		ViewportWidth: viewportWidth,
		Classifier:    NewCommitClassifier(DefaultCommitThreshold),
		Animator:      DefaultAnimatorConfig(viewportWidth),
	}
}

// DeckController 卡片堆控制器
//
// 状态转换：
//   - Idle + 手势开始 -> Dragging
//   - Dragging + 移动 -> Dragging（更新跟踪器，重算变换）
//   - Dragging + 松手 -> Settling（判定后播放结算动画）
//   - Dragging + 中断 -> Settling（强制回弹）
//   - Settling + 提交动画完成 -> Idle，游标前进并发出决策
//   - Settling + 回弹动画完成 -> Idle，游标不变
//   - Settling + 手势开始 -> 取消动画，卡片回到原位，进入 Dragging
//   - 任意状态 + 卸载 -> Unmounted
//
// 游标前进后若已耗尽则进入 Exhausted，之后的手势全部忽略。
//
// 每张活动卡片是 EntityManager 中的一个实体（CardComponent + CardTransformComponent），
// 卡片被移出或卸载时销毁，动画状态不会在每帧重新分配。
type DeckController struct {
	state      DeckState
	cursor     *DeckCursor
	tracker    *GestureTracker
	classifier CommitClassifier
	animator   *CardAnimator
	sink       DecisionSink

	viewportWidth float64
	entityManager *ecs.EntityManager
	activeCard    ecs.EntityID
	settle        *SettleTask
}

// NewDeckController 在条目列表到达后创建控制器
//
// 参数：
//   - em: 卡片实体存储，为 nil 时创建私有实例
//   - items: 已获取的条目列表（控制器持有副本）
//   - config: 判定和动画参数
//   - sink: 决策接收方，可为 nil
func NewDeckController(em *ecs.EntityManager, items []ListingItem, config ControllerConfig, sink DecisionSink) *DeckController {
	if em == nil {
		em = ecs.NewEntityManager()
	}

	c := &DeckController{
		cursor:        NewDeckCursor(items),
		tracker:       NewGestureTracker(),
		classifier:    config.Classifier,
		animator:      NewCardAnimator(config.Animator),
		sink:          sink,
		viewportWidth: config.ViewportWidth,
		entityManager: em,
		activeCard:    ecs.InvalidEntity,
	}

	if c.cursor.IsExhausted() {
		c.state = StateExhausted
	} else {
		c.spawnActiveCard()
		c.state = StateIdle
	}

	log.Printf("[DeckController] 创建卡片堆: %d 个条目, 状态 %s", c.cursor.Len(), c.state)
	return c
}

// GestureBegin 手势开始
//
// 结算动画进行中时先取消动画（按回弹处理，游标不变），再开始新的拖拽。
//
// 返回：
//   - bool: 是否接受了手势（Exhausted / Unmounted 时为 false）
func (c *DeckController) GestureBegin() bool {
	switch c.state {
	case StateExhausted, StateUnmounted:
		return false
	case StateSettling:
		c.interruptSettle()
	}

	c.tracker.Begin()
	c.setTransform(c.animator.RenderTransform(0))
	c.state = StateDragging
	return true
}

// GestureMove 拖拽中的位移更新（每帧调用）
// 非 Dragging 状态下忽略
func (c *DeckController) GestureMove(rawDelta float64) {
	if c.state != StateDragging {
		return
	}
	sample := c.tracker.Update(rawDelta)
	c.setTransform(c.animator.RenderTransform(sample.DisplacementX))
}

// GestureEnd 松手
//
// 参数：
//   - finalDelta: 松手时的累计平移量
//   - elapsedMs: 手势持续时间（毫秒）
//
// 返回：
//   - SwipeOutcome: 判定结果；非 Dragging 状态下忽略并返回 SnapBack
func (c *DeckController) GestureEnd(finalDelta, elapsedMs float64) SwipeOutcome {
	if c.state != StateDragging {
		return SnapBack
	}

	sample := c.tracker.End(finalDelta, elapsedMs)
	c.setTransform(c.animator.RenderTransform(sample.DisplacementX))
	outcome := c.classifier.Classify(sample, c.viewportWidth)
	log.Printf("[DeckController] 松手: 位移 %.1f, 速度 %.3f px/ms -> %s",
		sample.DisplacementX, sample.VelocityX, outcome)

	c.startSettle(outcome, sample.DisplacementX)
	return outcome
}

// GestureCancel 手势被系统中断
// 等同于回弹，不经过判定器
func (c *DeckController) GestureCancel() {
	if c.state != StateDragging {
		return
	}
	sample := c.tracker.Cancel()
	log.Printf("[DeckController] 手势中断: 位移 %.1f -> 回弹", sample.DisplacementX)
	c.startSettle(SnapBack, sample.DisplacementX)
}

// Update 推进结算动画
//
// 参数：
//   - deltaTime: 距上一帧的时间（秒）
func (c *DeckController) Update(deltaTime float64) {
	if c.state != StateSettling || c.settle == nil {
		return
	}

	task := c.settle
	if !task.Update(deltaTime) {
		c.setTransform(c.animator.RenderTransform(task.X()))
	}
}

// Unmount 宿主视图卸载
// 同步取消跟踪器和动画任务，释放活动卡片实体；之后不再触发任何回调
func (c *DeckController) Unmount() {
	if c.state == StateUnmounted {
		return
	}

	if c.tracker.IsTracking() {
		c.tracker.Cancel()
	}
	if c.settle != nil {
		c.settle.Cancel()
		c.settle = nil
	}
	c.dismissActiveCard()
	c.state = StateUnmounted
	log.Printf("[DeckController] 已卸载 (游标 %d/%d)", c.cursor.Index(), c.cursor.Len())
}

func (c *DeckController) startSettle(outcome SwipeOutcome, fromX float64) {
	c.state = StateSettling
	c.settle = c.animator.Settle(outcome, fromX, func() {
		c.onSettleComplete(outcome)
	})
}

func (c *DeckController) interruptSettle() {
	if c.settle != nil {
		c.settle.Cancel()
		log.Printf("[DeckController] 结算动画被新手势打断 (%s): %v", c.settle.Outcome(), c.settle.Err())
		c.settle = nil
	}
	c.setTransform(c.animator.RenderTransform(0))
	c.state = StateIdle
}

func (c *DeckController) onSettleComplete(outcome SwipeOutcome) {
	c.settle = nil

	if !outcome.IsCommit() {
		c.setTransform(c.animator.RenderTransform(0))
		c.state = StateIdle
		return
	}

	item, _ := c.cursor.Current()
	if err := c.cursor.Advance(); err != nil {
		// 提交回调每张卡片只触发一次，走到这里说明状态机接线错误
		panic(fmt.Sprintf("[DeckController] invariant violated: %v", err))
	}
	c.dismissActiveCard()

	direction := Right
	if outcome == CommitLeft {
		direction = Left
	}

	if c.cursor.IsExhausted() {
		c.state = StateExhausted
		log.Printf("[DeckController] 卡片堆已耗尽 (%d 个条目)", c.cursor.Len())
	} else {
		c.spawnActiveCard()
		c.state = StateIdle
	}

	if c.sink != nil {
		c.sink.HandleDecision(Decision{Item: item, Direction: direction})
	}
}

func (c *DeckController) spawnActiveCard() {
	item, ok := c.cursor.Current()
	if !ok {
		return
	}
	c.activeCard = entities.NewCardEntity(c.entityManager, item, c.cursor.Index())
}

func (c *DeckController) dismissActiveCard() {
	if c.activeCard == ecs.InvalidEntity {
		return
	}
	c.entityManager.DestroyEntity(c.activeCard)
	c.entityManager.RemoveMarkedEntities()
	c.activeCard = ecs.InvalidEntity
}

func (c *DeckController) setTransform(t CardTransform) {
	if comp, ok := ecs.GetComponent[*components.CardTransformComponent](c.entityManager, c.activeCard); ok {
		comp.CardTransform = t
	}
}

// State 当前状态
func (c *DeckController) State() DeckState {
	return c.state
}

// Transform 活动卡片的当前变换；无活动卡片时返回零值
func (c *DeckController) Transform() CardTransform {
	if comp, ok := ecs.GetComponent[*components.CardTransformComponent](c.entityManager, c.activeCard); ok {
		return comp.CardTransform
	}
	return CardTransform{}
}

// ActiveItem 当前顶部卡片的条目
func (c *DeckController) ActiveItem() (ListingItem, bool) {
	if c.state == StateUnmounted {
		return ListingItem{}, false
	}
	return c.cursor.Current()
}

// ActiveCard 当前顶部卡片的实体ID；无活动卡片时为 ecs.InvalidEntity
func (c *DeckController) ActiveCard() ecs.EntityID {
	return c.activeCard
}

// PeekWindow 顶部卡片之后最多 n 个条目（用于预渲染下方卡片）
func (c *DeckController) PeekWindow(n int) []ListingItem {
	if c.state == StateUnmounted {
		return nil
	}
	return c.cursor.PeekWindow(n)
}

// Cursor 当前游标位置
func (c *DeckController) Cursor() int {
	return c.cursor.Index()
}

// Len 条目总数
func (c *DeckController) Len() int {
	return c.cursor.Len()
}

// IsExhausted 卡片堆是否已耗尽
func (c *DeckController) IsExhausted() bool {
	return c.cursor.IsExhausted()
}

// SetFlingEnabled 切换甩动判定（用户设置）
func (c *DeckController) SetFlingEnabled(enabled bool) {
	c.classifier.FlingEnabled = enabled
}

// FlingEnabled 是否启用甩动判定
func (c *DeckController) FlingEnabled() bool {
	return c.classifier.FlingEnabled
}
