package utils

// ============================================================================
// 拖拽状态管理器 - 将指针按下/移动/释放转换为一次完整的拖拽
// ============================================================================

// PointerSource 指针输入源
// 由宿主提供（Ebitengine 实现见 systems 包），测试时可 mock
type PointerSource interface {
	// PointerState 返回当前帧指针是否按下以及位置（触摸优先，其次鼠标）
	PointerState() (pressed bool, x, y int)
}

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
	// DragStateCancelled 拖拽被中断（例如窗口失去焦点）
	DragStateCancelled
)

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标），释放后保留最后位置
	CurrentX, CurrentY int
	// ElapsedSeconds 自按下以来经过的时间
	ElapsedSeconds float64
}

// DragManager 拖拽管理器
// 每个场景持有自己的实例，不使用全局单例
type DragManager struct {
	source      PointerSource
	info        DragInfo
	waitRelease bool // 中断后等待指针释放
}

// NewDragManager 创建拖拽管理器
func NewDragManager(source PointerSource) *DragManager {
	return &DragManager{source: source}
}

// Update 更新拖拽状态（每帧调用一次）
//
// Ended / Cancelled 状态只持续一帧，下一帧重置
func (dm *DragManager) Update(deltaTime float64) {
	pressed, x, y := dm.source.PointerState()

	switch dm.info.State {
	case DragStateNone:
		if dm.waitRelease {
			dm.waitRelease = pressed
			return
		}
		if pressed {
			dm.info = DragInfo{
				State:    DragStateStarted,
				StartX:   x,
				StartY:   y,
				CurrentX: x,
				CurrentY: y,
			}
		}

	case DragStateStarted, DragStateDragging:
		dm.info.ElapsedSeconds += deltaTime
		if !pressed {
			// 触摸释放后位置不可靠，保留最后一次按下时的位置
			dm.info.State = DragStateEnded
			return
		}
		dm.info.State = DragStateDragging
		dm.info.CurrentX, dm.info.CurrentY = x, y

	case DragStateEnded, DragStateCancelled:
		dm.Reset()
	}
}

// Cancel 中断当前拖拽
// 仅在拖拽进行中有效；中断后需等指针释放才会开始新的拖拽
func (dm *DragManager) Cancel() {
	if dm.info.State == DragStateStarted || dm.info.State == DragStateDragging {
		dm.info.State = DragStateCancelled
		dm.waitRelease = true
	}
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{State: DragStateNone}
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// JustStarted 是否刚开始拖拽（本帧）
func (dm *DragManager) JustStarted() bool {
	return dm.info.State == DragStateStarted
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// JustEnded 是否刚结束拖拽（本帧）
func (dm *DragManager) JustEnded() bool {
	return dm.info.State == DragStateEnded
}

// JustCancelled 是否刚被中断（本帧）
func (dm *DragManager) JustCancelled() bool {
	return dm.info.State == DragStateCancelled
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dm *DragManager) GetDragDistance() (dx, dy int) {
	return dm.info.CurrentX - dm.info.StartX, dm.info.CurrentY - dm.info.StartY
}

// ElapsedMs 拖拽持续时间（毫秒）
func (dm *DragManager) ElapsedMs() float64 {
	return dm.info.ElapsedSeconds * 1000
}
