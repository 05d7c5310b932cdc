package systems

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/browser"

	"github.com/decker502/jobdeck/pkg/deck"
	"github.com/decker502/jobdeck/pkg/utils"
)

// GestureTarget 接收拖拽手势的一方（*deck.DeckController）
type GestureTarget interface {
	GestureBegin() bool
	GestureMove(rawDelta float64)
	GestureEnd(finalDelta, elapsedMs float64) deck.SwipeOutcome
	GestureCancel()
}

// ApplyTarget 提供活动卡片的条目和变换，用于识别申请按钮点击（*deck.DeckController）
// GestureTarget 同时实现此接口时启用点击识别
type ApplyTarget interface {
	ActiveItem() (deck.ListingItem, bool)
	Transform() deck.CardTransform
}

// URLOpener 打开外部链接
// 用于依赖注入，支持测试时 mock；移动端由宿主注入
type URLOpener interface {
	OpenURL(url string) error
}

// URLOpenerFunc 函数形式的 URLOpener
type URLOpenerFunc func(url string) error

// OpenURL 实现 URLOpener
func (f URLOpenerFunc) OpenURL(url string) error {
	return f(url)
}

// 点击判定
const (
	// TapSlop 点击允许的最大指针位移（像素）
	TapSlop = 10
	// TapMaxMs 点击允许的最长按压时间（毫秒）
	TapMaxMs = 300.0
)

// browserOpener 桌面默认实现：用系统浏览器异步打开
type browserOpener struct{}

func (browserOpener) OpenURL(url string) error {
	go func() {
		if err := browser.OpenURL(url); err != nil {
			log.Printf("[DeckInputSystem] 打开链接失败: %s: %v", url, err)
		}
	}()
	return nil
}

// FocusSource 窗口焦点状态
// 用于依赖注入，支持测试时 mock
type FocusSource interface {
	IsFocused() bool
}

// ebitenPointerSource Ebitengine 默认实现：触摸优先，其次鼠标左键
type ebitenPointerSource struct{}

func (ebitenPointerSource) PointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y
}

type ebitenFocusSource struct{}

func (ebitenFocusSource) IsFocused() bool {
	return ebiten.IsFocused()
}

// DeckInputSystem 将指针拖拽转换为卡片堆手势
//
// 职责：
//   - 按下 → GestureBegin
//   - 按住移动 → GestureMove（只使用水平位移）
//   - 释放 → GestureEnd（携带手势持续时间）
//   - 在申请按钮上轻点 → 回弹后打开 ApplyURL
//   - 窗口失去焦点 → GestureCancel
type DeckInputSystem struct {
	target GestureTarget
	drag   *utils.DragManager
	focus  FocusSource
	opener URLOpener
	active bool // 当前拖拽已被 target 接受

	pressOnApply bool // 本次按下落在活动卡片的申请按钮上
}

// 默认输入实例
var (
	DefaultPointerSource utils.PointerSource = ebitenPointerSource{}
	DefaultFocusSource   FocusSource         = ebitenFocusSource{}
	DefaultURLOpener     URLOpener           = browserOpener{}
)

// NewDeckInputSystem 创建使用 Ebitengine 输入的手势系统
func NewDeckInputSystem(target GestureTarget) *DeckInputSystem {
	return NewDeckInputSystemWithInput(target, DefaultPointerSource, DefaultFocusSource)
}

// NewDeckInputSystemWithInput 创建带自定义输入的手势系统（用于测试）
// pointer / focus 为 nil 时使用默认实现
func NewDeckInputSystemWithInput(target GestureTarget, pointer utils.PointerSource, focus FocusSource) *DeckInputSystem {
	if pointer == nil {
		pointer = DefaultPointerSource
	}
	if focus == nil {
		focus = DefaultFocusSource
	}
	return &DeckInputSystem{
		target: target,
		drag:   utils.NewDragManager(pointer),
		focus:  focus,
		opener: DefaultURLOpener,
	}
}

// SetURLOpener 替换打开申请链接的方式，nil 时恢复默认
func (s *DeckInputSystem) SetURLOpener(opener URLOpener) {
	if opener == nil {
		opener = DefaultURLOpener
	}
	s.opener = opener
}

// Update 每帧调用一次
func (s *DeckInputSystem) Update(deltaTime float64) {
	if !s.focus.IsFocused() {
		if s.active {
			log.Printf("[DeckInputSystem] 窗口失去焦点，中断手势")
			s.drag.Cancel()
			s.target.GestureCancel()
			s.active = false
		}
		s.pressOnApply = false
		return
	}

	s.drag.Update(deltaTime)
	dx, dy := s.drag.GetDragDistance()

	switch {
	case s.drag.JustStarted():
		s.active = s.target.GestureBegin()
		s.pressOnApply = s.active && s.hitsApplyButton()

	case s.drag.IsDragging():
		if s.active {
			s.target.GestureMove(float64(dx))
		}

	case s.drag.JustEnded():
		if s.active {
			s.endGesture(dx, dy)
		}
		s.pressOnApply = false
	}
}

func (s *DeckInputSystem) endGesture(dx, dy int) {
	apply, canApply := s.target.(ApplyTarget)
	var item deck.ListingItem
	if canApply {
		item, canApply = apply.ActiveItem()
	}

	elapsedMs := s.drag.ElapsedMs()
	outcome := s.target.GestureEnd(float64(dx), elapsedMs)
	s.active = false

	if !canApply || !s.pressOnApply || outcome != deck.SnapBack {
		return
	}
	if !isTap(dx, dy, elapsedMs) {
		return
	}
	s.openApplyURL(item)
}

// hitsApplyButton 按下位置是否落在活动卡片的申请按钮上
func (s *DeckInputSystem) hitsApplyButton() bool {
	apply, ok := s.target.(ApplyTarget)
	if !ok {
		return false
	}
	info := s.drag.GetInfo()
	return ApplyButtonContains(apply.Transform(), float64(info.StartX), float64(info.StartY))
}

func (s *DeckInputSystem) openApplyURL(item deck.ListingItem) {
	if item.ApplyURL == "" {
		log.Printf("[DeckInputSystem] %q 没有申请链接", item.Title)
		return
	}
	log.Printf("[DeckInputSystem] 打开申请链接: %s", item.ApplyURL)
	if err := s.opener.OpenURL(item.ApplyURL); err != nil {
		log.Printf("[DeckInputSystem] 打开链接失败: %v", err)
	}
}

func isTap(dx, dy int, elapsedMs float64) bool {
	return math.Abs(float64(dx)) <= TapSlop && math.Abs(float64(dy)) <= TapSlop && elapsedMs <= TapMaxMs
}

// IsActive 是否有被接受的拖拽正在进行
func (s *DeckInputSystem) IsActive() bool {
	return s.active
}
