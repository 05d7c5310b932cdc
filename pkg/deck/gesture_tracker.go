package deck

// GestureTracker 手势跟踪器
// 将连续的指针拖拽转换为一维水平位移，并在松手时给出终止采样
//
// 每个 DeckController 持有自己的跟踪器，不存在进程级单例。
// Update 处于热路径（每帧调用），只做值运算，不分配内存。
type GestureTracker struct {
	tracking     bool
	origin       float64 // 手势起点（宿主上报的累计平移量基准）
	displacement float64 // 当前相对起点的位移
}

// NewGestureTracker 创建手势跟踪器
func NewGestureTracker() *GestureTracker {
	return &GestureTracker{}
}

// Begin 开始跟踪新手势并重置起点
// 正在跟踪时再次调用视为先取消再开始
func (g *GestureTracker) Begin() GestureSample {
	if g.tracking {
		g.Cancel()
	}
	g.tracking = true
	g.origin = 0
	g.displacement = 0
	return GestureSample{Phase: PhaseBegan}
}

// Update 上报相对起点的位移
//
// 参数：
//   - rawDelta: 宿主上报的自按下以来的累计水平平移量
//
// 返回：
//   - GestureSample: Phase 为 PhaseChanged；未在跟踪时为 PhaseCancelled
func (g *GestureTracker) Update(rawDelta float64) GestureSample {
	if !g.tracking {
		return GestureSample{Phase: PhaseCancelled}
	}
	g.displacement = rawDelta - g.origin
	return GestureSample{DisplacementX: g.displacement, Phase: PhaseChanged}
}

// End 结束手势并计算终止速度
//
// 速度 = finalDelta / max(elapsedMs, 1)，单位为像素/毫秒
//
// 参数：
//   - finalDelta: 松手时的累计平移量
//   - elapsedMs: 手势持续时间（毫秒）
func (g *GestureTracker) End(finalDelta, elapsedMs float64) GestureSample {
	if !g.tracking {
		return GestureSample{Phase: PhaseCancelled}
	}
	g.tracking = false
	g.displacement = finalDelta - g.origin

	if elapsedMs < 1 {
		elapsedMs = 1
	}
	return GestureSample{
		DisplacementX: g.displacement,
		VelocityX:     g.displacement / elapsedMs,
		HasVelocity:   true,
		Phase:         PhaseEnded,
	}
}

// Cancel 手势被系统中断
// 返回携带最后位移的 PhaseCancelled 采样，控制器按回弹处理
func (g *GestureTracker) Cancel() GestureSample {
	sample := GestureSample{DisplacementX: g.displacement, Phase: PhaseCancelled}
	g.tracking = false
	return sample
}

// IsTracking 是否正在跟踪手势
func (g *GestureTracker) IsTracking() bool {
	return g.tracking
}

// Displacement 当前位移
func (g *GestureTracker) Displacement() float64 {
	return g.displacement
}
