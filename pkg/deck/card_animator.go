package deck

import "math"

// 动画默认参数
const (
	// DefaultMaxRotationDeg 卡片拖到参考宽度边缘时的最大旋转角度
	DefaultMaxRotationDeg = 30.0
	// DefaultOverlayRamp 覆盖层透明度从 0 渐变到 1 所需的位移
	DefaultOverlayRamp = 100.0
	// DefaultFlyOutDuration 提交时飞出屏幕的时长（秒）
	DefaultFlyOutDuration = 0.2
	// DefaultSpringFPS 回弹弹簧的固定步长帧率
	DefaultSpringFPS = 60
	// DefaultSpringFrequency 回弹弹簧角频率
	DefaultSpringFrequency = 6.3
	// DefaultSpringDamping 回弹弹簧阻尼比（小于 1 时略有过冲）
	DefaultSpringDamping = 0.55
	// DefaultSpringEpsilon 距目标小于此值（像素）时位置视为到位
	DefaultSpringEpsilon = 1.0
	// DefaultSpringVelocityEpsilon 速度低于此值（像素/秒）时视为静止
	DefaultSpringVelocityEpsilon = 5.0
	// DefaultSpringMaxDuration 回弹动画的最长时长（秒）
	DefaultSpringMaxDuration = 2.0
)

// AnimatorConfig 卡片动画参数
type AnimatorConfig struct {
	// ReferenceWidth 参考宽度 W：旋转插值范围和飞出目标
	ReferenceWidth        float64
	MaxRotationDeg        float64
	OverlayRamp           float64
	FlyOutDuration        float64
	SpringFPS             int
	SpringFrequency       float64
	SpringDamping         float64
	SpringEpsilon         float64
	SpringVelocityEpsilon float64
	SpringMaxDuration     float64
}

// DefaultAnimatorConfig 返回指定参考宽度下的默认动画参数
func DefaultAnimatorConfig(referenceWidth float64) AnimatorConfig {
	return AnimatorConfig{
		ReferenceWidth:        referenceWidth,
		MaxRotationDeg:        DefaultMaxRotationDeg,
		OverlayRamp:           DefaultOverlayRamp,
		FlyOutDuration:        DefaultFlyOutDuration,
		SpringFPS:             DefaultSpringFPS,
		SpringFrequency:       DefaultSpringFrequency,
		SpringDamping:         DefaultSpringDamping,
		SpringEpsilon:         DefaultSpringEpsilon,
		SpringVelocityEpsilon: DefaultSpringVelocityEpsilon,
		SpringMaxDuration:     DefaultSpringMaxDuration,
	}
}

// CardAnimator 卡片动画器
//
// 职责：
//   - RenderTransform: 拖拽中每帧调用的纯映射（位移 -> 平移、旋转、覆盖层透明度）
//   - Settle: 松手后播放的可取消结算动画（飞出或回弹）
type CardAnimator struct {
	config AnimatorConfig
}

// NewCardAnimator 创建卡片动画器
func NewCardAnimator(config AnimatorConfig) *CardAnimator {
	return &CardAnimator{config: config}
}

// Config 返回动画参数
func (a *CardAnimator) Config() AnimatorConfig {
	return a.config
}

// RenderTransform 根据位移计算卡片变换
//
// 映射规则：
//   - TranslateX = displacementX
//   - RotateDeg 在 [-W, W] 上从 -30° 线性插值到 +30°，区间外钳位
//   - LikeOverlayOpacity 在 [0, 100] 上 0 -> 1，DislikeOverlayOpacity 在 [0, -100] 上 0 -> 1
func (a *CardAnimator) RenderTransform(displacementX float64) CardTransform {
	t := CardTransform{TranslateX: displacementX}

	if w := a.config.ReferenceWidth; w > 0 {
		t.RotateDeg = clamp(displacementX/w, -1, 1) * a.config.MaxRotationDeg
	}

	ramp := a.config.OverlayRamp
	if ramp <= 0 {
		ramp = DefaultOverlayRamp
	}
	t.LikeOverlayOpacity = clamp(displacementX/ramp, 0, 1)
	t.DislikeOverlayOpacity = clamp(-displacementX/ramp, 0, 1)

	// 避免 -0 传到渲染层
	if t.RotateDeg == 0 {
		t.RotateDeg = 0
	}
	return t
}

// Settle 开始结算动画
//
// 参数：
//   - outcome: 判定结果；提交飞向 ±W，回弹以弹簧回到 0
//   - fromX: 松手时卡片的平移量
//   - onComplete: 动画正常结束时调用一次；任务被取消后永不调用
//
// 返回：
//   - *SettleTask: 由宿主每帧调用 Update 推进
func (a *CardAnimator) Settle(outcome SwipeOutcome, fromX float64, onComplete func()) *SettleTask {
	task := &SettleTask{
		outcome:    outcome,
		from:       fromX,
		x:          fromX,
		onComplete: onComplete,
	}

	switch outcome {
	case CommitRight:
		task.target = a.config.ReferenceWidth
		task.duration = a.config.FlyOutDuration
	case CommitLeft:
		task.target = -a.config.ReferenceWidth
		task.duration = a.config.FlyOutDuration
	default:
		task.target = 0
		task.initSpring(a.config)
	}
	return task
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
