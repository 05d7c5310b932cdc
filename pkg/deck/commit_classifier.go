package deck

import "math"

// DefaultCommitThreshold 默认提交阈值（像素）
// 固定的绝对位移，不随视口宽度缩放，保证手感一致
const DefaultCommitThreshold = 100.0

// DefaultFlingVelocity 默认甩动速度阈值（像素/毫秒）
const DefaultFlingVelocity = 1.0

// CommitClassifier 提交判定器
// 纯函数：无副作用，结果完全由输入决定
type CommitClassifier struct {
	// Threshold 提交阈值 T，位移严格大于 T 才提交（等于 T 时回弹）
	Threshold float64
	// FlingEnabled 是否启用甩动判定（默认关闭，只看位移）
	FlingEnabled bool
	// FlingVelocity 甩动速度阈值 V
	FlingVelocity float64
}

// NewCommitClassifier 创建只看位移的判定器
func NewCommitClassifier(threshold float64) CommitClassifier {
	return CommitClassifier{
		Threshold:     threshold,
		FlingVelocity: DefaultFlingVelocity,
	}
}

// Classify 将终止采样映射为判定结果
//
// 规则：
//   - 取消的手势一律回弹
//   - d > T 向右提交，d < -T 向左提交
//   - 启用甩动时，|d| <= T 但速度超过 V 也按速度方向提交
//
// viewportWidth 不参与阈值计算，保留在签名中供调用方统一传参。
func (c CommitClassifier) Classify(sample GestureSample, viewportWidth float64) SwipeOutcome {
	if sample.Phase == PhaseCancelled {
		return SnapBack
	}

	d := sample.DisplacementX
	switch {
	case d > c.Threshold:
		return CommitRight
	case d < -c.Threshold:
		return CommitLeft
	}

	if c.FlingEnabled && sample.HasVelocity && !math.IsNaN(sample.VelocityX) {
		switch {
		case sample.VelocityX > c.FlingVelocity && d >= 0:
			return CommitRight
		case sample.VelocityX < -c.FlingVelocity && d <= 0:
			return CommitLeft
		}
	}

	return SnapBack
}
