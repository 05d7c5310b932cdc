package deck

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/decker502/jobdeck/pkg/utils"
)

// SettleTask 松手后的结算动画任务
//
// 工作流程：
//  1. CardAnimator.Settle 创建任务，记录起点和目标
//  2. 宿主每帧调用 Update(deltaTime) 推进
//  3. 到达目标后调用一次完成回调
//  4. Cancel 之后任务立即终止，完成回调永不触发
type SettleTask struct {
	outcome SwipeOutcome
	from    float64
	target  float64
	x       float64

	// 飞出（线性时间 + 缓动）
	elapsed  float64
	duration float64

	// 回弹（弹簧）
	spring          harmonica.Spring
	springStep      float64
	accumulator     float64
	velocity        float64 // 像素/秒
	epsilon         float64
	velocityEpsilon float64
	maxDuration     float64

	onComplete func()
	done       bool
	cancelled  bool
}

func (t *SettleTask) initSpring(config AnimatorConfig) {
	fps := config.SpringFPS
	if fps <= 0 {
		fps = DefaultSpringFPS
	}
	t.springStep = harmonica.FPS(fps)
	t.spring = harmonica.NewSpring(t.springStep, config.SpringFrequency, config.SpringDamping)
	t.epsilon = config.SpringEpsilon
	t.velocityEpsilon = config.SpringVelocityEpsilon
	if t.velocityEpsilon <= 0 {
		t.velocityEpsilon = DefaultSpringVelocityEpsilon
	}
	t.maxDuration = config.SpringMaxDuration
}

// Update 推进动画
//
// 参数：
//   - deltaTime: 距上一帧的时间（秒）
//
// 返回：
//   - bool: 任务是否已结束（完成或取消）
func (t *SettleTask) Update(deltaTime float64) bool {
	if t.done || t.cancelled {
		return true
	}
	if deltaTime < 0 {
		deltaTime = 0
	}

	if t.outcome.IsCommit() {
		t.updateFlyOut(deltaTime)
	} else {
		t.updateSpring(deltaTime)
	}
	return t.done
}

func (t *SettleTask) updateFlyOut(deltaTime float64) {
	t.elapsed += deltaTime
	progress := 1.0
	if t.duration > 0 {
		progress = math.Min(t.elapsed/t.duration, 1.0)
	}
	t.x = utils.Lerp(t.from, t.target, utils.EaseInOutCubic(progress))
	if progress >= 1.0 {
		t.x = t.target
		t.finish()
	}
}

func (t *SettleTask) updateSpring(deltaTime float64) {
	t.elapsed += deltaTime
	t.accumulator += deltaTime
	for t.accumulator >= t.springStep {
		t.x, t.velocity = t.spring.Update(t.x, t.velocity, t.target)
		t.accumulator -= t.springStep
	}

	resting := math.Abs(t.x-t.target) < t.epsilon && math.Abs(t.velocity) < t.velocityEpsilon
	if resting || (t.maxDuration > 0 && t.elapsed >= t.maxDuration) {
		t.x = t.target
		t.velocity = 0
		t.finish()
	}
}

func (t *SettleTask) finish() {
	t.done = true
	callback := t.onComplete
	t.onComplete = nil
	if callback != nil {
		callback()
	}
}

// Cancel 中止任务，不调用完成回调
// 对已结束的任务调用无效果
func (t *SettleTask) Cancel() {
	if t.done || t.cancelled {
		return
	}
	t.cancelled = true
	t.onComplete = nil
}

// X 当前平移量
func (t *SettleTask) X() float64 {
	return t.x
}

// Outcome 任务对应的判定结果
func (t *SettleTask) Outcome() SwipeOutcome {
	return t.outcome
}

// Done 是否已正常完成
func (t *SettleTask) Done() bool {
	return t.done
}

// Err 任务被取消时返回 ErrAnimationAborted
func (t *SettleTask) Err() error {
	if t.cancelled {
		return ErrAnimationAborted
	}
	return nil
}
