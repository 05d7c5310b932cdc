package deck

import "testing"

func endedSample(d float64) GestureSample {
	return GestureSample{DisplacementX: d, Phase: PhaseEnded}
}

// TestClassifyDisplacementOnly 只看位移的判定
func TestClassifyDisplacementOnly(t *testing.T) {
	c := NewCommitClassifier(DefaultCommitThreshold)

	tests := []struct {
		name     string
		d        float64
		expected SwipeOutcome
	}{
		{"静止", 0, SnapBack},
		{"小幅右移", 40, SnapBack},
		{"小幅左移", -99.9, SnapBack},
		{"右边界恰好等于阈值", 100, SnapBack},
		{"左边界恰好等于阈值", -100, SnapBack},
		{"刚越过右阈值", 100.0001, CommitRight},
		{"刚越过左阈值", -100.0001, CommitLeft},
		{"大幅右滑", 150, CommitRight},
		{"大幅左滑", -420, CommitLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Classify(endedSample(tt.d), 400); got != tt.expected {
				t.Errorf("Classify(%v) = %v, want %v", tt.d, got, tt.expected)
			}
		})
	}
}

// TestClassifyGrid 对 |d| <= T 的所有整数位移都回弹，越过阈值按方向提交
func TestClassifyGrid(t *testing.T) {
	c := NewCommitClassifier(DefaultCommitThreshold)
	for d := -300; d <= 300; d++ {
		got := c.Classify(endedSample(float64(d)), 400)
		var want SwipeOutcome
		switch {
		case d > 100:
			want = CommitRight
		case d < -100:
			want = CommitLeft
		default:
			want = SnapBack
		}
		if got != want {
			t.Fatalf("Classify(%d) = %v, want %v", d, got, want)
		}
	}
}

// TestClassifyIgnoresViewportWidth 阈值不随视口宽度变化
func TestClassifyIgnoresViewportWidth(t *testing.T) {
	c := NewCommitClassifier(DefaultCommitThreshold)
	for _, width := range []float64{0, 320, 1080, 4096} {
		if got := c.Classify(endedSample(120), width); got != CommitRight {
			t.Errorf("width %v: got %v, want CommitRight", width, got)
		}
		if got := c.Classify(endedSample(80), width); got != SnapBack {
			t.Errorf("width %v: got %v, want SnapBack", width, got)
		}
	}
}

// TestClassifyCancelled 取消的手势一律回弹
func TestClassifyCancelled(t *testing.T) {
	c := NewCommitClassifier(DefaultCommitThreshold)
	sample := GestureSample{DisplacementX: 500, Phase: PhaseCancelled}
	if got := c.Classify(sample, 400); got != SnapBack {
		t.Errorf("Classify(cancelled) = %v, want SnapBack", got)
	}
}

// TestClassifyFling 甩动判定
func TestClassifyFling(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		sample   GestureSample
		expected SwipeOutcome
	}{
		{
			name:     "关闭时快速短滑仍回弹",
			enabled:  false,
			sample:   GestureSample{DisplacementX: 60, VelocityX: 3, HasVelocity: true, Phase: PhaseEnded},
			expected: SnapBack,
		},
		{
			name:     "向右甩动",
			enabled:  true,
			sample:   GestureSample{DisplacementX: 60, VelocityX: 3, HasVelocity: true, Phase: PhaseEnded},
			expected: CommitRight,
		},
		{
			name:     "向左甩动",
			enabled:  true,
			sample:   GestureSample{DisplacementX: -60, VelocityX: -2, HasVelocity: true, Phase: PhaseEnded},
			expected: CommitLeft,
		},
		{
			name:     "速度不足",
			enabled:  true,
			sample:   GestureSample{DisplacementX: 60, VelocityX: 0.5, HasVelocity: true, Phase: PhaseEnded},
			expected: SnapBack,
		},
		{
			name:     "没有速度",
			enabled:  true,
			sample:   GestureSample{DisplacementX: 60, Phase: PhaseEnded},
			expected: SnapBack,
		},
		{
			name:     "速度与位移方向相反",
			enabled:  true,
			sample:   GestureSample{DisplacementX: -20, VelocityX: 5, HasVelocity: true, Phase: PhaseEnded},
			expected: SnapBack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCommitClassifier(DefaultCommitThreshold)
			c.FlingEnabled = tt.enabled
			if got := c.Classify(tt.sample, 400); got != tt.expected {
				t.Errorf("Classify() = %v, want %v", got, tt.expected)
			}
		})
	}
}
