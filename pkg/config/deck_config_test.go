package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultDeckConfigIsValid(t *testing.T) {
	cfg := DefaultDeckConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.CommitThreshold != 100 {
		t.Errorf("CommitThreshold = %v, want 100", cfg.CommitThreshold)
	}
	if cfg.FlingEnabled {
		t.Error("FlingEnabled should default to false")
	}
	if cfg.FlyOutDuration != 0.2 {
		t.Errorf("FlyOutDuration = %v, want 0.2", cfg.FlyOutDuration)
	}
}

func TestLoadDeckConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	content := `
commitThreshold: 120
flingEnabled: true
flingVelocity: 0.8
spring:
  fps: 120
  frequency: 7
  damping: 0.6
  epsilon: 0.25
  maxDuration: 1.5
source:
  url: http://localhost:8080/jobs
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadDeckConfig(path)
	if err != nil {
		t.Fatalf("LoadDeckConfig() error: %v", err)
	}

	if cfg.CommitThreshold != 120 || !cfg.FlingEnabled || cfg.FlingVelocity != 0.8 {
		t.Errorf("classifier fields = %v/%v/%v", cfg.CommitThreshold, cfg.FlingEnabled, cfg.FlingVelocity)
	}
	if cfg.Spring.FPS != 120 || cfg.Spring.Epsilon != 0.25 {
		t.Errorf("spring = %+v", cfg.Spring)
	}
	if cfg.Spring.VelocityEpsilon != 5.0 {
		t.Errorf("Spring.VelocityEpsilon = %v, want default 5.0", cfg.Spring.VelocityEpsilon)
	}
	if cfg.Source.URL != "http://localhost:8080/jobs" {
		t.Errorf("Source.URL = %q", cfg.Source.URL)
	}

	// 文件中未出现的字段保持默认值
	if cfg.MaxRotationDeg != 30 || cfg.OverlayRamp != 100 || cfg.PeekCount != 2 {
		t.Errorf("defaults not preserved: rot=%v ramp=%v peek=%d", cfg.MaxRotationDeg, cfg.OverlayRamp, cfg.PeekCount)
	}
	if cfg.Source.Fixture != "data/listings.yaml" {
		t.Errorf("Source.Fixture = %q", cfg.Source.Fixture)
	}
}

func TestLoadDeckConfigMissingFile(t *testing.T) {
	_, err := LoadDeckConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read deck config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseDeckConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"语法错误", "commitThreshold: [", "failed to parse deck config"},
		{"阈值为零", "commitThreshold: 0", "commitThreshold must be positive"},
		{"旋转过大", "maxRotationDeg: 120", "maxRotationDeg out of range"},
		{"负参考宽度", "referenceWidth: -10", "referenceWidth must not be negative"},
		{"弹簧帧率为零", "spring:\n  fps: 0", "spring.fps must be positive"},
		{"静止速度为零", "spring:\n  velocityEpsilon: 0", "spring.velocityEpsilon must be positive"},
		{"负预渲染数", "peekCount: -1", "peekCount must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDeckConfig([]byte(tt.content))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestControllerConfigReferenceWidth(t *testing.T) {
	cfg := DefaultDeckConfig()

	cc := cfg.ControllerConfig(480)
	if cc.Animator.ReferenceWidth != 480 {
		t.Errorf("ReferenceWidth = %v, want viewport width 480", cc.Animator.ReferenceWidth)
	}
	if cc.Classifier.Threshold != 100 || cc.ViewportWidth != 480 {
		t.Errorf("classifier threshold = %v viewport = %v", cc.Classifier.Threshold, cc.ViewportWidth)
	}

	cfg.ReferenceWidth = 360
	if cc := cfg.ControllerConfig(480); cc.Animator.ReferenceWidth != 360 {
		t.Errorf("ReferenceWidth = %v, want configured 360", cc.Animator.ReferenceWidth)
	}
}
