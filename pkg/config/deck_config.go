package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/jobdeck/pkg/deck"
)

// DeckConfig 卡片堆调参配置
//
// 配置文件位置: data/deck.yaml（嵌入），可用 -config 指定外部文件覆盖
type DeckConfig struct {
	// CommitThreshold 提交阈值（像素），固定值，不按屏幕宽度换算
	CommitThreshold float64 `yaml:"commitThreshold"`

	// FlingEnabled 是否启用甩动判定（默认关闭，只看位移）
	FlingEnabled bool `yaml:"flingEnabled"`

	// FlingVelocity 甩动速度阈值（像素/毫秒）
	FlingVelocity float64 `yaml:"flingVelocity"`

	// ReferenceWidth 参考宽度 W（旋转插值范围和飞出目标），0 表示使用窗口宽度
	ReferenceWidth float64 `yaml:"referenceWidth"`

	// MaxRotationDeg 最大旋转角度
	MaxRotationDeg float64 `yaml:"maxRotationDeg"`

	// OverlayRamp 覆盖层透明度渐变所需位移
	OverlayRamp float64 `yaml:"overlayRamp"`

	// FlyOutDuration 飞出动画时长（秒）
	FlyOutDuration float64 `yaml:"flyOutDuration"`

	// Spring 回弹弹簧参数
	Spring SpringConfig `yaml:"spring"`

	// PeekCount 顶部卡片下方预渲染的卡片数
	PeekCount int `yaml:"peekCount"`

	// Source 职位数据源
	Source SourceConfig `yaml:"source"`
}

// SpringConfig 回弹弹簧参数
type SpringConfig struct {
	FPS             int     `yaml:"fps"`
	Frequency       float64 `yaml:"frequency"`
	Damping         float64 `yaml:"damping"`
	Epsilon         float64 `yaml:"epsilon"`         // 到位距离（像素）
	VelocityEpsilon float64 `yaml:"velocityEpsilon"` // 静止速度（像素/秒）
	MaxDuration     float64 `yaml:"maxDuration"`
}

// SourceConfig 职位数据源配置
type SourceConfig struct {
	// URL 远程职位接口
	URL string `yaml:"url"`
	// Timeout 请求超时（秒）
	Timeout float64 `yaml:"timeout"`
	// Fixture 离线条目文件（嵌入资源路径，必须以 data/ 开头）
	Fixture string `yaml:"fixture"`
}

// DefaultSourceURL 默认远程职位接口
const DefaultSourceURL = "https://apibr.com/vagas/api/v1/issues?page=1&per_page=100"

// DefaultDeckConfig 返回默认配置
func DefaultDeckConfig() *DeckConfig {
	return &DeckConfig{
		CommitThreshold: deck.DefaultCommitThreshold,
		FlingEnabled:    false,
		FlingVelocity:   deck.DefaultFlingVelocity,
		ReferenceWidth:  0,
		MaxRotationDeg:  deck.DefaultMaxRotationDeg,
		OverlayRamp:     deck.DefaultOverlayRamp,
		FlyOutDuration:  deck.DefaultFlyOutDuration,
		Spring: SpringConfig{
			FPS:             deck.DefaultSpringFPS,
			Frequency:       deck.DefaultSpringFrequency,
			Damping:         deck.DefaultSpringDamping,
			Epsilon:         deck.DefaultSpringEpsilon,
			VelocityEpsilon: deck.DefaultSpringVelocityEpsilon,
			MaxDuration:     deck.DefaultSpringMaxDuration,
		},
		PeekCount: 2,
		Source: SourceConfig{
			URL:     DefaultSourceURL,
			Timeout: 10,
			Fixture: "data/listings.yaml",
		},
	}
}

// LoadDeckConfig 加载卡片堆配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *DeckConfig: 未出现在文件中的字段保持默认值
//   - error: 读取、解析或验证失败时返回错误
func LoadDeckConfig(path string) (*DeckConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck config: %w", err)
	}
	return ParseDeckConfig(data)
}

// ParseDeckConfig 从 YAML 数据解析卡片堆配置（用于嵌入资源）
func ParseDeckConfig(data []byte) (*DeckConfig, error) {
	config := DefaultDeckConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse deck config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
func (c *DeckConfig) Validate() error {
	if c.CommitThreshold <= 0 {
		return fmt.Errorf("commitThreshold must be positive, got %.1f", c.CommitThreshold)
	}
	if c.FlingVelocity <= 0 {
		return fmt.Errorf("flingVelocity must be positive, got %.3f", c.FlingVelocity)
	}
	if c.ReferenceWidth < 0 {
		return fmt.Errorf("referenceWidth must not be negative, got %.1f", c.ReferenceWidth)
	}
	if c.MaxRotationDeg < 0 || c.MaxRotationDeg > 90 {
		return fmt.Errorf("maxRotationDeg out of range [0, 90]: %.1f", c.MaxRotationDeg)
	}
	if c.OverlayRamp <= 0 {
		return fmt.Errorf("overlayRamp must be positive, got %.1f", c.OverlayRamp)
	}
	if c.FlyOutDuration < 0 {
		return fmt.Errorf("flyOutDuration must not be negative, got %.3f", c.FlyOutDuration)
	}
	if c.Spring.FPS <= 0 {
		return fmt.Errorf("spring.fps must be positive, got %d", c.Spring.FPS)
	}
	if c.Spring.Frequency <= 0 || c.Spring.Damping <= 0 {
		return fmt.Errorf("spring frequency/damping must be positive, got %.2f/%.2f",
			c.Spring.Frequency, c.Spring.Damping)
	}
	if c.Spring.Epsilon <= 0 {
		return fmt.Errorf("spring.epsilon must be positive, got %.3f", c.Spring.Epsilon)
	}
	if c.Spring.VelocityEpsilon <= 0 {
		return fmt.Errorf("spring.velocityEpsilon must be positive, got %.3f", c.Spring.VelocityEpsilon)
	}
	if c.PeekCount < 0 {
		return fmt.Errorf("peekCount must not be negative, got %d", c.PeekCount)
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("source.timeout must not be negative, got %.1f", c.Source.Timeout)
	}
	return nil
}

// ControllerConfig 转换为控制器参数
//
// 参数:
//   - viewportWidth: 窗口逻辑宽度；ReferenceWidth 为 0 时作为参考宽度
func (c *DeckConfig) ControllerConfig(viewportWidth float64) deck.ControllerConfig {
	referenceWidth := c.ReferenceWidth
	if referenceWidth == 0 {
		referenceWidth = viewportWidth
	}

	return deck.ControllerConfig{
		ViewportWidth: viewportWidth,
		Classifier: deck.CommitClassifier{
			Threshold:     c.CommitThreshold,
			FlingEnabled:  c.FlingEnabled,
			FlingVelocity: c.FlingVelocity,
		},
		Animator: deck.AnimatorConfig{
			ReferenceWidth:        referenceWidth,
			MaxRotationDeg:        c.MaxRotationDeg,
			OverlayRamp:           c.OverlayRamp,
			FlyOutDuration:        c.FlyOutDuration,
			SpringFPS:             c.Spring.FPS,
			SpringFrequency:       c.Spring.Frequency,
			SpringDamping:         c.Spring.Damping,
			SpringEpsilon:         c.Spring.Epsilon,
			SpringVelocityEpsilon: c.Spring.VelocityEpsilon,
			SpringMaxDuration:     c.Spring.MaxDuration,
		},
	}
}
