package config

// 布局配置常量
// 竖屏手机比例的逻辑分辨率，Ebitengine 负责缩放到实际窗口

const (
	// WindowWidth 逻辑屏幕宽度（同时作为默认参考宽度 W）
	WindowWidth = 480

	// WindowHeight 逻辑屏幕高度
	WindowHeight = 800

	// CardWidth 卡片宽度（屏幕宽度的 80%）
	CardWidth = 384.0

	// CardHeight 卡片高度
	CardHeight = 300.0

	// CardCenterY 卡片中心的 Y 坐标
	CardCenterY = 360.0

	// PeekOffsetY 每张下方卡片相对上一张的下移量
	PeekOffsetY = 12.0

	// PeekScaleStep 每张下方卡片的缩小比例
	PeekScaleStep = 0.05

	// OverlayLabelWidth 覆盖层标签宽度
	OverlayLabelWidth = 120.0

	// OverlayLabelHeight 覆盖层标签高度
	OverlayLabelHeight = 36.0
)

// CardCenterX 卡片静止时中心的 X 坐标
func CardCenterX() float64 {
	return WindowWidth / 2.0
}

// CardOrigin 卡片静止时左上角坐标
func CardOrigin() (x, y float64) {
	return CardCenterX() - CardWidth/2, CardCenterY - CardHeight/2
}
