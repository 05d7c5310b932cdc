package types

// CardTransform 卡片的可视变换
// 拖拽中每帧由位移计算得出，渲染层据此绘制活动卡片
type CardTransform struct {
	// TranslateX 水平平移（像素）
	TranslateX float64
	// RotateDeg 旋转角度（度，正值为顺时针）
	RotateDeg float64
	// LikeOverlayOpacity “喜欢”覆盖层透明度 0.0 ~ 1.0
	LikeOverlayOpacity float64
	// DislikeOverlayOpacity “不喜欢”覆盖层透明度 0.0 ~ 1.0
	DislikeOverlayOpacity float64
}

// IsRest 卡片是否处于静止位置
func (t CardTransform) IsRest() bool {
	return t == CardTransform{}
}
