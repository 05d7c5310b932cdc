//go:build mobile

package utils

// IsMobile 移动端构建（-tags mobile）恒为 true
// 卡片堆场景据此隐藏键盘快捷键提示
func IsMobile() bool {
	return true
}
