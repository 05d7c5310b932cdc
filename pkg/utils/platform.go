//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 桌面端模拟移动模式的环境变量
const MobileEmulateEnv = "JOBDECK_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，设置 JOBDECK_MOBILE_EMULATE=1 可强制启用移动模式（用于本地调试）
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
