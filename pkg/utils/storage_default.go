//go:build !android

package utils

// EnsureStorageDir 非 Android 平台由 gdata 自行创建设置目录，无需处理
func EnsureStorageDir() error {
	return nil
}

// SettingsDir 非 Android 平台返回空字符串（路径由 gdata 决定）
func SettingsDir() string {
	return ""
}
