//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureStorageDir 在 gdata 初始化前创建 Android 设置目录并检查可写
//
// gdata 在 Android 上以 /data/data/{package}/ 为根目录，但不会预先创建子目录
func EnsureStorageDir() error {
	dir := SettingsDir()
	if dir == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}

	marker := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(marker, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("settings directory %s is not writable: %w", dir, err)
	}
	return os.Remove(marker)
}

// SettingsDir 返回 Android 设置目录，无法识别包名时返回空字符串
func SettingsDir() string {
	pkg, err := androidPackage()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg, "settings")
}

// androidPackage 从 /proc/self/cmdline 读取应用包名
func androidPackage() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	// cmdline 以 NUL 分隔，第一个字段是包名
	name := strings.TrimSpace(strings.SplitN(string(data), "\x00", 2)[0])
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
