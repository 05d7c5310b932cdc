//go:build !mobile

// 桌面构建时 mobile 包只保留占位函数，
// ebitenmobile 绑定代码（mobile.go / embed.go）需要 -tags mobile。
package mobile

// Dummy 占位导出函数，保证包在桌面构建下可被引用
func Dummy() {}
