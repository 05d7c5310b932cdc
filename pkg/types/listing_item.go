// Package types 定义跨包共享的基础数据类型
package types

// ListingItem 职位条目（不可变值）
// 数据来源在卡片堆外部，卡片堆从不修改它
type ListingItem struct {
	ID       string   `yaml:"id" json:"id"`
	Title    string   `yaml:"title" json:"title"`
	Tags     []string `yaml:"tags" json:"tags"`
	ApplyURL string   `yaml:"applyUrl" json:"applyUrl"`
}

// TagLine 返回用于卡片展示的标签行，无标签时返回 "-"
func (l ListingItem) TagLine() string {
	if len(l.Tags) == 0 {
		return "-"
	}
	line := l.Tags[0]
	for _, tag := range l.Tags[1:] {
		line += ", " + tag
	}
	return line
}
