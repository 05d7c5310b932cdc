package deck

import "fmt"

// DeckCursor 卡片堆游标
// 持有有序条目序列和只增不减的游标；游标之前的条目已永久移出
//
// 不变式：0 <= cursor <= len(items)，cursor == len(items) 表示已耗尽
type DeckCursor struct {
	items  []ListingItem
	cursor int
}

// NewDeckCursor 创建游标，复制传入的条目序列
func NewDeckCursor(items []ListingItem) *DeckCursor {
	owned := make([]ListingItem, len(items))
	copy(owned, items)
	return &DeckCursor{items: owned}
}

// Current 返回当前顶部卡片
// 已耗尽时返回 false
func (c *DeckCursor) Current() (ListingItem, bool) {
	if c.IsExhausted() {
		return ListingItem{}, false
	}
	return c.items[c.cursor], true
}

// Advance 游标前进一位
// 已耗尽时返回包装了 ErrOutOfRange 的错误，从不静默忽略
func (c *DeckCursor) Advance() error {
	if c.IsExhausted() {
		return fmt.Errorf("advance at %d/%d: %w", c.cursor, len(c.items), ErrOutOfRange)
	}
	c.cursor++
	return nil
}

// IsExhausted 是否已没有活动卡片
func (c *DeckCursor) IsExhausted() bool {
	return c.cursor >= len(c.items)
}

// PeekWindow 返回当前卡片之后最多 n 个即将出现的条目
// 仅用于预渲染下一张卡片，返回副本
func (c *DeckCursor) PeekWindow(n int) []ListingItem {
	start := c.cursor + 1
	if n <= 0 || start >= len(c.items) {
		return nil
	}
	end := start + n
	if end > len(c.items) {
		end = len(c.items)
	}
	window := make([]ListingItem, end-start)
	copy(window, c.items[start:end])
	return window
}

// Index 当前游标位置
func (c *DeckCursor) Index() int {
	return c.cursor
}

// Len 条目总数
func (c *DeckCursor) Len() int {
	return len(c.items)
}

// Remaining 剩余（含当前）条目数
func (c *DeckCursor) Remaining() int {
	return len(c.items) - c.cursor
}
