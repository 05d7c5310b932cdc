package listing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/decker502/jobdeck/pkg/types"
)

// DefaultMaxResponseBytes 响应体上限（一页 100 条）
const DefaultMaxResponseBytes = 4 << 20

// HTTPSource 远程职位接口数据源
// 接口返回 JSON 数组，每个元素至少包含 title 和 url
type HTTPSource struct {
	url      string
	client   *http.Client
	maxBytes int64
}

// remoteListing 远程接口的条目格式
// 标签优先取 keywords，缺失时取 labels[].name
type remoteListing struct {
	ID       json.RawMessage `json:"id"`
	Title    string          `json:"title"`
	Keywords []string        `json:"keywords"`
	Labels   []struct {
		Name string `json:"name"`
	} `json:"labels"`
	URL string `json:"url"`
}

// NewHTTPSource 创建远程数据源
//
// 参数：
//   - url: 职位接口地址
//   - timeout: 请求超时，<= 0 时不设超时（依赖 ctx）
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	client := &http.Client{}
	if timeout > 0 {
		client.Timeout = timeout
	}
	return &HTTPSource{url: url, client: client, maxBytes: DefaultMaxResponseBytes}
}

// Fetch 请求远程接口并转换为职位条目
func (s *HTTPSource) Fetch(ctx context.Context) ([]types.ListingItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, unavailable(s.url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, unavailable(s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unavailable(s.url, fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBytes+1))
	if err != nil {
		return nil, unavailable(s.url, fmt.Errorf("failed to read response: %w", err))
	}
	if int64(len(body)) > s.maxBytes {
		return nil, unavailable(s.url, fmt.Errorf("response exceeds %d bytes", s.maxBytes))
	}

	var remote []remoteListing
	if err := json.Unmarshal(body, &remote); err != nil {
		return nil, unavailable(s.url, fmt.Errorf("failed to decode listings: %w", err))
	}

	items := make([]types.ListingItem, 0, len(remote))
	for _, r := range remote {
		if r.Title == "" {
			continue
		}
		items = append(items, r.toItem())
	}

	log.Printf("[HTTPSource] 获取 %d 个职位 (跳过 %d 个无标题条目)", len(items), len(remote)-len(items))
	return items, nil
}

func (r remoteListing) toItem() types.ListingItem {
	tags := r.Keywords
	if len(tags) == 0 {
		for _, label := range r.Labels {
			if label.Name != "" {
				tags = append(tags, label.Name)
			}
		}
	}
	return types.ListingItem{
		ID:       parseID(r.ID),
		Title:    r.Title,
		Tags:     tags,
		ApplyURL: r.URL,
	}
}

// parseID 接受字符串或数字形式的 id；缺失时生成 UUID
func parseID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return uuid.NewString()
	}
	if raw[0] == '"' {
		if s, err := strconv.Unquote(string(raw)); err == nil && s != "" {
			return s
		}
		return uuid.NewString()
	}
	return string(raw)
}
