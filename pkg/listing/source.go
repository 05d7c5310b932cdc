// Package listing 提供职位列表数据源
//
// 数据源是卡片堆的外部协作者：一次性获取有序的职位条目，
// 失败时返回包装了 ErrSourceUnavailable 的错误。不重试、不分页。
package listing

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/decker502/jobdeck/pkg/types"
)

// ErrSourceUnavailable 职位列表加载失败
// 宿主据此显示“无数据”，不会创建卡片堆
var ErrSourceUnavailable = errors.New("listing source unavailable")

// Source 职位数据源
type Source interface {
	// Fetch 一次性获取全部条目
	Fetch(ctx context.Context) ([]types.ListingItem, error)
}

// unavailable 包装底层错误
func unavailable(source string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, source, err)
}

// FallbackSource 按顺序尝试多个数据源，第一个成功的结果生效
type FallbackSource struct {
	sources []Source
}

// NewFallbackSource 创建回退数据源
func NewFallbackSource(sources ...Source) *FallbackSource {
	return &FallbackSource{sources: sources}
}

// Fetch 依次尝试各数据源
func (f *FallbackSource) Fetch(ctx context.Context) ([]types.ListingItem, error) {
	if len(f.sources) == 0 {
		return nil, unavailable("fallback", errors.New("no sources configured"))
	}

	var errs []error
	for i, source := range f.sources {
		items, err := source.Fetch(ctx)
		if err == nil {
			return items, nil
		}
		log.Printf("[FallbackSource] 数据源 #%d 失败: %v", i, err)
		errs = append(errs, err)

		if ctx.Err() != nil {
			break
		}
	}
	return nil, unavailable("fallback", errors.Join(errs...))
}
