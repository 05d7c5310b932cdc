package listing

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/decker502/jobdeck/pkg/types"
)

// ReadFileFunc 读取文件内容（embedded.ReadFile 或 os.ReadFile）
type ReadFileFunc func(path string) ([]byte, error)

// YAMLSource 离线职位列表
//
// 文件格式：
//
//	listings:
//	  - id: "1"
//	    title: Desenvolvedor Go
//	    tags: [golang, remoto]
//	    applyUrl: https://example.com/1
type YAMLSource struct {
	path     string
	readFile ReadFileFunc
}

type yamlListingFile struct {
	Listings []types.ListingItem `yaml:"listings"`
}

// NewYAMLSource 创建离线数据源
func NewYAMLSource(path string, readFile ReadFileFunc) *YAMLSource {
	return &YAMLSource{path: path, readFile: readFile}
}

// Fetch 读取并解析列表文件
func (s *YAMLSource) Fetch(ctx context.Context) ([]types.ListingItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(s.path, err)
	}

	data, err := s.readFile(s.path)
	if err != nil {
		return nil, unavailable(s.path, err)
	}

	var file yamlListingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, unavailable(s.path, fmt.Errorf("failed to parse listings: %w", err))
	}

	for i := range file.Listings {
		if file.Listings[i].ID == "" {
			file.Listings[i].ID = uuid.NewString()
		}
	}

	log.Printf("[YAMLSource] 从 %s 加载 %d 个职位", s.path, len(file.Listings))
	return file.Listings, nil
}
