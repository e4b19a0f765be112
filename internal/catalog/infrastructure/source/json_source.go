// Package source 读取商品定义源（人工维护的 JSON 文档）。
package source

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wyfcoding/wheelmaster/internal/catalog/domain"
)

type document struct {
	Products *[]domain.ProductDefinition `json:"products"`
}

// Load 解析商品定义源文件并按源顺序返回商品定义
// 文档无法解析或缺少顶层 products 列表时返回包装 ErrMalformedSource 的错误
func Load(path string) ([]domain.ProductDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read product definition source %s: %w", path, err)
	}
	return Parse(data)
}

// Parse 从原始字节解析商品定义文档
func Parse(data []byte) ([]domain.ProductDefinition, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSource, err)
	}
	if doc.Products == nil {
		return nil, fmt.Errorf("%w: missing top-level products list", domain.ErrMalformedSource)
	}
	return *doc.Products, nil
}
