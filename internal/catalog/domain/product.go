// Package domain 包含商品目录服务的领域模型
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrMalformedSource 商品定义源文档无法解析
	ErrMalformedSource = errors.New("malformed product definition source")
)

// Product 商品实体
// 代表目录中的一款轮胎商品，名称为自然键，ID 为门店分配的代理主键
type Product struct {
	ID          uint
	Name        string
	Description string
	// 价格，非负
	Price decimal.Decimal
	// 名义胎宽（毫米），0 表示未提供
	Width int
	// 商品图片链接
	ImageURL string
	// 开放式规格映射，如 "Season" -> "Summer"
	Specs     map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductRepository 商品仓储接口
type ProductRepository interface {
	// Save 保存商品：ID 为零时插入并回填代理主键，否则按 ID 更新
	Save(ctx context.Context, product *Product) error
	// FindByID 按代理主键查找商品，不存在时返回 (nil, nil)
	FindByID(ctx context.Context, id uint) (*Product, error)
	// FindByName 按唯一名称查找商品，不存在时返回 (nil, nil)
	FindByName(ctx context.Context, name string) (*Product, error)
	// List 按 ID 升序返回全部商品
	List(ctx context.Context) ([]*Product, error)
}
