// Package domain 包含订单服务的领域模型
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownProduct 订单引用的商品不存在
	ErrUnknownProduct = errors.New("unknown product")
	// ErrInvalidQuantity 数量必须为正整数
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrInvalidContactInfo 联系方式字段去除首尾空白后不能为空
	ErrInvalidContactInfo = errors.New("invalid contact info")
)

// Order 订单实体
// 代表客户针对单个商品提交的一笔订单，创建后不可变
type Order struct {
	ID        uint
	ProductID uint
	Quantity  int
	// 客户姓名
	CustomerName string
	// 联系电话，自由文本，不做格式校验
	Phone string
	// 电子邮箱，自由文本，不做格式校验
	Email string
	// 创建时间，由门店在插入时分配
	CreatedAt time.Time
}

// OrderRecord 订单与所购商品的联合读模型，用于运营报表
type OrderRecord struct {
	Order
	ProductName string
	UnitPrice   decimal.Decimal
}

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// Save 插入一笔新订单并回填门店分配的 ID 与创建时间
	Save(ctx context.Context, order *Order) error
	// ListByProduct 返回指定商品的全部订单，按创建时间倒序
	ListByProduct(ctx context.Context, productID uint) ([]*Order, error)
	// ListRecent 返回全部订单及所购商品信息，按创建时间倒序
	ListRecent(ctx context.Context) ([]*OrderRecord, error)
}
