// Package mysql 提供了订单仓储接口的 MySQL GORM 实现。
package mysql

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/wyfcoding/pkg/logging"
	catalogmysql "github.com/wyfcoding/wheelmaster/internal/catalog/infrastructure/persistence/mysql"
	"github.com/wyfcoding/wheelmaster/internal/ordering/domain"
	"gorm.io/gorm"
)

// OrderModel 订单数据库模型，直接映射 orders 表。
type OrderModel struct {
	gorm.Model
	ProductID    uint   `gorm:"column:product_id;index;not null;comment:所购商品ID"`
	Quantity     int    `gorm:"column:quantity;not null;comment:购买数量"`
	CustomerName string `gorm:"column:customer_name;type:varchar(100);not null;comment:客户姓名"`
	Phone        string `gorm:"column:phone;type:varchar(20);not null;comment:联系电话"`
	Email        string `gorm:"column:email;type:varchar(100);not null;comment:电子邮箱"`

	// 外键关联，保证订单引用的商品必须存在
	Product catalogmysql.ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// orderRepositoryImpl 是 domain.OrderRepository 接口的 GORM 实现。
type orderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &orderRepositoryImpl{db: db}
}

// Save 实现 domain.OrderRepository.Save
func (r *orderRepositoryImpl) Save(ctx context.Context, order *domain.Order) error {
	model := &OrderModel{
		ProductID:    order.ProductID,
		Quantity:     order.Quantity,
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
		Email:        order.Email,
	}

	if err := r.db.WithContext(ctx).Omit("Product").Create(model).Error; err != nil {
		logging.Error(ctx, "order_repository.save failed", "product_id", order.ProductID, "error", err)
		return fmt.Errorf("failed to save order: %w", err)
	}

	order.ID = model.ID
	order.CreatedAt = model.CreatedAt
	return nil
}

// ListByProduct 实现 domain.OrderRepository.ListByProduct
func (r *orderRepositoryImpl) ListByProduct(ctx context.Context, productID uint) ([]*domain.Order, error) {
	var models []OrderModel
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		logging.Error(ctx, "order_repository.list_by_product failed", "product_id", productID, "error", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*domain.Order, 0, len(models))
	for i := range models {
		orders = append(orders, toDomain(&models[i]))
	}
	return orders, nil
}

// ListRecent 实现 domain.OrderRepository.ListRecent
func (r *orderRepositoryImpl) ListRecent(ctx context.Context) ([]*domain.OrderRecord, error) {
	var models []OrderModel
	err := r.db.WithContext(ctx).
		Joins("Product").
		Order("orders.created_at DESC").
		Find(&models).Error
	if err != nil {
		logging.Error(ctx, "order_repository.list_recent failed", "error", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	records := make([]*domain.OrderRecord, 0, len(models))
	for i := range models {
		price, err := decimal.NewFromString(models[i].Product.Price)
		if err != nil {
			return nil, fmt.Errorf("corrupt price for product %d: %w", models[i].ProductID, err)
		}
		records = append(records, &domain.OrderRecord{
			Order:       *toDomain(&models[i]),
			ProductName: models[i].Product.Name,
			UnitPrice:   price,
		})
	}
	return records, nil
}

func toDomain(model *OrderModel) *domain.Order {
	return &domain.Order{
		ID:           model.ID,
		ProductID:    model.ProductID,
		Quantity:     model.Quantity,
		CustomerName: model.CustomerName,
		Phone:        model.Phone,
		Email:        model.Email,
		CreatedAt:    model.CreatedAt,
	}
}
