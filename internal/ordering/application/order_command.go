// Package application 实现订单服务的应用层
package application

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	catalogdomain "github.com/wyfcoding/wheelmaster/internal/catalog/domain"
	"github.com/wyfcoding/wheelmaster/internal/ordering/domain"
)

// OrderEventsTopic 订单事件主题
const OrderEventsTopic = "wheelmaster.orders"

// PlaceOrderCommand 下单命令
type PlaceOrderCommand struct {
	ProductID    uint
	Quantity     int
	CustomerName string
	Phone        string
	Email        string
}

// OrderCommandService 处理订单相关的命令操作
type OrderCommandService struct {
	orders    domain.OrderRepository
	products  catalogdomain.ProductRepository
	publisher domain.EventPublisher
}

// NewOrderCommandService 创建新的 OrderCommandService 实例
// publisher 可为 nil，此时不发布订单事件
func NewOrderCommandService(orders domain.OrderRepository, products catalogdomain.ProductRepository, publisher domain.EventPublisher) *OrderCommandService {
	return &OrderCommandService{
		orders:    orders,
		products:  products,
		publisher: publisher,
	}
}

// PlaceOrder 校验并持久化一笔订单，返回门店分配的订单 ID
// 校验失败时不产生任何写入；商品行不会被修改（无库存扣减）
func (s *OrderCommandService) PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (uint, error) {
	if cmd.Quantity < 1 {
		return 0, fmt.Errorf("%w: got %d", domain.ErrInvalidQuantity, cmd.Quantity)
	}

	name := strings.TrimSpace(cmd.CustomerName)
	phone := strings.TrimSpace(cmd.Phone)
	email := strings.TrimSpace(cmd.Email)
	for _, field := range []struct {
		name  string
		value string
	}{
		{"customer_name", name},
		{"phone", phone},
		{"email", email},
	} {
		if field.value == "" {
			return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidContactInfo, field.name)
		}
	}

	product, err := s.products.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return 0, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return 0, fmt.Errorf("%w: id %d", domain.ErrUnknownProduct, cmd.ProductID)
	}

	order := &domain.Order{
		ProductID:    product.ID,
		Quantity:     cmd.Quantity,
		CustomerName: name,
		Phone:        phone,
		Email:        email,
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return 0, fmt.Errorf("failed to save order: %w", err)
	}

	if s.publisher != nil {
		event := domain.OrderPlacedEvent{
			OrderID:      order.ID,
			ProductID:    order.ProductID,
			Quantity:     order.Quantity,
			CustomerName: order.CustomerName,
			Timestamp:    time.Now(),
		}
		key := strconv.FormatUint(uint64(order.ID), 10)
		if err := s.publisher.Publish(ctx, OrderEventsTopic, key, event); err != nil {
			// 订单已落库，事件发布失败只记录，不回滚
			slog.ErrorContext(ctx, "failed to publish order placed event", "order_id", order.ID, "error", err)
		}
	}

	return order.ID, nil
}
