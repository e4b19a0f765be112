package application

import (
	"context"

	"github.com/wyfcoding/wheelmaster/internal/ordering/domain"
)

// OrderQueryService 处理所有订单相关的查询操作（Queries）。
type OrderQueryService struct {
	repo domain.OrderRepository
}

// NewOrderQueryService 构造函数。
func NewOrderQueryService(repo domain.OrderRepository) *OrderQueryService {
	return &OrderQueryService{repo: repo}
}

// ListOrders 返回全部订单的运营报表，按创建时间倒序
func (s *OrderQueryService) ListOrders(ctx context.Context) ([]*OrderReportDTO, error) {
	records, err := s.repo.ListRecent(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderReportDTOs(records), nil
}

// ListOrdersByProduct 返回指定商品的全部订单，按创建时间倒序
func (s *OrderQueryService) ListOrdersByProduct(ctx context.Context, productID uint) ([]*OrderDTO, error) {
	orders, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toOrderDTOs(orders), nil
}
