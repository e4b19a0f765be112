package application

import (
	"github.com/shopspring/decimal"
	"github.com/wyfcoding/wheelmaster/internal/ordering/domain"
)

// OrderDTO 订单查询结果
type OrderDTO struct {
	ID           uint   `json:"id"`
	ProductID    uint   `json:"product_id"`
	Quantity     int    `json:"quantity"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	CreatedAt    int64  `json:"created_at"`
}

// OrderReportDTO 运营报表中的一行：订单连同所购商品与合计金额
type OrderReportDTO struct {
	OrderDTO
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	Total       string `json:"total"`
}

func toOrderDTO(o *domain.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID,
		ProductID:    o.ProductID,
		Quantity:     o.Quantity,
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Email:        o.Email,
		CreatedAt:    o.CreatedAt.Unix(),
	}
}

func toOrderDTOs(orders []*domain.Order) []*OrderDTO {
	dtos := make([]*OrderDTO, 0, len(orders))
	for _, o := range orders {
		dto := toOrderDTO(o)
		dtos = append(dtos, &dto)
	}
	return dtos
}

func toOrderReportDTO(r *domain.OrderRecord) *OrderReportDTO {
	total := r.UnitPrice.Mul(decimal.NewFromInt(int64(r.Quantity)))
	return &OrderReportDTO{
		OrderDTO:    toOrderDTO(&r.Order),
		ProductName: r.ProductName,
		UnitPrice:   r.UnitPrice.StringFixed(2),
		Total:       total.StringFixed(2),
	}
}

func toOrderReportDTOs(records []*domain.OrderRecord) []*OrderReportDTO {
	dtos := make([]*OrderReportDTO, 0, len(records))
	for _, r := range records {
		dtos = append(dtos, toOrderReportDTO(r))
	}
	return dtos
}
