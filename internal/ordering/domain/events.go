package domain

import "time"

// OrderPlacedEvent 订单创建事件
type OrderPlacedEvent struct {
	OrderID      uint      `json:"order_id"`
	ProductID    uint      `json:"product_id"`
	Quantity     int       `json:"quantity"`
	CustomerName string    `json:"customer_name"`
	Timestamp    time.Time `json:"timestamp"`
}
