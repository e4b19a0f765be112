// Package messaging 将订单领域事件接入 outbox 投递管道
package messaging

import (
	"context"

	"github.com/wyfcoding/pkg/messagequeue/outbox"
	"github.com/wyfcoding/wheelmaster/internal/ordering/domain"
	"gorm.io/gorm"
)

// orderEventPublisher 通过 outbox 表发布订单事件
// 事件随订单落库，由后台 processor 异步投递到 Kafka，下单路径不直接依赖 broker 可用性
type orderEventPublisher struct {
	manager *outbox.Manager
	db      *gorm.DB
}

// NewOutboxPublisher 创建基于 outbox 的订单事件发布者
func NewOutboxPublisher(manager *outbox.Manager, db *gorm.DB) domain.EventPublisher {
	return &orderEventPublisher{manager: manager, db: db}
}

// Publish 将订单事件写入 outbox 表等待投递
func (p *orderEventPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	return p.manager.PublishInTx(p.db, topic, key, event)
}
