package domain

import "context"

// EventPublisher 事件发布者接口
type EventPublisher interface {
	// Publish 发布一个领域事件
	Publish(ctx context.Context, topic string, key string, event any) error
}
