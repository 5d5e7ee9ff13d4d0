package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const channelPrefix = "review:progress:"

// ProgressMessage 评审任务状态变更消息，推送给 WebSocket 在线用户
type ProgressMessage struct {
	TaskID    string    `json:"taskId"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Publisher 任务进度发布器
type Publisher struct {
	client *redis.Client
}

func NewPublisher(client *redis.Client) *Publisher {
	return &Publisher{client: client}
}

func channelFor(userID string) string {
	return channelPrefix + userID
}

// Publish 发布任务进度到用户频道
func (p *Publisher) Publish(ctx context.Context, userID string, msg *ProgressMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("序列化进度消息失败: %w", err)
	}
	return p.client.Publish(ctx, channelFor(userID), data).Err()
}

// Subscriber 订阅所有用户频道，将消息转交给回调
type Subscriber struct {
	client *redis.Client
}

func NewSubscriber(client *redis.Client) *Subscriber {
	return &Subscriber{client: client}
}

// Subscribe 模式订阅所有进度频道；阻塞直到 ctx 取消。
// 回调参数为目标用户ID与消息体。
func (s *Subscriber) Subscribe(ctx context.Context, handler func(userID string, msg *ProgressMessage)) error {
	sub := s.client.PSubscribe(ctx, channelPrefix+"*")
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-ch:
			if !ok {
				return nil
			}
			var msg ProgressMessage
			if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
				continue
			}
			userID := m.Channel[len(channelPrefix):]
			handler(userID, &msg)
		}
	}
}
