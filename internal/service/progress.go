package service

import (
	"context"
	"log"
	"time"

	"github.com/bmh201708/ResearchPilot/internal/pkg/pubsub"
	"github.com/bmh201708/ResearchPilot/internal/review"
)

// TaskProgressNotifier 把任务状态变更发布到redis，供WebSocket网关订阅转发
type TaskProgressNotifier struct {
	publisher *pubsub.Publisher
}

func NewTaskProgressNotifier(publisher *pubsub.Publisher) *TaskProgressNotifier {
	return &TaskProgressNotifier{publisher: publisher}
}

// Notify 实现 review.ProgressNotifier
func (n *TaskProgressNotifier) Notify(userID string, task *review.Task) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	msg := &pubsub.ProgressMessage{
		TaskID:    task.TaskID,
		Status:    task.Status,
		Error:     task.Error,
		UpdatedAt: task.UpdatedAt,
	}
	if err := n.publisher.Publish(ctx, userID, msg); err != nil {
		log.Printf("发布任务进度失败: %v", err)
	}
}
