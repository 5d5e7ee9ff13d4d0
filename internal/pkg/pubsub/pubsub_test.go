package pubsub

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishSubscribe(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	received := make(map[string]*ProgressMessage)

	sub := NewSubscriber(client)
	go sub.Subscribe(ctx, func(userID string, msg *ProgressMessage) {
		mu.Lock()
		received[userID] = msg
		mu.Unlock()
	})

	// 等待订阅建立
	time.Sleep(50 * time.Millisecond)

	pub := NewPublisher(client)
	msg := &ProgressMessage{TaskID: "t1", Status: "DONE", UpdatedAt: time.Now()}
	require.NoError(t, pub.Publish(ctx, "user-1", msg))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return received["user-1"] != nil
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	got := received["user-1"]
	mu.Unlock()
	assert.Equal(t, "t1", got.TaskID)
	assert.Equal(t, "DONE", got.Status)
}
