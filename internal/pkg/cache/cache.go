package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// FeedCache 论文feed分页缓存（redis）
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFeedCache(client *redis.Client, ttl time.Duration) *FeedCache {
	return &FeedCache{client: client, ttl: ttl}
}

func feedKey(keywords string, page, pageSize int) string {
	return fmt.Sprintf("feed:%s:%d:%d", keywords, page, pageSize)
}

// Get 命中返回 true 并反序列化到 out
func (c *FeedCache) Get(ctx context.Context, keywords string, page, pageSize int, out interface{}) (bool, error) {
	data, err := c.client.Get(ctx, feedKey(keywords, page, pageSize)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

// Set 写入一页feed结果
func (c *FeedCache) Set(ctx context.Context, keywords string, page, pageSize int, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, feedKey(keywords, page, pageSize), data, c.ttl).Err()
}
