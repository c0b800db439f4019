package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"taskboard/domain/models"
	"taskboard/pkg/logger"
)

// TaskCache caches the default task listing (no sort keys, no status
// filter) per user. Every mutation invalidates the owner's entry, so a
// stale read can only last until the next write.
type TaskCache struct {
	client *Client
	ttl    time.Duration
}

func NewTaskCache(client *Client, ttl time.Duration) *TaskCache {
	return &TaskCache{client: client, ttl: ttl}
}

func taskListKey(userID uint) string {
	return fmt.Sprintf("tasks:user:%d", userID)
}

// Get returns the cached list, or (nil, false) on miss.
func (c *TaskCache) Get(ctx context.Context, userID uint) ([]*models.Task, bool) {
	var tasks []*models.Task
	err := c.client.GetJSON(ctx, taskListKey(userID), &tasks)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WarnContext(ctx, "Task cache read failed", "user_id", userID, "error", err)
		}
		return nil, false
	}
	return tasks, true
}

func (c *TaskCache) Set(ctx context.Context, userID uint, tasks []*models.Task) {
	if err := c.client.SetJSON(ctx, taskListKey(userID), tasks, c.ttl); err != nil {
		logger.WarnContext(ctx, "Task cache write failed", "user_id", userID, "error", err)
	}
}

// Invalidate drops the user's entry. Cache ล้มเหลวไม่ทำให้ mutation ล้ม
func (c *TaskCache) Invalidate(ctx context.Context, userID uint) {
	if err := c.client.Del(ctx, taskListKey(userID)); err != nil {
		logger.WarnContext(ctx, "Task cache invalidation failed", "user_id", userID, "error", err)
	}
}
