package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LockStorage 分布式锁 对账任务用它避免同一版块子树被并发重算
type LockStorage struct {
	redis *redis.Client
}

func NewLockStorage(rds *redis.Client) *LockStorage {
	return &LockStorage{redis: rds}
}

// Acquire 尝试加锁 拿不到返回 false
func (l *LockStorage) Acquire(ctx context.Context, name string, expire time.Duration) (bool, error) {
	return l.redis.SetNX(ctx, l.key(name), 1, expire).Result()
}

// Release 释放锁
func (l *LockStorage) Release(ctx context.Context, name string) {
	l.redis.Del(ctx, l.key(name))
}

func (l *LockStorage) key(name string) string {
	return fmt.Sprintf("lock:%s", name)
}
