package cache

import (
	"Agora/config"
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// 活动事件流长度上限 超出由 redis 近似裁剪
const activityStreamMaxLen = 8192

// ActivityStorage 活动事件流 外部动态服务从这里消费
type ActivityStorage struct {
	redis  *redis.Client
	stream string
}

func NewActivityStorage(rds *redis.Client, conf *config.Config) *ActivityStorage {
	return &ActivityStorage{redis: rds, stream: conf.Forum.ActivityStream}
}

// Publish 发布一条活动事件
// @params kind   事件类型 forum_thread / forum_post
// @params fields 事件载荷
func (a *ActivityStorage) Publish(ctx context.Context, kind string, fields map[string]any) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	return a.redis.XAdd(ctx, &redis.XAddArgs{
		Stream: a.stream,
		MaxLen: activityStreamMaxLen,
		Approx: true,
		Values: map[string]any{
			"id":      uuid.NewString(),
			"kind":    kind,
			"payload": payload,
			"ts":      time.Now().UnixMilli(),
		},
	}).Err()
}
