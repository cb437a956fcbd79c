package service

import (
	"Agora/pkg/log"
	"context"
	"time"

	"go.uber.org/zap"
)

// 活动事件类型
const (
	ActivityKindThread = "forum_thread" // 新主题
	ActivityKindPost   = "forum_post"   // 新回帖(不含主题首帖)
)

const activityPublishTimeout = 3 * time.Second

// ActivitySink 活动事件出口 引擎只管投递 不关心下游行为
type ActivitySink interface {
	Publish(ctx context.Context, kind string, fields map[string]any) error
}

// NopSink 空实现 测试或未接入动态服务时使用
type NopSink struct{}

func (NopSink) Publish(ctx context.Context, kind string, fields map[string]any) error {
	return nil
}

// dispatchActivity 异步投递活动事件
// 投递失败只记日志 绝不影响发帖事务
func dispatchActivity(sink ActivitySink, kind string, fields map[string]any) {
	if sink == nil {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("activity dispatch panic", zap.Any("recover", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), activityPublishTimeout)
		defer cancel()

		if err := sink.Publish(ctx, kind, fields); err != nil {
			log.L.Warn("activity dispatch failed",
				zap.String("kind", kind),
				zap.Error(err),
			)
		}
	}()
}
