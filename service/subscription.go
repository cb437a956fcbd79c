package service

import (
	"Agora/dao"
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotLoggedIn = errors.New("未登录")

var _ ISubscriptionService = (*SubscriptionService)(nil)

type ISubscriptionService interface {
	Subscribe(ctx context.Context, threadID, userID uint64) error
	Unsubscribe(ctx context.Context, threadID, userID uint64) error
	IsSubscribed(ctx context.Context, threadID, userID uint64) (bool, error)
}

type SubscriptionService struct {
	DB              *gorm.DB
	ThreadDAO       *dao.ThreadDAO
	SubscriptionDAO *dao.SubscriptionDAO
	Propagation     *PropagationService
}

// Subscribe 订阅主题 重复订阅直接返回成功
func (s *SubscriptionService) Subscribe(ctx context.Context, threadID, userID uint64) error {
	if userID == 0 {
		return ErrNotLoggedIn
	}

	exist, err := s.ThreadDAO.IsExist(ctx, "id = ?", threadID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrThreadNotFound
	}

	subscribed, err := s.SubscriptionDAO.IsSubscribed(ctx, threadID, userID)
	if err != nil {
		return err
	}
	if subscribed {
		// 已经订阅过 幂等返回
		return nil
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.SubscriptionDAO.SetStatus(ctx, tx, threadID, userID, 1); err != nil {
			return err
		}
		return s.Propagation.RecordSubscriptionChange(ctx, tx, threadID)
	})
}

// Unsubscribe 退订主题 未订阅时静默成功
func (s *SubscriptionService) Unsubscribe(ctx context.Context, threadID, userID uint64) error {
	if userID == 0 {
		return ErrNotLoggedIn
	}

	exist, err := s.ThreadDAO.IsExist(ctx, "id = ?", threadID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrThreadNotFound
	}

	subscribed, err := s.SubscriptionDAO.IsSubscribed(ctx, threadID, userID)
	if err != nil {
		return err
	}
	if !subscribed {
		return nil
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.SubscriptionDAO.SetStatus(ctx, tx, threadID, userID, 0); err != nil {
			return err
		}
		return s.Propagation.RecordSubscriptionChange(ctx, tx, threadID)
	})
}

// IsSubscribed 查询订阅状态 匿名用户恒为未订阅 不查库
func (s *SubscriptionService) IsSubscribed(ctx context.Context, threadID, userID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.SubscriptionDAO.IsSubscribed(ctx, threadID, userID)
}
