package repository

import (
	"acceluni_backend/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

// FindActive 返回最晚到期的有效订阅，没有时返回 nil, nil
func (r *SubscriptionRepository) FindActive(ctx context.Context, userID uint, now time.Time) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, model.SubscriptionActive).
		Where("(expires_at IS NULL OR expires_at > ?)", now).
		Order("expires_at desc").
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	return r.DB.WithContext(ctx).Create(sub).Error
}

// ExpireBefore 将已过期的有效订阅标记为 expired，返回影响行数
func (r *SubscriptionRepository) ExpireBefore(ctx context.Context, now time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", model.SubscriptionActive, now).
		Update("status", model.SubscriptionExpired)
	return res.RowsAffected, res.Error
}

func (r *SubscriptionRepository) FindTrial(ctx context.Context, userID uint) (*model.UserTrial, error) {
	var trial model.UserTrial
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&trial).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trial, nil
}

func (r *SubscriptionRepository) CreateTrial(ctx context.Context, trial *model.UserTrial) error {
	return r.DB.WithContext(ctx).Create(trial).Error
}
