package service

import (
	"acceluni_backend/internal/config"
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/repository"
	"acceluni_backend/internal/util"
	"acceluni_backend/pkg/logger"
	"context"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type SubscriptionService struct {
	Repo *repository.SubscriptionRepository
	Cfg  config.SubscriptionConfig
	now  func() time.Time
}

func NewSubscriptionService(repo *repository.SubscriptionRepository, cfg config.SubscriptionConfig) *SubscriptionService {
	return &SubscriptionService{Repo: repo, Cfg: cfg, now: time.Now}
}

type AccessStatus struct {
	HasAccess      bool                `json:"hasAccess"`
	Subscription   *model.Subscription `json:"subscription,omitempty"`
	Trial          *model.UserTrial    `json:"trial,omitempty"`
	TrialAvailable bool                `json:"trialAvailable"`
}

func (s *SubscriptionService) Status(ctx context.Context, userID uint) (*AccessStatus, error) {
	now := s.now()
	sub, err := s.Repo.FindActive(ctx, userID, now)
	if err != nil {
		return nil, util.WrapInternal("load subscription", err)
	}
	trial, err := s.Repo.FindTrial(ctx, userID)
	if err != nil {
		return nil, util.WrapInternal("load trial", err)
	}

	status := &AccessStatus{Subscription: sub, Trial: trial, TrialAvailable: trial == nil}
	status.HasAccess = (sub != nil && sub.IsActive(now)) || (trial != nil && trial.IsActive(now))
	return status, nil
}

// HasAccess 有效订阅或未过期试用
func (s *SubscriptionService) HasAccess(ctx context.Context, userID uint) (bool, error) {
	status, err := s.Status(ctx, userID)
	if err != nil {
		return false, err
	}
	return status.HasAccess, nil
}

func (s *SubscriptionService) RequireAccess(ctx context.Context, userID uint) error {
	ok, err := s.HasAccess(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return util.NewSubscriptionRequiredError()
	}
	return nil
}

// StartTrial 每个用户只能试用一次
func (s *SubscriptionService) StartTrial(ctx context.Context, userID uint) (*model.UserTrial, error) {
	existing, err := s.Repo.FindTrial(ctx, userID)
	if err != nil {
		return nil, util.WrapInternal("load trial", err)
	}
	if existing != nil {
		return nil, util.ErrTrialAlreadyUsed
	}

	days := s.Cfg.TrialDays
	if days <= 0 {
		days = 7
	}
	now := s.now()
	trial := &model.UserTrial{UserID: userID, StartedAt: now, EndsAt: now.AddDate(0, 0, days)}
	if err := s.Repo.CreateTrial(ctx, trial); err != nil {
		return nil, util.WrapInternal("create trial", err)
	}
	logger.Log.Info("trial started", zap.Uint("userID", userID), zap.Time("endsAt", trial.EndsAt))
	return trial, nil
}

// GrantSubscription 管理员手动开通；months 为 0 表示不过期
func (s *SubscriptionService) GrantSubscription(ctx context.Context, userID uint, plan string, months int) (*model.Subscription, error) {
	plan = strings.TrimSpace(plan)
	if plan == "" {
		return nil, util.NewValidationError("plan is required")
	}
	if months < 0 {
		return nil, util.NewValidationError("months must not be negative")
	}

	sub := &model.Subscription{UserID: userID, Plan: plan, Status: model.SubscriptionActive}
	if months > 0 {
		expires := s.now().AddDate(0, months, 0)
		sub.ExpiresAt = &expires
	}
	if err := s.Repo.Create(ctx, sub); err != nil {
		return nil, util.WrapInternal("create subscription", err)
	}
	return sub, nil
}

func (s *SubscriptionService) ExpireSubscriptions(ctx context.Context) (int64, error) {
	n, err := s.Repo.ExpireBefore(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Log.Info("subscriptions expired", zap.Int64("count", n))
	}
	return n, nil
}

// StartScheduler 按 sweep_cron 定期把过期订阅标记为 expired，调用方负责 Stop
func (s *SubscriptionService) StartScheduler(ctx context.Context) (*cron.Cron, error) {
	spec := s.Cfg.SweepCron
	if spec == "" {
		spec = "@hourly"
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if _, err := s.ExpireSubscriptions(ctx); err != nil {
			logger.Log.Error("subscription sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logger.Log.Info("subscription scheduler started", zap.String("schedule", spec))
	return c, nil
}
