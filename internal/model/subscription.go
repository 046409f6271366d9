package model

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

type Subscription struct {
	BaseModel
	UserID    uint               `gorm:"index;not null" json:"userId"`
	Plan      string             `gorm:"size:50;not null" json:"plan"`
	Status    SubscriptionStatus `gorm:"size:20;index;not null" json:"status"`
	ExpiresAt *time.Time         `json:"expiresAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s *Subscription) IsActive(now time.Time) bool {
	if s.Status != SubscriptionActive {
		return false
	}
	return s.ExpiresAt == nil || s.ExpiresAt.After(now)
}

type UserTrial struct {
	BaseModel
	UserID    uint      `gorm:"uniqueIndex;not null" json:"userId"`
	StartedAt time.Time `json:"startedAt"`
	EndsAt    time.Time `json:"endsAt"`
}

func (UserTrial) TableName() string {
	return "user_trials"
}

func (t *UserTrial) IsActive(now time.Time) bool {
	return t.EndsAt.After(now)
}
