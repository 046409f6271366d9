package service

import (
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/util"
	"context"
	"testing"
	"time"
)

func TestRequireAccessWithoutSubscription(t *testing.T) {
	f := newFixture(t, failingCompleter{})
	err := f.subscriptions.RequireAccess(context.Background(), f.user.ID)
	if !util.IsKind(err, util.KindSubscriptionRequired) {
		t.Fatalf("expected subscription required, got %v", err)
	}
	if _, err := f.degrees.Create(context.Background(), f.user.ID, "Gated", ""); !util.IsKind(err, util.KindSubscriptionRequired) {
		t.Fatalf("degree creation should be gated, got %v", err)
	}
}

func TestStartTrialOnce(t *testing.T) {
	f := newFixture(t, failingCompleter{})
	ctx := context.Background()

	trial, err := f.subscriptions.StartTrial(ctx, f.user.ID)
	if err != nil {
		t.Fatalf("StartTrial: %v", err)
	}
	if !trial.EndsAt.Equal(trial.StartedAt.AddDate(0, 0, 7)) {
		t.Fatalf("trial should last 7 days: %v -> %v", trial.StartedAt, trial.EndsAt)
	}
	if ok, err := f.subscriptions.HasAccess(ctx, f.user.ID); err != nil || !ok {
		t.Fatalf("trial should grant access: ok=%v err=%v", ok, err)
	}
	if _, err := f.subscriptions.StartTrial(ctx, f.user.ID); !util.IsKind(err, util.KindValidation) {
		t.Fatalf("second trial should fail, got %v", err)
	}

	// 试用结束后失去权限
	f.subscriptions.now = func() time.Time { return time.Now().AddDate(0, 0, 8) }
	if ok, _ := f.subscriptions.HasAccess(ctx, f.user.ID); ok {
		t.Fatalf("expired trial should not grant access")
	}
}

func TestExpireSubscriptions(t *testing.T) {
	f := newFixture(t, failingCompleter{})
	ctx := context.Background()

	if _, err := f.subscriptions.GrantSubscription(ctx, f.user.ID, "pro", 1); err != nil {
		t.Fatalf("GrantSubscription: %v", err)
	}
	if ok, _ := f.subscriptions.HasAccess(ctx, f.user.ID); !ok {
		t.Fatalf("granted subscription should give access")
	}

	f.subscriptions.now = func() time.Time { return time.Now().AddDate(0, 2, 0) }
	n, err := f.subscriptions.ExpireSubscriptions(ctx)
	if err != nil || n != 1 {
		t.Fatalf("ExpireSubscriptions: n=%d err=%v", n, err)
	}
	var sub model.Subscription
	f.db.First(&sub)
	if sub.Status != model.SubscriptionExpired {
		t.Fatalf("status %s", sub.Status)
	}
}
