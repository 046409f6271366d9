package service

import (
	"acceluni_backend/internal/config"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func newBackgroundService() *GenerationService {
	return NewGenerationService(nil, nil, nil, nil, nil, config.GenerationConfig{BackgroundTimeout: 60})
}

func TestShutdownWaitsForBackgroundBatches(t *testing.T) {
	s := newBackgroundService()
	started := make(chan struct{})
	release := make(chan struct{})
	var finished int32

	s.InBackground("lessons", func(ctx context.Context) (*BatchResult, error) {
		close(started)
		<-release
		atomic.StoreInt32(&finished, 1)
		return &BatchResult{Created: 1, Expected: 1}, nil
	})
	<-started

	go func() {
		time.Sleep(20 * time.Millisecond)
		close(release)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if atomic.LoadInt32(&finished) != 1 {
		t.Fatalf("Shutdown returned before the batch finished")
	}
}

func TestShutdownCancelsBatchesPastDeadline(t *testing.T) {
	s := newBackgroundService()
	started := make(chan struct{})
	var taskErr atomic.Value

	s.InBackground("courses", func(ctx context.Context) (*BatchResult, error) {
		close(started)
		<-ctx.Done()
		taskErr.Store(ctx.Err())
		return nil, ctx.Err()
	})
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := s.Shutdown(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Shutdown: got=%v want deadline exceeded", err)
	}
	// Shutdown 返回时任务已退出
	if err, _ := taskErr.Load().(error); !errors.Is(err, context.Canceled) {
		t.Fatalf("batch context: got=%v want canceled", err)
	}
}

func TestInBackgroundAfterShutdownIsSkipped(t *testing.T) {
	s := newBackgroundService()
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	ran := false
	s.Dispatch = func(task func()) { task() }
	s.InBackground("test", func(ctx context.Context) (*BatchResult, error) {
		ran = true
		return &BatchResult{}, nil
	})
	if ran {
		t.Fatalf("task dispatched after shutdown")
	}
}
