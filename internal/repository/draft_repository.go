package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	draftKeyPrefix = "acceluni:course-creation-draft:"
	draftTTL       = 30 * 24 * time.Hour
)

// DraftRepository 在 Redis 中保存创建向导草稿
type DraftRepository struct {
	Redis *redis.Client
}

func NewDraftRepository(rdb *redis.Client) *DraftRepository {
	return &DraftRepository{Redis: rdb}
}

func draftKey(userID uint) string {
	return fmt.Sprintf("%s%d", draftKeyPrefix, userID)
}

// Load 草稿不存在时返回 nil, nil
func (r *DraftRepository) Load(ctx context.Context, userID uint) ([]byte, error) {
	val, err := r.Redis.Get(ctx, draftKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return val, err
}

func (r *DraftRepository) Save(ctx context.Context, userID uint, data []byte) error {
	return r.Redis.Set(ctx, draftKey(userID), data, draftTTL).Err()
}

func (r *DraftRepository) Clear(ctx context.Context, userID uint) error {
	return r.Redis.Del(ctx, draftKey(userID)).Err()
}
