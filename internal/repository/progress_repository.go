package repository

import (
	"acceluni_backend/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Find 不存在时返回 nil, nil
func (r *ProgressRepository) Find(ctx context.Context, userID uint, lessonID string) (*model.UserLessonProgress, error) {
	var p model.UserLessonProgress
	err := r.DB.WithContext(ctx).Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert 按 (user_id, lesson_id) 原子写入进度：
// test_score 取本次的值（为空时保留原值），completed_at 只在首次写入后保持不变
func (r *ProgressRepository) Upsert(ctx context.Context, p *model.UserLessonProgress) error {
	db := r.DB.WithContext(ctx)
	row := model.UserLessonProgress{
		UserID:      p.UserID,
		LessonID:    p.LessonID,
		TestScore:   p.TestScore,
		CompletedAt: p.CompletedAt,
	}
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"test_score":   gorm.Expr("COALESCE(" + incoming(db, "test_score") + ", user_lesson_progress.test_score)"),
			"completed_at": gorm.Expr("COALESCE(user_lesson_progress.completed_at, " + incoming(db, "completed_at") + ")"),
			"updated_at":   gorm.Expr(incoming(db, "updated_at")),
		}),
	}).Create(&row).Error
}

// incoming 引用冲突行中待写入的列值，MySQL 使用 VALUES()
func incoming(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "mysql" {
		return "VALUES(" + column + ")"
	}
	return "excluded." + column
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID uint) ([]model.UserLessonProgress, error) {
	var rows []model.UserLessonProgress
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}
