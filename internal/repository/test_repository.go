package repository

import (
	"acceluni_backend/internal/model"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TestRepository struct {
	DB *gorm.DB
}

func NewTestRepository(db *gorm.DB) *TestRepository {
	return &TestRepository{DB: db}
}

func (r *TestRepository) FindByLesson(ctx context.Context, lessonID string) (*model.Test, error) {
	var test model.Test
	err := r.DB.WithContext(ctx).Where("lesson_id = ?", lessonID).First(&test).Error
	return &test, err
}

// FindByIDForUser 通过课时和课程校验测试归属
func (r *TestRepository) FindByIDForUser(ctx context.Context, id string, userID uint) (*model.Test, error) {
	var test model.Test
	err := r.DB.WithContext(ctx).
		Joins("JOIN lessons ON lessons.id = tests.lesson_id AND lessons.deleted_at IS NULL").
		Joins("JOIN courses ON courses.id = lessons.course_id AND courses.deleted_at IS NULL").
		Where("tests.id = ? AND courses.user_id = ?", id, userID).
		First(&test).Error
	return &test, err
}

// Upsert 按 lesson_id 原子覆盖课时的测试，并发写入时后写者生效；created 表示是否为新建
func (r *TestRepository) Upsert(ctx context.Context, lessonID string, questions []model.Question) (*model.Test, bool, error) {
	test := model.Test{LessonID: lessonID}
	if err := test.EncodeQuestions(questions); err != nil {
		return nil, false, err
	}
	test.ID = uuid.New().String()
	inserted := test.ID

	db := r.DB.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "lesson_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"questions", "updated_at", "deleted_at"}),
	}).Create(&test).Error
	if err != nil {
		return nil, false, err
	}

	// 冲突时保留原行 ID，重新读取
	saved, err := r.FindByLesson(ctx, lessonID)
	if err != nil {
		return nil, false, err
	}
	return saved, saved.ID == inserted, nil
}
