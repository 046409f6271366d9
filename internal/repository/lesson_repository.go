package repository

import (
	"acceluni_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

// ownedLessons 只保留所属课程属于该用户且未删除的课时
func ownedLessons(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&model.Lesson{}).
		Joins("JOIN courses ON courses.id = lessons.course_id AND courses.deleted_at IS NULL").
		Where("courses.user_id = ?", userID)
}

func (r *LessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	return r.DB.WithContext(ctx).Create(lesson).Error
}

func (r *LessonRepository) FindByIDForUser(ctx context.Context, id string, userID uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := ownedLessons(r.DB.WithContext(ctx), userID).
		Where("lessons.id = ?", id).
		First(&lesson).Error
	return &lesson, err
}

// NextOrder 返回课程下一节课时的序号
func (r *LessonRepository) NextOrder(ctx context.Context, courseID string) (int, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Lesson{}).Where("course_id = ?", courseID).Count(&count).Error
	return int(count), err
}

func (r *LessonRepository) UpdateStatus(ctx context.Context, id string, status model.LessonStatus) error {
	return r.DB.WithContext(ctx).Model(&model.Lesson{}).Where("id = ?", id).Update("status", status).Error
}

func (r *LessonRepository) UpdateContent(ctx context.Context, id string, content string) error {
	return r.DB.WithContext(ctx).Model(&model.Lesson{}).Where("id = ?", id).Update("content", content).Error
}
