package repository

import (
	"acceluni_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func preloadLessons(db *gorm.DB) *gorm.DB {
	return db.Preload("Lessons", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("lesson_order asc, created_at asc")
	})
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.DB.WithContext(ctx).Create(course).Error
}

func (r *CourseRepository) FindByIDForUser(ctx context.Context, id string, userID uint) (*model.Course, error) {
	var course model.Course
	err := preloadLessons(r.DB.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, userID).
		First(&course).Error
	return &course, err
}

// ListByUser 列出用户的课程；standaloneOnly 时只返回不属于学位的课程
func (r *CourseRepository) ListByUser(ctx context.Context, userID uint, standaloneOnly bool) ([]model.Course, error) {
	var courses []model.Course
	q := preloadLessons(r.DB.WithContext(ctx)).Where("user_id = ?", userID)
	if standaloneOnly {
		q = q.Where("(degree_id IS NULL OR degree_id = '')")
	}
	err := q.Order("created_at desc").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) ListByDegree(ctx context.Context, degreeID string, userID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.WithContext(ctx).
		Where("degree_id = ? AND user_id = ?", degreeID, userID).
		Order("course_order asc").
		Find(&courses).Error
	return courses, err
}

// NextOrder 返回学位下一门课程的序号
func (r *CourseRepository) NextOrder(ctx context.Context, degreeID string) (int, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Course{}).Where("degree_id = ?", degreeID).Count(&count).Error
	return int(count), err
}

func (r *CourseRepository) Update(ctx context.Context, course *model.Course) error {
	return r.DB.WithContext(ctx).Model(course).Select("name", "description", "icon").Updates(course).Error
}

func (r *CourseRepository) SoftDelete(ctx context.Context, id string, userID uint) error {
	res := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Course{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
