package repository

import (
	"acceluni_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

type DegreeRepository struct {
	DB *gorm.DB
}

func NewDegreeRepository(db *gorm.DB) *DegreeRepository {
	return &DegreeRepository{DB: db}
}

func preloadCurriculum(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Courses", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("course_order asc, created_at asc")
		}).
		Preload("Courses.Lessons", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("lesson_order asc, created_at asc")
		})
}

func (r *DegreeRepository) Create(ctx context.Context, degree *model.Degree) error {
	return r.DB.WithContext(ctx).Create(degree).Error
}

// FindByIDForUser 按所有者查询学位，包含课程和课时
func (r *DegreeRepository) FindByIDForUser(ctx context.Context, id string, userID uint) (*model.Degree, error) {
	var degree model.Degree
	err := preloadCurriculum(r.DB.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, userID).
		First(&degree).Error
	return &degree, err
}

func (r *DegreeRepository) ListByUser(ctx context.Context, userID uint) ([]model.Degree, error) {
	var degrees []model.Degree
	err := preloadCurriculum(r.DB.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&degrees).Error
	return degrees, err
}

func (r *DegreeRepository) Update(ctx context.Context, degree *model.Degree) error {
	return r.DB.WithContext(ctx).Model(degree).Select("name", "description", "icon").Updates(degree).Error
}

// SoftDelete 软删除学位及其下属课程
func (r *DegreeRepository) SoftDelete(ctx context.Context, id string, userID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Degree{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("degree_id = ? AND user_id = ?", id, userID).Delete(&model.Course{}).Error
	})
}
