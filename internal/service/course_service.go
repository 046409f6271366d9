package service

import (
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/repository"
	"acceluni_backend/internal/util"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	DegreeRepo *repository.DegreeRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, degreeRepo *repository.DegreeRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo, DegreeRepo: degreeRepo}
}

type CourseInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DegreeID    *string `json:"degreeId"`
}

type CourseUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (s *CourseService) List(ctx context.Context, userID uint, standaloneOnly bool) ([]CourseView, error) {
	courses, err := s.CourseRepo.ListByUser(ctx, userID, standaloneOnly)
	if err != nil {
		return nil, util.WrapInternal("list courses", err)
	}
	views := make([]CourseView, 0, len(courses))
	for _, c := range courses {
		views = append(views, newCourseView(c))
	}
	return views, nil
}

func (s *CourseService) load(ctx context.Context, userID uint, id string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByIDForUser(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFoundError("course")
	}
	if err != nil {
		return nil, util.WrapInternal("load course", err)
	}
	return course, nil
}

func (s *CourseService) Get(ctx context.Context, userID uint, id string) (*CourseView, error) {
	course, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	view := newCourseView(*course)
	return &view, nil
}

// Create 指定 degreeId 时课程追加到该学位末尾
func (s *CourseService) Create(ctx context.Context, userID uint, in CourseInput) (*model.Course, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, util.NewValidationError("name is required")
	}
	course := &model.Course{Name: name, Description: strings.TrimSpace(in.Description), UserID: userID}

	if in.DegreeID != nil && *in.DegreeID != "" {
		degree, err := s.DegreeRepo.FindByIDForUser(ctx, *in.DegreeID, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewNotFoundError("degree")
		}
		if err != nil {
			return nil, util.WrapInternal("load degree", err)
		}
		order, err := s.CourseRepo.NextOrder(ctx, degree.ID)
		if err != nil {
			return nil, util.WrapInternal("count courses", err)
		}
		degreeID := degree.ID
		course.DegreeID = &degreeID
		course.CourseOrder = order
	}

	if err := s.CourseRepo.Create(ctx, course); err != nil {
		return nil, util.WrapInternal("create course", err)
	}
	return course, nil
}

func (s *CourseService) Update(ctx context.Context, userID uint, id string, in CourseUpdate) (*model.Course, error) {
	course, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, util.NewValidationError("name must not be empty")
		}
		course.Name = name
	}
	if in.Description != nil {
		course.Description = strings.TrimSpace(*in.Description)
	}
	if err := s.CourseRepo.Update(ctx, course); err != nil {
		return nil, util.WrapInternal("update course", err)
	}
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, userID uint, id string) error {
	err := s.CourseRepo.SoftDelete(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.NewNotFoundError("course")
	}
	if err != nil {
		return util.WrapInternal("delete course", err)
	}
	return nil
}

func (s *CourseService) SetIcon(ctx context.Context, userID uint, id, url string) (*model.Course, error) {
	course, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	course.Icon = url
	if err := s.CourseRepo.Update(ctx, course); err != nil {
		return nil, util.WrapInternal("update course", err)
	}
	return course, nil
}
