package service

import (
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/repository"
	"acceluni_backend/internal/util"
	"context"
	"sort"
)

const recentLessonLimit = 5

type HomeService struct {
	DegreeRepo   *repository.DegreeRepository
	CourseRepo   *repository.CourseRepository
	ProgressRepo *repository.ProgressRepository
}

func NewHomeService(
	degreeRepo *repository.DegreeRepository,
	courseRepo *repository.CourseRepository,
	progressRepo *repository.ProgressRepository,
) *HomeService {
	return &HomeService{DegreeRepo: degreeRepo, CourseRepo: courseRepo, ProgressRepo: progressRepo}
}

type HomeContent struct {
	Stats         HomeStats      `json:"stats"`
	Degrees       []DegreeView   `json:"degrees"`
	Courses       []CourseView   `json:"courses"`
	RecentLessons []model.Lesson `json:"recentLessons"`
}

// GetHomeContent 每次请求都重新计算，不做缓存
func (s *HomeService) GetHomeContent(ctx context.Context, userID uint) (*HomeContent, error) {
	degrees, err := s.DegreeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, util.WrapInternal("list degrees", err)
	}
	courses, err := s.CourseRepo.ListByUser(ctx, userID, false)
	if err != nil {
		return nil, util.WrapInternal("list courses", err)
	}
	progress, err := s.ProgressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, util.WrapInternal("list progress", err)
	}

	var lessons []model.Lesson
	content := &HomeContent{
		Degrees:       make([]DegreeView, 0, len(degrees)),
		Courses:       []CourseView{},
		RecentLessons: []model.Lesson{},
	}
	for _, c := range courses {
		lessons = append(lessons, c.Lessons...)
		if c.IsStandalone() {
			content.Courses = append(content.Courses, newCourseView(c))
		}
	}
	for _, d := range degrees {
		content.Degrees = append(content.Degrees, newDegreeView(d))
	}
	content.Stats = HomeRollup(lessons, progress)
	content.RecentLessons = recentLessons(lessons, recentLessonLimit)
	return content, nil
}

func recentLessons(lessons []model.Lesson, limit int) []model.Lesson {
	touched := make([]model.Lesson, 0, len(lessons))
	for _, l := range lessons {
		if l.Status != model.LessonNotStarted {
			touched = append(touched, l)
		}
	}
	sort.SliceStable(touched, func(i, j int) bool {
		return touched[i].UpdatedAt.After(touched[j].UpdatedAt)
	})
	if len(touched) > limit {
		touched = touched[:limit]
	}
	return touched
}
