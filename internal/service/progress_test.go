package service

import (
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/testutil"
	"context"
	"testing"
)

func lessonsWith(statuses ...model.LessonStatus) []model.Lesson {
	lessons := make([]model.Lesson, len(statuses))
	for i, st := range statuses {
		lessons[i] = model.Lesson{Status: st}
	}
	return lessons
}

func TestCourseProgressWithoutLessons(t *testing.T) {
	p := CourseProgress(nil)
	if p.Total != 0 || p.Completed != 0 || p.Percentage != 0 {
		t.Fatalf("expected zero progress, got %+v", p)
	}
}

func TestDegreeProgressIsFlattened(t *testing.T) {
	small := model.Course{Lessons: lessonsWith(model.LessonCompleted)}
	large := model.Course{Lessons: lessonsWith(
		model.LessonCompleted, model.LessonNotStarted, model.LessonStarted, model.LessonNotStarted,
		model.LessonNotStarted, model.LessonNotStarted, model.LessonNotStarted, model.LessonNotStarted,
		model.LessonNotStarted,
	)}

	if p := CourseProgress(small.Lessons); p.Percentage != 100 {
		t.Fatalf("small course: %+v", p)
	}
	if p := CourseProgress(large.Lessons); p.Percentage != 11 {
		t.Fatalf("large course: %+v", p)
	}
	// 2/10 = 20%，而两门课百分比平均值是 56%
	p := DegreeProgress([]model.Course{small, large})
	if p.Completed != 2 || p.Total != 10 || p.Percentage != 20 {
		t.Fatalf("degree progress: %+v", p)
	}
}

func TestHomeRollup(t *testing.T) {
	lessons := []model.Lesson{
		{UUIDBase: model.UUIDBase{ID: "a"}, Status: model.LessonCompleted},
		{UUIDBase: model.UUIDBase{ID: "b"}, Status: model.LessonCompleted},
		{UUIDBase: model.UUIDBase{ID: "c"}, Status: model.LessonStarted},
	}
	s80, s75, s10 := 80, 75, 10
	progress := []model.UserLessonProgress{
		{LessonID: "a", TestScore: &s80},
		{LessonID: "b", TestScore: &s75},
		{LessonID: "c"},
		{LessonID: "deleted", TestScore: &s10},
	}
	stats := HomeRollup(lessons, progress)
	if stats.TotalLessonsCompleted != 2 || stats.TotalTestsCompleted != 2 || stats.AverageTestScore != 78 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if empty := HomeRollup(nil, nil); empty.AverageTestScore != 0 || empty.TotalTestsCompleted != 0 {
		t.Fatalf("expected zero stats, got %+v", empty)
	}
}

func TestGetHomeContentAcrossTwoCourses(t *testing.T) {
	f := newFixture(t, failingCompleter{})
	degree := &model.Degree{Name: "Physics", UserID: f.user.ID}
	if err := f.db.Create(degree).Error; err != nil {
		t.Fatalf("create degree: %v", err)
	}
	testutil.SeedCourse(t, f.db, f.user.ID, &degree.ID, "Mechanics",
		model.LessonCompleted, model.LessonCompleted, model.LessonStarted)
	testutil.SeedCourse(t, f.db, f.user.ID, &degree.ID, "Optics",
		model.LessonCompleted, model.LessonNotStarted)

	content, err := f.home.GetHomeContent(context.Background(), f.user.ID)
	if err != nil {
		t.Fatalf("GetHomeContent: %v", err)
	}
	if content.Stats.TotalLessonsCompleted != 3 {
		t.Fatalf("lessons completed: %+v", content.Stats)
	}
	if len(content.Degrees) != 1 {
		t.Fatalf("expected one degree, got %d", len(content.Degrees))
	}
	view := content.Degrees[0]
	if view.Progress.Completed != 3 || view.Progress.Total != 5 || view.Progress.Percentage != 60 {
		t.Fatalf("degree progress: %+v", view.Progress)
	}
	perCourse := map[string]int{}
	for _, c := range view.Courses {
		perCourse[c.Name] = c.Progress.Percentage
	}
	if perCourse["Mechanics"] != 67 || perCourse["Optics"] != 50 {
		t.Fatalf("course percentages: %+v", perCourse)
	}
	if len(content.Courses) != 0 {
		t.Fatalf("degree courses should not be listed as standalone")
	}
	if len(content.RecentLessons) != 4 {
		t.Fatalf("expected 4 touched lessons, got %d", len(content.RecentLessons))
	}
}
