package service

import (
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/testutil"
	"acceluni_backend/internal/util"
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"
)

func TestGenerateCoursesFallsBackToTemplates(t *testing.T) {
	f := newFixture(t, failingCompleter{})
	ctx := context.Background()
	degree := &model.Degree{Name: "Data Science", UserID: f.user.ID}
	if err := f.db.Create(degree).Error; err != nil {
		t.Fatalf("create degree: %v", err)
	}

	res, err := f.generation.GenerateCourses(ctx, f.user.ID, degree.ID, 0)
	if err != nil {
		t.Fatalf("GenerateCourses: %v", err)
	}
	if !res.Fallback || res.Created != 8 || res.Expected != 8 || len(res.Failed) != 0 {
		t.Fatalf("unexpected batch: created=%d expected=%d failed=%v fallback=%v", res.Created, res.Expected, res.Failed, res.Fallback)
	}

	courses, err := f.courseRepo.ListByDegree(ctx, degree.ID, f.user.ID)
	if err != nil {
		t.Fatalf("ListByDegree: %v", err)
	}
	if len(courses) != 8 {
		t.Fatalf("expected 8 courses, got %d", len(courses))
	}
	for i, c := range courses {
		if c.CourseOrder != i {
			t.Fatalf("course %d has order %d", i, c.CourseOrder)
		}
		if want := fmt.Sprintf(fallbackCourseTemplates[i], "Data Science"); c.Name != want {
			t.Fatalf("course %d name %q want %q", i, c.Name, want)
		}
	}
}

func TestGenerateLessonsFromModelReply(t *testing.T) {
	reply := "```json\n[{\"name\":\"Vectors\",\"description\":\"d1\"},{\"name\":\"Matrices\",\"description\":\"d2\"}]\n```"
	f := newFixture(t, stubCompleter{reply: reply})
	course := testutil.SeedCourse(t, f.db, f.user.ID, nil, "Linear Algebra", model.LessonCompleted)

	res, err := f.generation.GenerateLessons(context.Background(), f.user.ID, course.ID, 2)
	if err != nil {
		t.Fatalf("GenerateLessons: %v", err)
	}
	if res.Fallback || res.Created != 2 {
		t.Fatalf("unexpected batch: %+v", res)
	}
	if res.Lessons[0].Name != "Vectors" || res.Lessons[0].LessonOrder != 1 || res.Lessons[1].LessonOrder != 2 {
		t.Fatalf("lessons should follow existing ones: %+v", res.Lessons)
	}
}

func TestGenerateCoursesRejectsForeignDegree(t *testing.T) {
	f := newFixture(t, failingCompleter{})
	other := testutil.SeedUser(t, f.db, "other@example.com")
	degree := &model.Degree{Name: "Hidden", UserID: other.ID}
	if err := f.db.Create(degree).Error; err != nil {
		t.Fatalf("create degree: %v", err)
	}
	if _, err := f.generation.GenerateCourses(context.Background(), f.user.ID, degree.ID, 3); !util.IsKind(err, util.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := f.generation.GenerateCourses(context.Background(), f.user.ID, degree.ID, 99); !util.IsKind(err, util.KindValidation) {
		t.Fatalf("expected validation error for oversized batch, got %v", err)
	}
}

func TestGenerateTestCreatesThenUpdates(t *testing.T) {
	f := newFixture(t, failingCompleter{})
	ctx := context.Background()
	course := testutil.SeedCourse(t, f.db, f.user.ID, nil, "Chemistry", model.LessonNotStarted)
	lessonID := course.Lessons[0].ID

	first, err := f.generation.GenerateTest(ctx, f.user.ID, lessonID)
	if err != nil {
		t.Fatalf("GenerateTest: %v", err)
	}
	if first.TestOperation != "created" || first.TestQuestionsCount != 3 {
		t.Fatalf("unexpected first generation: %+v", first)
	}

	lesson, second, err := f.generation.GenerateLessonContent(ctx, f.user.ID, lessonID)
	if err != nil {
		t.Fatalf("GenerateLessonContent: %v", err)
	}
	if !lesson.HasContent() {
		t.Fatalf("expected fallback content")
	}
	if second.TestOperation != "updated" || second.TestID != first.TestID {
		t.Fatalf("regeneration should overwrite the test: %+v vs %+v", second, first)
	}

	var count int64
	f.db.Model(&model.Test{}).Where("lesson_id = ?", lessonID).Count(&count)
	if count != 1 {
		t.Fatalf("expected one test row, got %d", count)
	}
}

func TestGenerateTestOverwritesConcurrentRegeneration(t *testing.T) {
	f := newFixture(t, failingCompleter{})
	ctx := context.Background()
	course := testutil.SeedCourse(t, f.db, f.user.ID, nil, "Physics", model.LessonNotStarted)
	lessonID := course.Lessons[0].ID

	// 另一个请求在本次写入前抢先创建了测试
	fired := false
	err := f.db.Callback().Create().Before("gorm:create").Register("test:other_regeneration", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "tests" {
			return
		}
		fired = true
		now := time.Now()
		tx.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO tests (id, lesson_id, questions, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			"other-test", lessonID, "[]", now, now)
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	gen, err := f.generation.GenerateTest(ctx, f.user.ID, lessonID)
	if err != nil {
		t.Fatalf("GenerateTest: %v", err)
	}
	if !fired {
		t.Fatalf("concurrent insert did not run")
	}
	if gen.TestID != "other-test" || gen.TestOperation != "updated" || gen.TestQuestionsCount != 3 {
		t.Fatalf("unexpected generation: %+v", gen)
	}

	test, err := f.testRepo.FindByLesson(ctx, lessonID)
	if err != nil {
		t.Fatalf("FindByLesson: %v", err)
	}
	qs, err := test.DecodeQuestions()
	if err != nil || len(qs) != 3 {
		t.Fatalf("later write should win: qs=%d err=%v", len(qs), err)
	}
}

func TestExtractJSON(t *testing.T) {
	cases := []struct{ in, want string }{
		{"[1,2]", "[1,2]"},
		{"```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"Here you go: [1] hope it helps", "[1]"},
	}
	for _, tc := range cases {
		if got := extractJSON(tc.in); got != tc.want {
			t.Fatalf("extractJSON(%q) = %q want %q", tc.in, got, tc.want)
		}
	}
}
