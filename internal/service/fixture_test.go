package service

import (
	"acceluni_backend/internal/config"
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/repository"
	"acceluni_backend/internal/testutil"
	"context"
	"errors"
	"sync"
	"testing"

	"gorm.io/gorm"
)

type failingCompleter struct{}

func (failingCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	return "", errors.New("upstream unavailable")
}

type stubCompleter struct {
	reply string
}

func (s stubCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	return s.reply, nil
}

type memoryDrafts struct {
	mu   sync.Mutex
	data map[uint][]byte
}

func newMemoryDrafts() *memoryDrafts {
	return &memoryDrafts{data: map[uint][]byte{}}
}

func (m *memoryDrafts) Load(ctx context.Context, userID uint) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[userID], nil
}

func (m *memoryDrafts) Save(ctx context.Context, userID uint, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[userID] = append([]byte(nil), data...)
	return nil
}

func (m *memoryDrafts) Clear(ctx context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, userID)
	return nil
}

type fixture struct {
	db   *gorm.DB
	user *model.User

	degreeRepo   *repository.DegreeRepository
	courseRepo   *repository.CourseRepository
	lessonRepo   *repository.LessonRepository
	testRepo     *repository.TestRepository
	progressRepo *repository.ProgressRepository

	subscriptions *SubscriptionService
	assessment    *AssessmentService
	lessons       *LessonService
	degrees       *DegreeService
	courses       *CourseService
	generation    *GenerationService
	home          *HomeService
	drafts        *memoryDrafts
	wizard        *WizardService
}

func newFixture(t *testing.T, ai Completer) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	f := &fixture{
		db:           db,
		user:         testutil.SeedUser(t, db, "learner@example.com"),
		degreeRepo:   repository.NewDegreeRepository(db),
		courseRepo:   repository.NewCourseRepository(db),
		lessonRepo:   repository.NewLessonRepository(db),
		testRepo:     repository.NewTestRepository(db),
		progressRepo: repository.NewProgressRepository(db),
		drafts:       newMemoryDrafts(),
	}
	f.subscriptions = NewSubscriptionService(repository.NewSubscriptionRepository(db), config.SubscriptionConfig{TrialDays: 7})
	f.assessment = NewAssessmentService(f.testRepo, f.lessonRepo, f.progressRepo)
	f.lessons = NewLessonService(f.lessonRepo, f.testRepo, f.progressRepo, f.assessment)
	f.degrees = NewDegreeService(f.degreeRepo, f.subscriptions)
	f.courses = NewCourseService(f.courseRepo, f.degreeRepo)
	f.generation = NewGenerationService(ai, f.degreeRepo, f.courseRepo, f.lessonRepo, f.testRepo, config.GenerationConfig{
		CoursesPerDegree: 8,
		LessonsPerCourse: 6,
		QuestionsPerTest: 5,
	})
	f.generation.Dispatch = func(task func()) { task() }
	f.home = NewHomeService(f.degreeRepo, f.courseRepo, f.progressRepo)
	f.wizard = NewWizardService(f.drafts, f.degrees, f.courses, f.generation)
	return f
}

func (f *fixture) lessonStatus(t *testing.T, id string) model.LessonStatus {
	t.Helper()
	var lesson model.Lesson
	if err := f.db.First(&lesson, "id = ?", id).Error; err != nil {
		t.Fatalf("load lesson: %v", err)
	}
	return lesson.Status
}
