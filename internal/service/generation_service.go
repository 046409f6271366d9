package service

import (
	"acceluni_backend/internal/config"
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/repository"
	"acceluni_backend/internal/util"
	"acceluni_backend/pkg/logger"
	"acceluni_backend/pkg/monitoring"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	kindCourses = "courses"
	kindLessons = "lessons"
	kindContent = "content"
	kindTest    = "test"

	maxBatchSize = 20
)

var fallbackCourseTemplates = []string{
	"Introduction to %s",
	"Foundations of %s",
	"Core Concepts in %s",
	"Tools and Methods for %s",
	"Intermediate %s",
	"Applied %s",
	"Advanced Topics in %s",
	"%s Capstone Project",
}

var fallbackLessonTemplates = []string{
	"Overview of %s",
	"Key Terms in %s",
	"Working Through %s",
	"Common Pitfalls in %s",
	"%s in Practice",
	"Review of %s",
}

type outline struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type BatchFailure struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// BatchResult 批量生成结果；单项失败不回滚已创建的行
type BatchResult struct {
	Courses  []model.Course `json:"courses,omitempty"`
	Lessons  []model.Lesson `json:"lessons,omitempty"`
	Created  int            `json:"created"`
	Expected int            `json:"expected"`
	Failed   []BatchFailure `json:"failed"`
	Fallback bool           `json:"fallback"`
}

type TestGeneration struct {
	TestID             string `json:"testId"`
	TestQuestionsCount int    `json:"testQuestionsCount"`
	TestOperation      string `json:"testOperation"`
}

type GenerationService struct {
	AI         Completer
	DegreeRepo *repository.DegreeRepository
	CourseRepo *repository.CourseRepository
	LessonRepo *repository.LessonRepository
	TestRepo   *repository.TestRepository

	// Dispatch 执行后台生成任务，默认新开 goroutine
	Dispatch func(task func())

	mu  sync.RWMutex
	cfg config.GenerationConfig

	// 后台任务跟踪，Shutdown 时等待或取消
	tasks   sync.WaitGroup
	baseCtx context.Context
	stop    context.CancelFunc
	closed  bool
}

func NewGenerationService(
	ai Completer,
	degreeRepo *repository.DegreeRepository,
	courseRepo *repository.CourseRepository,
	lessonRepo *repository.LessonRepository,
	testRepo *repository.TestRepository,
	cfg config.GenerationConfig,
) *GenerationService {
	baseCtx, stop := context.WithCancel(context.Background())
	return &GenerationService{
		AI:         ai,
		DegreeRepo: degreeRepo,
		CourseRepo: courseRepo,
		LessonRepo: lessonRepo,
		TestRepo:   testRepo,
		Dispatch:   func(task func()) { go task() },
		cfg:        cfg,
		baseCtx:    baseCtx,
		stop:       stop,
	}
}

// InBackground 在请求结束后继续生成，使用独立的超时上下文
func (s *GenerationService) InBackground(label string, fn func(ctx context.Context) (*BatchResult, error)) {
	timeout := time.Duration(s.Config().BackgroundTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		logger.Log.Warn("background generation skipped during shutdown", zap.String("task", label))
		return
	}
	s.tasks.Add(1)
	s.mu.Unlock()

	s.Dispatch(func() {
		defer s.tasks.Done()
		ctx, cancel := context.WithTimeout(s.baseCtx, timeout)
		defer cancel()
		res, err := fn(ctx)
		if err != nil {
			logger.Log.Error("background generation failed", zap.String("task", label), zap.Error(err))
			return
		}
		logger.Log.Info("background generation finished",
			zap.String("task", label),
			zap.Int("created", res.Created),
			zap.Int("failed", len(res.Failed)),
			zap.Bool("fallback", res.Fallback),
		)
	})
}

// Shutdown 停止接收后台任务并等待进行中的批次完成；ctx 到期后取消剩余批次
func (s *GenerationService) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.tasks.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.stop()
		return nil
	case <-ctx.Done():
		s.stop()
		<-done
		return ctx.Err()
	}
}

func (s *GenerationService) UpdateConfig(cfg config.GenerationConfig) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

func (s *GenerationService) Config() config.GenerationConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func batchCount(requested, fallback int) (int, error) {
	if requested <= 0 {
		requested = fallback
	}
	if requested <= 0 || requested > maxBatchSize {
		return 0, util.NewValidationError("count must be between 1 and %d", maxBatchSize)
	}
	return requested, nil
}

// recordFallback 记录上游生成失败，并由调用方改用模板
func recordFallback(kind string, err error, fields ...zap.Field) {
	upstream := util.NewUpstreamGenerationError(err)
	monitoring.GenerationFallbacks.WithLabelValues(kind).Inc()
	logger.Log.Warn("generation fell back to template",
		append(fields, zap.String("kind", kind), zap.Error(upstream))...)
}

func (s *GenerationService) outlines(ctx context.Context, prompt string, count int) ([]outline, error) {
	text, err := s.AI.Complete(ctx, "You are a curriculum designer. Reply with JSON only.", prompt)
	if err != nil {
		return nil, err
	}
	var items []outline
	if err := json.Unmarshal([]byte(extractJSON(text)), &items); err != nil {
		return nil, fmt.Errorf("parse outlines: %w", err)
	}
	valid := items[:0]
	for _, it := range items {
		if strings.TrimSpace(it.Name) != "" {
			valid = append(valid, it)
		}
	}
	if len(valid) < count {
		return nil, fmt.Errorf("expected %d outlines, got %d", count, len(valid))
	}
	return valid[:count], nil
}

func fallbackOutlines(templates []string, subject string, count int) []outline {
	items := make([]outline, count)
	for i := range items {
		name := fmt.Sprintf(templates[i%len(templates)], subject)
		if round := i / len(templates); round > 0 {
			name = fmt.Sprintf("%s (Part %d)", name, round+1)
		}
		items[i] = outline{Name: name, Description: fmt.Sprintf("%s, part of a structured path through %s.", name, subject)}
	}
	return items
}

// GenerateCourses 为学位批量创建课程，course_order 从 0 开始连续编号
func (s *GenerationService) GenerateCourses(ctx context.Context, userID uint, degreeID string, count int) (*BatchResult, error) {
	count, err := batchCount(count, s.Config().CoursesPerDegree)
	if err != nil {
		return nil, err
	}
	degree, err := s.DegreeRepo.FindByIDForUser(ctx, degreeID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFoundError("degree")
	}
	if err != nil {
		return nil, util.WrapInternal("load degree", err)
	}

	prompt := fmt.Sprintf(
		"Design %d sequential courses for the degree %q (%s). Return a JSON array of objects with \"name\" and \"description\".",
		count, degree.Name, degree.Description)
	result := &BatchResult{Expected: count, Failed: []BatchFailure{}}
	items, err := s.outlines(ctx, prompt, count)
	if err != nil {
		recordFallback(kindCourses, err, zap.String("degreeID", degreeID))
		items = fallbackOutlines(fallbackCourseTemplates, degree.Name, count)
		result.Fallback = true
	}

	start, err := s.CourseRepo.NextOrder(ctx, degree.ID)
	if err != nil {
		return nil, util.WrapInternal("count courses", err)
	}
	degreeRef := degree.ID
	for i, it := range items {
		course := model.Course{
			Name:        it.Name,
			Description: it.Description,
			DegreeID:    &degreeRef,
			CourseOrder: start + i,
			UserID:      userID,
		}
		if err := s.CourseRepo.Create(ctx, &course); err != nil {
			logger.Ctx(ctx).Error("create generated course failed", zap.Int("index", i), zap.Error(err))
			monitoring.GeneratedItems.WithLabelValues(kindCourses, "failed").Inc()
			result.Failed = append(result.Failed, BatchFailure{Index: i, Name: it.Name, Error: err.Error()})
			continue
		}
		monitoring.GeneratedItems.WithLabelValues(kindCourses, "created").Inc()
		result.Courses = append(result.Courses, course)
	}
	result.Created = len(result.Courses)
	return result, nil
}

// GenerateLessons 为课程批量创建课时
func (s *GenerationService) GenerateLessons(ctx context.Context, userID uint, courseID string, count int) (*BatchResult, error) {
	count, err := batchCount(count, s.Config().LessonsPerCourse)
	if err != nil {
		return nil, err
	}
	course, err := s.CourseRepo.FindByIDForUser(ctx, courseID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFoundError("course")
	}
	if err != nil {
		return nil, util.WrapInternal("load course", err)
	}

	prompt := fmt.Sprintf(
		"Design %d sequential lessons for the course %q (%s). Return a JSON array of objects with \"name\" and \"description\".",
		count, course.Name, course.Description)
	result := &BatchResult{Expected: count, Failed: []BatchFailure{}}
	items, err := s.outlines(ctx, prompt, count)
	if err != nil {
		recordFallback(kindLessons, err, zap.String("courseID", courseID))
		items = fallbackOutlines(fallbackLessonTemplates, course.Name, count)
		result.Fallback = true
	}

	// 生成期间可能有其他请求插入课时，以库中数量为准
	start, err := s.LessonRepo.NextOrder(ctx, course.ID)
	if err != nil {
		return nil, util.WrapInternal("count lessons", err)
	}
	for i, it := range items {
		lesson := model.Lesson{
			Name:        it.Name,
			Description: it.Description,
			LessonOrder: start + i,
			Status:      model.LessonNotStarted,
			CourseID:    course.ID,
		}
		if err := s.LessonRepo.Create(ctx, &lesson); err != nil {
			logger.Ctx(ctx).Error("create generated lesson failed", zap.Int("index", i), zap.Error(err))
			monitoring.GeneratedItems.WithLabelValues(kindLessons, "failed").Inc()
			result.Failed = append(result.Failed, BatchFailure{Index: i, Name: it.Name, Error: err.Error()})
			continue
		}
		monitoring.GeneratedItems.WithLabelValues(kindLessons, "created").Inc()
		result.Lessons = append(result.Lessons, lesson)
	}
	result.Created = len(result.Lessons)
	return result, nil
}

func (s *GenerationService) loadLesson(ctx context.Context, userID uint, lessonID string) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByIDForUser(ctx, lessonID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFoundError("lesson")
	}
	if err != nil {
		return nil, util.WrapInternal("load lesson", err)
	}
	return lesson, nil
}

func fallbackContent(lesson *model.Lesson) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", lesson.Name)
	if lesson.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", lesson.Description)
	}
	b.WriteString("## Learning goals\n\n")
	fmt.Fprintf(&b, "- Explain the main ideas behind %s.\n", lesson.Name)
	b.WriteString("- Work through a small example on your own.\n\n")
	b.WriteString("## Notes\n\n")
	b.WriteString("Detailed content could not be generated right now. Use the regenerate action to try again.\n")
	return b.String()
}

// GenerateLessonContent 生成课时正文，并一起生成测试
func (s *GenerationService) GenerateLessonContent(ctx context.Context, userID uint, lessonID string) (*model.Lesson, *TestGeneration, error) {
	lesson, err := s.loadLesson(ctx, userID, lessonID)
	if err != nil {
		return nil, nil, err
	}

	prompt := fmt.Sprintf(
		"Write a complete lesson in markdown titled %q. Summary: %s. Use headings, short paragraphs and worked examples.",
		lesson.Name, lesson.Description)
	content, err := s.AI.Complete(ctx, "You are an expert teacher writing lesson material in markdown.", prompt)
	if err != nil {
		recordFallback(kindContent, err, zap.String("lessonID", lessonID))
		content = fallbackContent(lesson)
	}
	if err := s.LessonRepo.UpdateContent(ctx, lesson.ID, content); err != nil {
		return nil, nil, util.WrapInternal("save lesson content", err)
	}
	lesson.Content = content

	gen, err := s.generateTestFor(ctx, lesson)
	if err != nil {
		return nil, nil, err
	}
	return lesson, gen, nil
}

func (s *GenerationService) GenerateTest(ctx context.Context, userID uint, lessonID string) (*TestGeneration, error) {
	lesson, err := s.loadLesson(ctx, userID, lessonID)
	if err != nil {
		return nil, err
	}
	return s.generateTestFor(ctx, lesson)
}

func (s *GenerationService) generateTestFor(ctx context.Context, lesson *model.Lesson) (*TestGeneration, error) {
	count := s.Config().QuestionsPerTest
	if count <= 0 {
		count = 5
	}

	questions, err := s.questions(ctx, lesson, count)
	if err != nil {
		recordFallback(kindTest, err, zap.String("lessonID", lesson.ID))
		questions = fallbackQuestions(lesson)
	}

	test, created, err := s.TestRepo.Upsert(ctx, lesson.ID, questions)
	if err != nil {
		return nil, util.WrapInternal("save test", err)
	}
	op := "updated"
	if created {
		op = "created"
	}
	return &TestGeneration{TestID: test.ID, TestQuestionsCount: len(questions), TestOperation: op}, nil
}

func (s *GenerationService) questions(ctx context.Context, lesson *model.Lesson, count int) ([]model.Question, error) {
	source := lesson.Content
	if source == "" {
		source = lesson.Description
	}
	prompt := fmt.Sprintf(
		"Write %d quiz questions for the lesson %q based on:\n%s\n\n"+
			"Return a JSON array. Each item has \"question\", \"answerType\" (\"multiple choice\" or \"numeric\"), "+
			"\"options\" (multiple choice only) and \"answer\" (option index or number).",
		count, lesson.Name, source)
	text, err := s.AI.Complete(ctx, "You write short, unambiguous quiz questions. Reply with JSON only.", prompt)
	if err != nil {
		return nil, err
	}
	var qs []model.Question
	if err := json.Unmarshal([]byte(extractJSON(text)), &qs); err != nil {
		return nil, fmt.Errorf("parse questions: %w", err)
	}
	if len(qs) == 0 {
		return nil, errors.New("no questions generated")
	}
	for i, q := range qs {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}
	return qs, nil
}

func fallbackQuestions(lesson *model.Lesson) []model.Question {
	return []model.Question{
		model.NewMultipleChoiceQuestion(
			fmt.Sprintf("Which statement best describes the goal of %q?", lesson.Name),
			[]string{
				"Memorising unrelated facts",
				"Understanding and applying its core ideas",
				"Skipping the exercises",
				"None of the above",
			}, 1),
		model.NewMultipleChoiceQuestion(
			"What is the best way to check your understanding of a new topic?",
			[]string{"Re-read the title", "Explain it in your own words and try an example", "Wait until later"}, 1),
		model.NewNumericQuestion("A quiz has 10 questions and you answer 7 correctly. What percentage did you score?", 70),
	}
}
