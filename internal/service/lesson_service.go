package service

import (
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/repository"
	"acceluni_backend/internal/util"
	"context"
	"errors"

	"gorm.io/gorm"
)

type LessonService struct {
	LessonRepo   *repository.LessonRepository
	TestRepo     *repository.TestRepository
	ProgressRepo *repository.ProgressRepository
	Assessment   *AssessmentService
}

func NewLessonService(
	lessonRepo *repository.LessonRepository,
	testRepo *repository.TestRepository,
	progressRepo *repository.ProgressRepository,
	assessment *AssessmentService,
) *LessonService {
	return &LessonService{
		LessonRepo:   lessonRepo,
		TestRepo:     testRepo,
		ProgressRepo: progressRepo,
		Assessment:   assessment,
	}
}

// QuestionView 下发给学习者的题目，不含答案
type QuestionView struct {
	Question   string           `json:"question"`
	AnswerType model.AnswerType `json:"answerType"`
	Options    []string         `json:"options,omitempty"`
}

type TestView struct {
	ID        string         `json:"id"`
	Questions []QuestionView `json:"questions"`
}

type LessonDetail struct {
	Lesson   *model.Lesson             `json:"lesson"`
	Test     *TestView                 `json:"test"`
	Progress *model.UserLessonProgress `json:"progress"`
}

func newTestView(test *model.Test) (*TestView, error) {
	questions, err := test.DecodeQuestions()
	if err != nil {
		return nil, err
	}
	view := &TestView{ID: test.ID, Questions: make([]QuestionView, 0, len(questions))}
	for _, q := range questions {
		qv := QuestionView{Question: q.Text, AnswerType: q.AnswerType()}
		if q.MultipleChoice != nil {
			qv.Options = q.MultipleChoice.Options
		}
		view.Questions = append(view.Questions, qv)
	}
	return view, nil
}

func (s *LessonService) load(ctx context.Context, userID uint, id string) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByIDForUser(ctx, id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFoundError("lesson")
	}
	if err != nil {
		return nil, util.WrapInternal("load lesson", err)
	}
	return lesson, nil
}

// GetLesson 首次打开未开始的课时时将其标记为 STARTED
func (s *LessonService) GetLesson(ctx context.Context, userID uint, id string) (*LessonDetail, error) {
	lesson, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if next := lesson.Status.Advance(model.LessonStarted); next != lesson.Status {
		if err := s.LessonRepo.UpdateStatus(ctx, lesson.ID, next); err != nil {
			return nil, util.WrapInternal("update lesson status", err)
		}
		lesson.Status = next
	}

	detail := &LessonDetail{Lesson: lesson}
	test, err := s.TestRepo.FindByLesson(ctx, lesson.ID)
	switch {
	case err == nil:
		if detail.Test, err = newTestView(test); err != nil {
			return nil, util.WrapInternal("decode test", err)
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, util.WrapInternal("load test", err)
	}

	if detail.Progress, err = s.ProgressRepo.Find(ctx, userID, lesson.ID); err != nil {
		return nil, util.WrapInternal("load progress", err)
	}
	return detail, nil
}

// CompleteLesson 手动标记完成，不修改已有的测试分数
func (s *LessonService) CompleteLesson(ctx context.Context, userID uint, id string) (*model.Lesson, error) {
	lesson, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if lesson.Status != model.LessonCompleted {
		if err := s.LessonRepo.UpdateStatus(ctx, lesson.ID, model.LessonCompleted); err != nil {
			return nil, util.WrapInternal("update lesson status", err)
		}
		lesson.Status = model.LessonCompleted
	}
	if err := s.Assessment.recordProgress(ctx, userID, lesson.ID, nil, true); err != nil {
		return nil, err
	}
	return lesson, nil
}
