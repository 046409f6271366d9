package service

import (
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/repository"
	"acceluni_backend/internal/util"
	"acceluni_backend/pkg/logger"
	"acceluni_backend/pkg/monitoring"
	"acceluni_backend/pkg/tracing"
	"context"
	"errors"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AssessmentService struct {
	TestRepo     *repository.TestRepository
	LessonRepo   *repository.LessonRepository
	ProgressRepo *repository.ProgressRepository
	now          func() time.Time
}

func NewAssessmentService(
	testRepo *repository.TestRepository,
	lessonRepo *repository.LessonRepository,
	progressRepo *repository.ProgressRepository,
) *AssessmentService {
	return &AssessmentService{
		TestRepo:     testRepo,
		LessonRepo:   lessonRepo,
		ProgressRepo: progressRepo,
		now:          time.Now,
	}
}

// SubmitTest 评分并更新进度。通过时课时变为 COMPLETED，未通过不会回退已完成状态。
func (s *AssessmentService) SubmitTest(ctx context.Context, userID uint, testID string, submission model.TestSubmission) (*model.TestResult, error) {
	ctx, span := tracing.StartSpan(ctx, "assessment.submit", attribute.String("test.id", testID))
	defer span.End()

	test, err := s.TestRepo.FindByIDForUser(ctx, testID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFoundError("test")
	}
	if err != nil {
		return nil, util.WrapInternal("load test", err)
	}
	lesson, err := s.LessonRepo.FindByIDForUser(ctx, test.LessonID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NewNotFoundError("lesson")
	}
	if err != nil {
		return nil, util.WrapInternal("load lesson", err)
	}

	questions, err := test.DecodeQuestions()
	if err != nil {
		return nil, util.WrapInternal("decode questions", err)
	}
	result, err := Score(questions, submission.Answers)
	if err != nil {
		return nil, err
	}

	if err := s.recordProgress(ctx, userID, lesson.ID, &result.Score, result.Passed); err != nil {
		return nil, err
	}

	target := model.LessonStarted
	if result.Passed {
		target = model.LessonCompleted
	}
	if next := lesson.Status.Advance(target); next != lesson.Status {
		if err := s.LessonRepo.UpdateStatus(ctx, lesson.ID, next); err != nil {
			return nil, util.WrapInternal("update lesson status", err)
		}
	}

	monitoring.TestSubmissions.WithLabelValues(strconv.FormatBool(result.Passed)).Inc()
	span.SetAttributes(attribute.Int("test.score", result.Score))
	logger.Ctx(ctx).Info("test submitted",
		zap.Uint("userID", userID),
		zap.String("testID", testID),
		zap.Int("score", result.Score),
		zap.Bool("passed", result.Passed),
	)
	return result, nil
}

// recordProgress 保存最近一次分数；completed 时仅在首次完成时写入 completed_at
func (s *AssessmentService) recordProgress(ctx context.Context, userID uint, lessonID string, score *int, completed bool) error {
	progress := &model.UserLessonProgress{UserID: userID, LessonID: lessonID}
	if score != nil {
		v := *score
		progress.TestScore = &v
	}
	if completed {
		now := s.now()
		progress.CompletedAt = &now
	}
	if err := s.ProgressRepo.Upsert(ctx, progress); err != nil {
		return util.WrapInternal("save progress", err)
	}
	return nil
}
