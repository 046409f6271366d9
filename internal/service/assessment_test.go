package service

import (
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/testutil"
	"acceluni_backend/internal/util"
	"context"
	"testing"
)

func mixedQuestions() []model.Question {
	return []model.Question{
		model.NewMultipleChoiceQuestion("Pick c", []string{"a", "b", "c"}, 2),
		model.NewNumericQuestion("3*3?", 9),
	}
}

func TestScoreTwoQuestionScenario(t *testing.T) {
	res, err := Score(mixedQuestions(), []model.SubmittedAnswer{
		{QuestionIndex: 0, Answer: 2},
		{QuestionIndex: 1, Answer: 9},
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Score != 100 || res.CorrectAnswers != 2 || res.TotalQuestions != 2 || !res.Passed {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(res.Mismatches) != 0 {
		t.Fatalf("expected no mismatches, got %+v", res.Mismatches)
	}
}

func TestScoreZeroCorrect(t *testing.T) {
	res, err := Score(mixedQuestions(), []model.SubmittedAnswer{
		{QuestionIndex: 0, Answer: 0},
		{QuestionIndex: 1, Answer: 8.5},
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Score != 0 || res.Passed {
		t.Fatalf("expected 0 and not passed, got %+v", res)
	}
	if len(res.Mismatches) != 2 || res.Mismatches[1].SubmittedValue == nil || *res.Mismatches[1].SubmittedValue != 8.5 {
		t.Fatalf("unexpected mismatches: %+v", res.Mismatches)
	}
}

func TestScoreUnansweredCountsAsIncorrect(t *testing.T) {
	res, err := Score(mixedQuestions(), []model.SubmittedAnswer{{QuestionIndex: 1, Answer: 9}})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.CorrectAnswers != 1 || res.Score != 50 || res.Passed {
		t.Fatalf("unexpected result: %+v", res)
	}
	m := res.Mismatches[0]
	if m.QuestionIndex != 0 || m.SubmittedValue != nil || m.CorrectValue != 2 {
		t.Fatalf("unexpected mismatch: %+v", m)
	}
}

func TestScoreIsMonotonicInCorrectAnswers(t *testing.T) {
	const n = 7
	questions := make([]model.Question, n)
	for i := range questions {
		questions[i] = model.NewNumericQuestion("q", float64(i))
	}
	prev := -1
	for correct := 0; correct <= n; correct++ {
		answers := make([]model.SubmittedAnswer, n)
		for i := range answers {
			answers[i] = model.SubmittedAnswer{QuestionIndex: i, Answer: float64(i)}
			if i >= correct {
				answers[i].Answer = -1
			}
		}
		res, err := Score(questions, answers)
		if err != nil {
			t.Fatalf("Score: %v", err)
		}
		if res.Score < prev {
			t.Fatalf("score dropped from %d to %d at %d correct", prev, res.Score, correct)
		}
		if res.Passed != (res.Score >= 70) {
			t.Fatalf("passed flag inconsistent with score %d", res.Score)
		}
		prev = res.Score
	}
	if prev != 100 {
		t.Fatalf("all correct should score 100, got %d", prev)
	}
}

func TestScoreRejectsMalformedSubmissions(t *testing.T) {
	cases := []struct {
		name    string
		qs      []model.Question
		answers []model.SubmittedAnswer
	}{
		{"no questions", nil, []model.SubmittedAnswer{{QuestionIndex: 0, Answer: 1}}},
		{"empty submission", mixedQuestions(), nil},
		{"index out of range", mixedQuestions(), []model.SubmittedAnswer{{QuestionIndex: 2, Answer: 1}}},
		{"negative index", mixedQuestions(), []model.SubmittedAnswer{{QuestionIndex: -1, Answer: 1}}},
		{"duplicate index", mixedQuestions(), []model.SubmittedAnswer{{QuestionIndex: 1, Answer: 9}, {QuestionIndex: 1, Answer: 9}}},
		{"fractional option", mixedQuestions(), []model.SubmittedAnswer{{QuestionIndex: 0, Answer: 1.5}}},
		{"option out of range", mixedQuestions(), []model.SubmittedAnswer{{QuestionIndex: 0, Answer: 3}}},
		{"option beyond int range", mixedQuestions(), []model.SubmittedAnswer{{QuestionIndex: 0, Answer: 1e20}}},
		{"huge negative option", mixedQuestions(), []model.SubmittedAnswer{{QuestionIndex: 0, Answer: -1e20}}},
	}
	for _, tc := range cases {
		_, err := Score(tc.qs, tc.answers)
		if !util.IsKind(err, util.KindValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestSubmitTestPassAfterFailUpgradesAndFailAfterPassKeepsCompleted(t *testing.T) {
	f := newFixture(t, failingCompleter{})
	ctx := context.Background()
	course := testutil.SeedCourse(t, f.db, f.user.ID, nil, "Algebra", model.LessonNotStarted)
	lesson := course.Lessons[0]
	test := testutil.SeedTest(t, f.db, lesson.ID, mixedQuestions()...)

	wrong := model.TestSubmission{Answers: []model.SubmittedAnswer{{QuestionIndex: 0, Answer: 0}, {QuestionIndex: 1, Answer: 1}}}
	right := model.TestSubmission{Answers: []model.SubmittedAnswer{{QuestionIndex: 0, Answer: 2}, {QuestionIndex: 1, Answer: 9}}}

	res, err := f.assessment.SubmitTest(ctx, f.user.ID, test.ID, wrong)
	if err != nil || res.Passed {
		t.Fatalf("first attempt: res=%+v err=%v", res, err)
	}
	if got := f.lessonStatus(t, lesson.ID); got != model.LessonStarted {
		t.Fatalf("failing attempt should start lesson, got %s", got)
	}

	if _, err := f.assessment.SubmitTest(ctx, f.user.ID, test.ID, right); err != nil {
		t.Fatalf("second attempt: %v", err)
	}
	if got := f.lessonStatus(t, lesson.ID); got != model.LessonCompleted {
		t.Fatalf("passing attempt should complete lesson, got %s", got)
	}
	progress, _ := f.progressRepo.Find(ctx, f.user.ID, lesson.ID)
	if progress == nil || progress.CompletedAt == nil || progress.TestScore == nil || *progress.TestScore != 100 {
		t.Fatalf("unexpected progress after pass: %+v", progress)
	}
	completedAt := *progress.CompletedAt

	if _, err := f.assessment.SubmitTest(ctx, f.user.ID, test.ID, wrong); err != nil {
		t.Fatalf("third attempt: %v", err)
	}
	if got := f.lessonStatus(t, lesson.ID); got != model.LessonCompleted {
		t.Fatalf("failing retake reverted status to %s", got)
	}
	progress, _ = f.progressRepo.Find(ctx, f.user.ID, lesson.ID)
	if *progress.TestScore != 0 {
		t.Fatalf("test_score should hold the latest attempt, got %d", *progress.TestScore)
	}
	if !progress.CompletedAt.Equal(completedAt) {
		t.Fatalf("completed_at changed on retake")
	}
}

func TestSubmitTestHidesOtherUsersTests(t *testing.T) {
	f := newFixture(t, failingCompleter{})
	other := testutil.SeedUser(t, f.db, "other@example.com")
	course := testutil.SeedCourse(t, f.db, other.ID, nil, "Private", model.LessonNotStarted)
	test := testutil.SeedTest(t, f.db, course.Lessons[0].ID, mixedQuestions()...)

	_, err := f.assessment.SubmitTest(context.Background(), f.user.ID, test.ID, model.TestSubmission{
		Answers: []model.SubmittedAnswer{{QuestionIndex: 0, Answer: 2}},
	})
	if util.StatusFor(util.KindOf(err)) != 404 {
		t.Fatalf("expected 404-class error, got %v", err)
	}
}

func TestCompleteLessonStampsProgress(t *testing.T) {
	f := newFixture(t, failingCompleter{})
	ctx := context.Background()
	course := testutil.SeedCourse(t, f.db, f.user.ID, nil, "Reading", model.LessonStarted)

	lesson, err := f.lessons.CompleteLesson(ctx, f.user.ID, course.Lessons[0].ID)
	if err != nil {
		t.Fatalf("CompleteLesson: %v", err)
	}
	if lesson.Status != model.LessonCompleted {
		t.Fatalf("status: %s", lesson.Status)
	}
	progress, _ := f.progressRepo.Find(ctx, f.user.ID, lesson.ID)
	if progress == nil || progress.CompletedAt == nil || progress.TestScore != nil {
		t.Fatalf("unexpected progress: %+v", progress)
	}
}

func TestGetLessonStartsLessonAndHidesAnswers(t *testing.T) {
	f := newFixture(t, failingCompleter{})
	course := testutil.SeedCourse(t, f.db, f.user.ID, nil, "Reading", model.LessonNotStarted)
	testutil.SeedTest(t, f.db, course.Lessons[0].ID, mixedQuestions()...)

	detail, err := f.lessons.GetLesson(context.Background(), f.user.ID, course.Lessons[0].ID)
	if err != nil {
		t.Fatalf("GetLesson: %v", err)
	}
	if detail.Lesson.Status != model.LessonStarted {
		t.Fatalf("expected STARTED, got %s", detail.Lesson.Status)
	}
	if detail.Test == nil || len(detail.Test.Questions) != 2 || len(detail.Test.Questions[0].Options) != 3 {
		t.Fatalf("unexpected test view: %+v", detail.Test)
	}
	if detail.Progress != nil {
		t.Fatalf("expected no progress yet")
	}
}
