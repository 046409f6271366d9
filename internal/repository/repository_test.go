package repository

import (
	"acceluni_backend/internal/model"
	"acceluni_backend/internal/testutil"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// insertBeforeCreate 在 table 的下一次 INSERT 之前插入一条并发写入的行，只触发一次
func insertBeforeCreate(t *testing.T, db *gorm.DB, table string, insert func(tx *gorm.DB) error) {
	t.Helper()
	fired := false
	err := db.Callback().Create().Before("gorm:create").Register("test:concurrent_insert", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != table {
			return
		}
		fired = true
		if err := insert(tx.Session(&gorm.Session{NewDB: true})); err != nil {
			t.Errorf("concurrent insert: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
}

func TestTestUpsertOverwritesConcurrentlyCreatedTest(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, "a@example.com")
	lesson := testutil.SeedCourse(t, db, user.ID, nil, "Go", model.LessonNotStarted).Lessons[0]

	competing := &model.Test{LessonID: lesson.ID}
	if err := competing.EncodeQuestions([]model.Question{model.NewNumericQuestion("old?", 1)}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	competingID := uuid.New().String()
	insertBeforeCreate(t, db, "tests", func(tx *gorm.DB) error {
		now := time.Now()
		return tx.Exec("INSERT INTO tests (id, lesson_id, questions, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			competingID, lesson.ID, string(competing.Questions), now, now).Error
	})

	repo := NewTestRepository(db)
	want := []model.Question{
		model.NewMultipleChoiceQuestion("new?", []string{"a", "b"}, 1),
		model.NewNumericQuestion("sum?", 4),
	}
	saved, created, err := repo.Upsert(ctx, lesson.ID, want)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if created {
		t.Fatalf("conflicting write should be reported as update")
	}
	if saved.ID != competingID {
		t.Fatalf("test id: got=%s want=%s", saved.ID, competingID)
	}
	got, err := saved.DecodeQuestions()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].Text != "new?" {
		t.Fatalf("later write should win, got %+v", got)
	}

	var count int64
	db.Model(&model.Test{}).Where("lesson_id = ?", lesson.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected one test per lesson, got %d", count)
	}
}

func TestTestUpsertReportsCreation(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, "a@example.com")
	lesson := testutil.SeedCourse(t, db, user.ID, nil, "Go", model.LessonNotStarted).Lessons[0]
	repo := NewTestRepository(db)

	first, created, err := repo.Upsert(ctx, lesson.ID, []model.Question{model.NewNumericQuestion("a?", 1)})
	if err != nil || !created {
		t.Fatalf("first upsert: created=%v err=%v", created, err)
	}
	second, created, err := repo.Upsert(ctx, lesson.ID, []model.Question{model.NewNumericQuestion("b?", 2)})
	if err != nil || created {
		t.Fatalf("second upsert: created=%v err=%v", created, err)
	}
	if first.ID != second.ID {
		t.Fatalf("regeneration must keep the test id: %s != %s", first.ID, second.ID)
	}
}

func TestProgressUpsertKeepsFirstCompletionAndLatestScore(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewProgressRepository(db)
	user := testutil.SeedUser(t, db, "a@example.com")
	lesson := testutil.SeedCourse(t, db, user.ID, nil, "Go", model.LessonNotStarted).Lessons[0]

	score := func(v int) *int { return &v }
	firstDone := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	laterDone := firstDone.Add(48 * time.Hour)

	steps := []model.UserLessonProgress{
		{UserID: user.ID, LessonID: lesson.ID, TestScore: score(40)},
		{UserID: user.ID, LessonID: lesson.ID, TestScore: score(80), CompletedAt: &firstDone},
		{UserID: user.ID, LessonID: lesson.ID, CompletedAt: &laterDone},
		{UserID: user.ID, LessonID: lesson.ID, TestScore: score(50)},
	}
	for i := range steps {
		if err := repo.Upsert(ctx, &steps[i]); err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}

	p, err := repo.Find(ctx, user.ID, lesson.ID)
	if err != nil || p == nil {
		t.Fatalf("Find: p=%v err=%v", p, err)
	}
	if p.TestScore == nil || *p.TestScore != 50 {
		t.Fatalf("score should be the latest attempt, got %v", p.TestScore)
	}
	if p.CompletedAt == nil || !p.CompletedAt.Equal(firstDone) {
		t.Fatalf("completed_at should stay at first completion, got %v", p.CompletedAt)
	}
}

func TestProgressUpsertSurvivesConcurrentFirstWrite(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := NewProgressRepository(db)
	user := testutil.SeedUser(t, db, "a@example.com")
	lesson := testutil.SeedCourse(t, db, user.ID, nil, "Go", model.LessonNotStarted).Lessons[0]

	insertBeforeCreate(t, db, "user_lesson_progress", func(tx *gorm.DB) error {
		now := time.Now()
		return tx.Exec("INSERT INTO user_lesson_progress (user_id, lesson_id, test_score, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			user.ID, lesson.ID, 30, now, now).Error
	})

	v := 90
	if err := repo.Upsert(ctx, &model.UserLessonProgress{UserID: user.ID, LessonID: lesson.ID, TestScore: &v}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	rows, err := repo.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(rows) != 1 || rows[0].TestScore == nil || *rows[0].TestScore != 90 {
		t.Fatalf("expected one row with the later score, got %+v", rows)
	}
}
