package testutil

import (
	"acceluni_backend/internal/model"
	"acceluni_backend/pkg/database"
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

// NewDB 为每个测试打开独立的内存 sqlite 库并完成迁移
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:acceluni_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// 共享内存库只用一个连接，避免 sqlite 表锁
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func SeedUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Name: "learner", Email: email, Password: "x", Role: model.Learner}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

// SeedCourse 创建一门课程及其课时，statuses 决定课时数量与状态
func SeedCourse(t *testing.T, db *gorm.DB, userID uint, degreeID *string, name string, statuses ...model.LessonStatus) *model.Course {
	t.Helper()
	course := &model.Course{Name: name, UserID: userID, DegreeID: degreeID}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	for i, st := range statuses {
		lesson := model.Lesson{Name: fmt.Sprintf("%s lesson %d", name, i+1), LessonOrder: i, Status: st, CourseID: course.ID}
		if err := db.Create(&lesson).Error; err != nil {
			t.Fatalf("seed lesson: %v", err)
		}
		course.Lessons = append(course.Lessons, lesson)
	}
	return course
}

func SeedTest(t *testing.T, db *gorm.DB, lessonID string, questions ...model.Question) *model.Test {
	t.Helper()
	test := &model.Test{LessonID: lessonID}
	if err := test.EncodeQuestions(questions); err != nil {
		t.Fatalf("encode questions: %v", err)
	}
	if err := db.Create(test).Error; err != nil {
		t.Fatalf("seed test: %v", err)
	}
	return test
}
