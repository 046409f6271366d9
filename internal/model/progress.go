package model

import (
	"time"
)

// UserLessonProgress 记录用户在某节课上的最近一次测试分数和完成时间
type UserLessonProgress struct {
	BaseModel
	UserID      uint       `gorm:"uniqueIndex:idx_user_lesson;not null" json:"userId"`
	LessonID    string     `gorm:"type:varchar(36);uniqueIndex:idx_user_lesson;not null" json:"lessonId"`
	TestScore   *int       `json:"testScore"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (UserLessonProgress) TableName() string {
	return "user_lesson_progress"
}
