package model

type LessonStatus string

const (
	LessonNotStarted LessonStatus = "NOT_STARTED"
	LessonStarted    LessonStatus = "STARTED"
	LessonCompleted  LessonStatus = "COMPLETED"
)

func (s LessonStatus) rank() int {
	switch s {
	case LessonStarted:
		return 1
	case LessonCompleted:
		return 2
	default:
		return 0
	}
}

// Advance returns the later of s and next. Status never moves backwards.
func (s LessonStatus) Advance(next LessonStatus) LessonStatus {
	if next.rank() > s.rank() {
		return next
	}
	return s
}

// swagger:model Lesson
type Lesson struct {
	UUIDBase
	Name        string       `gorm:"size:255;not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	Icon        string       `gorm:"size:255" json:"icon,omitempty"`
	Content     string       `gorm:"type:text" json:"content"`
	LessonOrder int          `gorm:"column:lesson_order;default:0" json:"lessonOrder"`
	Status      LessonStatus `gorm:"size:20;default:'NOT_STARTED';index" json:"status"`
	CourseID    string       `gorm:"type:varchar(36);index;not null" json:"courseId"`
	Course      *Course      `gorm:"foreignKey:CourseID" json:"-"`
}

func (Lesson) TableName() string {
	return "lessons"
}

func (l *Lesson) HasContent() bool {
	return l.Content != ""
}
