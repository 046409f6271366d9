package model

// swagger:model Course
type Course struct {
	UUIDBase
	Name        string   `gorm:"size:255;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Icon        string   `gorm:"size:255" json:"icon,omitempty"`
	DegreeID    *string  `gorm:"type:varchar(36);index" json:"degreeId"`
	CourseOrder int      `gorm:"column:course_order;default:0" json:"courseOrder"`
	UserID      uint     `gorm:"index;not null" json:"userId"`
	Lessons     []Lesson `gorm:"foreignKey:CourseID" json:"lessons,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// IsStandalone 不属于任何学位的课程
func (c *Course) IsStandalone() bool {
	return c.DegreeID == nil || *c.DegreeID == ""
}
