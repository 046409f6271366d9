package model

// Degree 多门课程组成的完整学习计划
// swagger:model Degree
type Degree struct {
	UUIDBase
	Name        string   `gorm:"size:255;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Icon        string   `gorm:"size:255" json:"icon,omitempty"`
	UserID      uint     `gorm:"index;not null" json:"userId"`
	Courses     []Course `gorm:"foreignKey:DegreeID" json:"courses,omitempty"`
}

func (Degree) TableName() string {
	return "degrees"
}
