package models

import "time"

// Class groups students under a leading teacher.
type Class struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"size:100;not null" json:"descricao"`
	TeacherID   uint      `gorm:"not null;index" json:"professor_id"`
	Teacher     *Teacher  `gorm:"foreignKey:TeacherID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
