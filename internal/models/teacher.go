package models

import "time"

// Teacher lectures a subject and may lead several classes.
type Teacher struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"nome"`
	Age       int       `gorm:"not null" json:"idade"`
	Subject   string    `gorm:"size:100;not null" json:"materia"`
	Note      string    `gorm:"size:255" json:"observacao"`
	Classes   []Class   `gorm:"foreignKey:TeacherID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
