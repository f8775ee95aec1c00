package models

import "time"

// Grade is the score a student obtained in an activity.
type Grade struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Score      float64   `gorm:"not null" json:"nota"`
	StudentID  uint      `gorm:"not null;index" json:"aluno_id"`
	ActivityID uint      `gorm:"not null;index" json:"atividade_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
