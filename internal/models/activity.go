package models

import (
	"time"

	"gorm.io/datatypes"
)

// Activity is graded coursework. ClassID and TeacherID point at rows owned
// by the roster service and are only checked when written.
type Activity struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:50;not null" json:"nome_atividade"`
	Description   string         `gorm:"size:100" json:"descricao"`
	WeightPercent float64        `gorm:"not null" json:"peso_porcento"`
	DueDate       datatypes.Date `gorm:"not null" json:"data_entrega"`
	ClassID       uint           `gorm:"not null;index" json:"turma_id"`
	TeacherID     uint           `gorm:"not null;index" json:"professor_id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
