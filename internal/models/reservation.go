package models

import (
	"time"

	"gorm.io/datatypes"
)

// Reservation books a room, optionally a lab, for a class on a given day.
type Reservation struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	RoomNumber string         `gorm:"size:50;not null" json:"num_sala"`
	Lab        bool           `gorm:"not null;default:false" json:"lab"`
	Date       datatypes.Date `gorm:"not null" json:"data"`
	ClassID    uint           `gorm:"not null;index" json:"turma_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
