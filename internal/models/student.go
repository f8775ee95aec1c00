package models

import (
	"time"

	"gorm.io/datatypes"
)

// Student is a learner enrolled in exactly one class.
type Student struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"size:100;not null" json:"nome"`
	Age             int             `gorm:"not null" json:"idade"`
	BirthDate       *datatypes.Date `json:"data_nascimento"`
	FirstTermScore  *float64        `json:"nota_primeiro_semestre"`
	SecondTermScore *float64        `json:"nota_segundo_semestre"`
	FinalAverage    *float64        `json:"media_final"`
	ClassID         uint            `gorm:"not null;index" json:"turma_id"`
	Class           *Class          `gorm:"foreignKey:ClassID" json:"-"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// RecomputeAverage derives the final average from both term scores. When
// either score is missing the current value is left untouched. Callers skip
// it when the client sent media_final explicitly.
func (s *Student) RecomputeAverage() {
	if s.FirstTermScore == nil || s.SecondTermScore == nil {
		return
	}
	average := (*s.FirstTermScore + *s.SecondTermScore) / 2
	s.FinalAverage = &average
}
