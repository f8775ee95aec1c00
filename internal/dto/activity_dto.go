package dto

import "github.com/noah-isme/school-services/internal/models"

// ActivityCreateRequest describes the payload for creating an activity.
type ActivityCreateRequest struct {
	Name          *string  `json:"nome_atividade" validate:"required,min=1,max=50"`
	Description   *string  `json:"descricao" validate:"omitempty,max=100"`
	WeightPercent *float64 `json:"peso_porcento" validate:"required,gte=0,lte=100"`
	DueDate       *string  `json:"data_entrega" validate:"required,datetime=2006-01-02"`
	ClassID       *uint    `json:"turma_id" validate:"required,gt=0"`
	TeacherID     *uint    `json:"professor_id" validate:"required,gt=0"`
}

// ActivityUpdateRequest describes a partial activity update.
type ActivityUpdateRequest struct {
	Name          *string  `json:"nome_atividade" validate:"omitempty,min=1,max=50"`
	Description   *string  `json:"descricao" validate:"omitempty,max=100"`
	WeightPercent *float64 `json:"peso_porcento" validate:"omitempty,gte=0,lte=100"`
	DueDate       *string  `json:"data_entrega" validate:"omitempty,datetime=2006-01-02"`
	ClassID       *uint    `json:"turma_id" validate:"omitempty,gt=0"`
	TeacherID     *uint    `json:"professor_id" validate:"omitempty,gt=0"`
}

// ActivityResponse is the serialized representation returned to API clients.
type ActivityResponse struct {
	ID            uint    `json:"id"`
	Name          string  `json:"nome_atividade"`
	Description   string  `json:"descricao"`
	WeightPercent float64 `json:"peso_porcento"`
	DueDate       string  `json:"data_entrega"`
	ClassID       uint    `json:"turma_id"`
	TeacherID     uint    `json:"professor_id"`
}

// NewActivityResponse converts a model into a DTO.
func NewActivityResponse(model models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:            model.ID,
		Name:          model.Name,
		Description:   model.Description,
		WeightPercent: model.WeightPercent,
		DueDate:       FormatDate(model.DueDate),
		ClassID:       model.ClassID,
		TeacherID:     model.TeacherID,
	}
}

// NewActivityResponseSlice converts a slice of models into DTOs.
func NewActivityResponseSlice(activities []models.Activity) []ActivityResponse {
	responses := make([]ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		responses = append(responses, NewActivityResponse(activity))
	}
	return responses
}

// GradeCreateRequest describes the payload for recording a grade.
type GradeCreateRequest struct {
	Score      *float64 `json:"nota" validate:"required,gte=0"`
	StudentID  *uint    `json:"aluno_id" validate:"required,gt=0"`
	ActivityID *uint    `json:"atividade_id" validate:"required,gt=0"`
}

// GradeUpdateRequest describes a partial grade update.
type GradeUpdateRequest struct {
	Score      *float64 `json:"nota" validate:"omitempty,gte=0"`
	StudentID  *uint    `json:"aluno_id" validate:"omitempty,gt=0"`
	ActivityID *uint    `json:"atividade_id" validate:"omitempty,gt=0"`
}

// GradeResponse is the serialized representation returned to API clients.
type GradeResponse struct {
	ID         uint    `json:"id"`
	Score      float64 `json:"nota"`
	StudentID  uint    `json:"aluno_id"`
	ActivityID uint    `json:"atividade_id"`
}

// NewGradeResponse converts a model into a DTO.
func NewGradeResponse(model models.Grade) GradeResponse {
	return GradeResponse{
		ID:         model.ID,
		Score:      model.Score,
		StudentID:  model.StudentID,
		ActivityID: model.ActivityID,
	}
}

// NewGradeResponseSlice converts a slice of models into DTOs.
func NewGradeResponseSlice(grades []models.Grade) []GradeResponse {
	responses := make([]GradeResponse, 0, len(grades))
	for _, grade := range grades {
		responses = append(responses, NewGradeResponse(grade))
	}
	return responses
}
