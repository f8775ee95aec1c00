package dto

import "github.com/noah-isme/school-services/internal/models"

// StudentCreateRequest describes the payload for enrolling a student.
type StudentCreateRequest struct {
	Name            *string  `json:"nome" validate:"required,min=1,max=100"`
	Age             *int     `json:"idade" validate:"required,gte=0"`
	BirthDate       *string  `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	FirstTermScore  *float64 `json:"nota_primeiro_semestre" validate:"omitempty,gte=0"`
	SecondTermScore *float64 `json:"nota_segundo_semestre" validate:"omitempty,gte=0"`
	FinalAverage    *float64 `json:"media_final" validate:"omitempty,gte=0"`
	ClassID         *uint    `json:"turma_id" validate:"required,gt=0"`
}

// StudentUpdateRequest describes a partial student update.
type StudentUpdateRequest struct {
	Name            *string  `json:"nome" validate:"omitempty,min=1,max=100"`
	Age             *int     `json:"idade" validate:"omitempty,gte=0"`
	BirthDate       *string  `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	FirstTermScore  *float64 `json:"nota_primeiro_semestre" validate:"omitempty,gte=0"`
	SecondTermScore *float64 `json:"nota_segundo_semestre" validate:"omitempty,gte=0"`
	FinalAverage    *float64 `json:"media_final" validate:"omitempty,gte=0"`
	ClassID         *uint    `json:"turma_id" validate:"omitempty,gt=0"`
}

// StudentResponse is the serialized student, with the class description denormalized.
type StudentResponse struct {
	ID              uint     `json:"id"`
	Name            string   `json:"nome"`
	Age             int      `json:"idade"`
	BirthDate       *string  `json:"data_nascimento"`
	FirstTermScore  *float64 `json:"nota_primeiro_semestre"`
	SecondTermScore *float64 `json:"nota_segundo_semestre"`
	FinalAverage    *float64 `json:"media_final"`
	ClassID         uint     `json:"turma_id"`
	Class           *string  `json:"turma"`
}

// NewStudentResponse converts a model into a DTO.
func NewStudentResponse(model models.Student) StudentResponse {
	response := StudentResponse{
		ID:              model.ID,
		Name:            model.Name,
		Age:             model.Age,
		BirthDate:       FormatOptionalDate(model.BirthDate),
		FirstTermScore:  model.FirstTermScore,
		SecondTermScore: model.SecondTermScore,
		FinalAverage:    model.FinalAverage,
		ClassID:         model.ClassID,
	}
	if model.Class != nil {
		description := model.Class.Description
		response.Class = &description
	}
	return response
}

// NewStudentResponseSlice converts a slice of models into DTOs.
func NewStudentResponseSlice(students []models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, NewStudentResponse(student))
	}
	return responses
}

// TeacherCreateRequest describes the payload for registering a teacher.
type TeacherCreateRequest struct {
	Name    *string `json:"nome" validate:"required,min=1,max=100"`
	Age     *int    `json:"idade" validate:"required,gte=0"`
	Subject *string `json:"materia" validate:"required,min=1,max=100"`
	Note    *string `json:"observacao" validate:"omitempty,max=255"`
}

// TeacherUpdateRequest describes a partial teacher update.
type TeacherUpdateRequest struct {
	Name    *string `json:"nome" validate:"omitempty,min=1,max=100"`
	Age     *int    `json:"idade" validate:"omitempty,gte=0"`
	Subject *string `json:"materia" validate:"omitempty,min=1,max=100"`
	Note    *string `json:"observacao" validate:"omitempty,max=255"`
}

// TeacherResponse is the serialized teacher with the descriptions of the classes it leads.
type TeacherResponse struct {
	ID      uint     `json:"id"`
	Name    string   `json:"nome"`
	Age     int      `json:"idade"`
	Subject string   `json:"materia"`
	Note    string   `json:"observacao"`
	Classes []string `json:"turmas"`
}

// NewTeacherResponse converts a model into a DTO.
func NewTeacherResponse(model models.Teacher) TeacherResponse {
	classes := make([]string, 0, len(model.Classes))
	for _, class := range model.Classes {
		classes = append(classes, class.Description)
	}
	return TeacherResponse{
		ID:      model.ID,
		Name:    model.Name,
		Age:     model.Age,
		Subject: model.Subject,
		Note:    model.Note,
		Classes: classes,
	}
}

// NewTeacherResponseSlice converts a slice of models into DTOs.
func NewTeacherResponseSlice(teachers []models.Teacher) []TeacherResponse {
	responses := make([]TeacherResponse, 0, len(teachers))
	for _, teacher := range teachers {
		responses = append(responses, NewTeacherResponse(teacher))
	}
	return responses
}

// ClassCreateRequest describes the payload for opening a class.
type ClassCreateRequest struct {
	Description *string `json:"descricao" validate:"required,min=1,max=100"`
	TeacherID   *uint   `json:"professor_id" validate:"required,gt=0"`
}

// ClassUpdateRequest describes a partial class update.
type ClassUpdateRequest struct {
	Description *string `json:"descricao" validate:"omitempty,min=1,max=100"`
	TeacherID   *uint   `json:"professor_id" validate:"omitempty,gt=0"`
}

// ClassResponse is the serialized class with the teacher name denormalized.
type ClassResponse struct {
	ID          uint    `json:"id"`
	Description string  `json:"descricao"`
	TeacherID   uint    `json:"professor_id"`
	Teacher     *string `json:"professor"`
}

// NewClassResponse converts a model into a DTO.
func NewClassResponse(model models.Class) ClassResponse {
	response := ClassResponse{
		ID:          model.ID,
		Description: model.Description,
		TeacherID:   model.TeacherID,
	}
	if model.Teacher != nil {
		name := model.Teacher.Name
		response.Teacher = &name
	}
	return response
}

// NewClassResponseSlice converts a slice of models into DTOs.
func NewClassResponseSlice(classes []models.Class) []ClassResponse {
	responses := make([]ClassResponse, 0, len(classes))
	for _, class := range classes {
		responses = append(responses, NewClassResponse(class))
	}
	return responses
}
