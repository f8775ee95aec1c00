package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/school-services/internal/cache"
	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/events"
	"github.com/noah-isme/school-services/internal/models"
	"github.com/noah-isme/school-services/internal/reference"
	"github.com/noah-isme/school-services/internal/repository"
)

// StudentService exposes student use cases.
type StudentService interface {
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Get(ctx context.Context, id uint) (dto.StudentResponse, error)
	Create(ctx context.Context, payload dto.StudentCreateRequest) (dto.StudentResponse, error)
	Update(ctx context.Context, id uint, payload dto.StudentUpdateRequest) (dto.StudentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type studentService struct {
	repo      repository.StudentRepository
	classes   reference.Checker
	validator PayloadValidator
	writes    rosterWrites
	logger    zerolog.Logger
}

// NewStudentService builds the student service. classes resolves turma_id.
func NewStudentService(repo repository.StudentRepository, classes reference.Checker, validate PayloadValidator, listCache cache.ListCache, publisher events.Publisher, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		classes:   classes,
		validator: validate,
		writes:    newRosterWrites(listCache, publisher),
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	var cached []dto.StudentResponse
	if s.writes.cache.Get(ctx, studentsListKey, &cached) {
		return cached, nil
	}

	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := dto.NewStudentResponseSlice(students)
	s.writes.cache.Set(ctx, studentsListKey, responses)
	return responses, nil
}

func (s *studentService) Get(ctx context.Context, id uint) (dto.StudentResponse, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.StudentResponse{}, notFoundAs(err, ErrStudentNotFound)
	}
	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Create(ctx context.Context, payload dto.StudentCreateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}

	name, err := requiredText("nome", *payload.Name)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	student := models.Student{
		Name:            name,
		Age:             *payload.Age,
		FirstTermScore:  payload.FirstTermScore,
		SecondTermScore: payload.SecondTermScore,
		FinalAverage:    payload.FinalAverage,
		ClassID:         *payload.ClassID,
	}

	if payload.BirthDate != nil {
		birthDate, err := parseDateField("data_nascimento", *payload.BirthDate)
		if err != nil {
			return dto.StudentResponse{}, err
		}
		student.BirthDate = &birthDate
	}

	if err := reference.Require(ctx, s.classes, "turma_id", student.ClassID); err != nil {
		return dto.StudentResponse{}, err
	}

	if payload.FinalAverage == nil {
		student.RecomputeAverage()
	}

	if err := s.repo.Create(ctx, &student); err != nil {
		return dto.StudentResponse{}, writeFailed("create student", err)
	}

	s.logger.Info().Uint("student_id", student.ID).Uint("class_id", student.ClassID).Msg("student created")
	s.writes.committed(ctx, events.EntityStudent, events.ActionCreated, student.ID)

	return s.reload(ctx, student), nil
}

func (s *studentService) Update(ctx context.Context, id uint, payload dto.StudentUpdateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}

	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.StudentResponse{}, notFoundAs(err, ErrStudentNotFound)
	}

	if err := reference.RequireIfPresent(ctx, s.classes, "turma_id", payload.ClassID); err != nil {
		return dto.StudentResponse{}, err
	}

	if payload.Name != nil {
		name, err := requiredText("nome", *payload.Name)
		if err != nil {
			return dto.StudentResponse{}, err
		}
		student.Name = name
	}
	if payload.Age != nil {
		student.Age = *payload.Age
	}
	if payload.BirthDate != nil {
		birthDate, err := parseDateField("data_nascimento", *payload.BirthDate)
		if err != nil {
			return dto.StudentResponse{}, err
		}
		student.BirthDate = &birthDate
	}
	if payload.FirstTermScore != nil {
		student.FirstTermScore = payload.FirstTermScore
	}
	if payload.SecondTermScore != nil {
		student.SecondTermScore = payload.SecondTermScore
	}
	if payload.FinalAverage != nil {
		student.FinalAverage = payload.FinalAverage
	}
	if payload.ClassID != nil {
		student.ClassID = *payload.ClassID
	}
	if payload.FinalAverage == nil && (payload.FirstTermScore != nil || payload.SecondTermScore != nil) {
		student.RecomputeAverage()
	}
	student.Class = nil

	if err := s.repo.Update(ctx, &student); err != nil {
		return dto.StudentResponse{}, writeFailed("update student", err)
	}

	s.logger.Info().Uint("student_id", student.ID).Msg("student updated")
	s.writes.committed(ctx, events.EntityStudent, events.ActionUpdated, student.ID)

	return s.reload(ctx, student), nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, ErrStudentNotFound)
	}

	s.logger.Info().Uint("student_id", id).Msg("student deleted")
	s.writes.committed(ctx, events.EntityStudent, events.ActionDeleted, id)
	return nil
}

// reload re-reads the committed row so the response carries the class
// description. The stored row is returned as-is if the read fails.
func (s *studentService) reload(ctx context.Context, student models.Student) dto.StudentResponse {
	fresh, err := s.repo.GetByID(ctx, student.ID)
	if err != nil {
		s.logger.Warn().Err(err).Uint("student_id", student.ID).Msg("failed to reload student")
		return dto.NewStudentResponse(student)
	}
	return dto.NewStudentResponse(fresh)
}
