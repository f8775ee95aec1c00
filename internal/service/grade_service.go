package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/events"
	"github.com/noah-isme/school-services/internal/models"
	"github.com/noah-isme/school-services/internal/reference"
	"github.com/noah-isme/school-services/internal/repository"
)

// GradeService exposes grade use cases.
type GradeService interface {
	List(ctx context.Context) ([]dto.GradeResponse, error)
	Get(ctx context.Context, id uint) (dto.GradeResponse, error)
	Create(ctx context.Context, payload dto.GradeCreateRequest) (dto.GradeResponse, error)
	Update(ctx context.Context, id uint, payload dto.GradeUpdateRequest) (dto.GradeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type gradeService struct {
	repo       repository.GradeRepository
	students   reference.Checker
	activities reference.Checker
	validator  PayloadValidator
	publisher  events.Publisher
	logger     zerolog.Logger
}

// NewGradeService builds the grade service. students resolves aluno_id on
// the roster; activities resolves atividade_id locally or remotely.
func NewGradeService(repo repository.GradeRepository, students, activities reference.Checker, validate PayloadValidator, publisher events.Publisher, logger zerolog.Logger) GradeService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &gradeService{
		repo:       repo,
		students:   students,
		activities: activities,
		validator:  validate,
		publisher:  publisher,
		logger:     logger.With().Str("component", "grade_service").Logger(),
	}
}

func (s *gradeService) List(ctx context.Context) ([]dto.GradeResponse, error) {
	grades, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewGradeResponseSlice(grades), nil
}

func (s *gradeService) Get(ctx context.Context, id uint) (dto.GradeResponse, error) {
	grade, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.GradeResponse{}, notFoundAs(err, ErrGradeNotFound)
	}
	return dto.NewGradeResponse(grade), nil
}

func (s *gradeService) Create(ctx context.Context, payload dto.GradeCreateRequest) (dto.GradeResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.GradeResponse{}, err
	}

	grade := models.Grade{
		Score:      *payload.Score,
		StudentID:  *payload.StudentID,
		ActivityID: *payload.ActivityID,
	}

	if err := reference.Require(ctx, s.students, "aluno_id", grade.StudentID); err != nil {
		return dto.GradeResponse{}, err
	}
	if err := reference.Require(ctx, s.activities, "atividade_id", grade.ActivityID); err != nil {
		return dto.GradeResponse{}, err
	}

	if err := s.repo.Create(ctx, &grade); err != nil {
		return dto.GradeResponse{}, writeFailed("create grade", err)
	}

	s.logger.Info().
		Uint("grade_id", grade.ID).
		Uint("student_id", grade.StudentID).
		Uint("activity_id", grade.ActivityID).
		Msg("grade recorded")
	s.publisher.Publish(ctx, events.EntityGrade, events.ActionCreated, grade.ID)

	return dto.NewGradeResponse(grade), nil
}

func (s *gradeService) Update(ctx context.Context, id uint, payload dto.GradeUpdateRequest) (dto.GradeResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.GradeResponse{}, err
	}

	grade, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.GradeResponse{}, notFoundAs(err, ErrGradeNotFound)
	}

	if err := reference.RequireIfPresent(ctx, s.students, "aluno_id", payload.StudentID); err != nil {
		return dto.GradeResponse{}, err
	}
	if err := reference.RequireIfPresent(ctx, s.activities, "atividade_id", payload.ActivityID); err != nil {
		return dto.GradeResponse{}, err
	}

	if payload.Score != nil {
		grade.Score = *payload.Score
	}
	if payload.StudentID != nil {
		grade.StudentID = *payload.StudentID
	}
	if payload.ActivityID != nil {
		grade.ActivityID = *payload.ActivityID
	}

	if err := s.repo.Update(ctx, &grade); err != nil {
		return dto.GradeResponse{}, writeFailed("update grade", err)
	}

	s.logger.Info().Uint("grade_id", grade.ID).Msg("grade updated")
	s.publisher.Publish(ctx, events.EntityGrade, events.ActionUpdated, grade.ID)

	return dto.NewGradeResponse(grade), nil
}

func (s *gradeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, ErrGradeNotFound)
	}

	s.logger.Info().Uint("grade_id", id).Msg("grade deleted")
	s.publisher.Publish(ctx, events.EntityGrade, events.ActionDeleted, id)
	return nil
}
