package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/school-services/internal/cache"
	"github.com/noah-isme/school-services/internal/dto"
	"github.com/noah-isme/school-services/internal/events"
	"github.com/noah-isme/school-services/internal/models"
	"github.com/noah-isme/school-services/internal/repository"
)

// TeacherService exposes teacher use cases.
type TeacherService interface {
	List(ctx context.Context) ([]dto.TeacherResponse, error)
	Get(ctx context.Context, id uint) (dto.TeacherResponse, error)
	Create(ctx context.Context, payload dto.TeacherCreateRequest) (dto.TeacherResponse, error)
	Update(ctx context.Context, id uint, payload dto.TeacherUpdateRequest) (dto.TeacherResponse, error)
	Delete(ctx context.Context, id uint) error
}

type teacherService struct {
	repo      repository.TeacherRepository
	validator PayloadValidator
	writes    rosterWrites
	logger    zerolog.Logger
}

// NewTeacherService builds the teacher service.
func NewTeacherService(repo repository.TeacherRepository, validate PayloadValidator, listCache cache.ListCache, publisher events.Publisher, logger zerolog.Logger) TeacherService {
	return &teacherService{
		repo:      repo,
		validator: validate,
		writes:    newRosterWrites(listCache, publisher),
		logger:    logger.With().Str("component", "teacher_service").Logger(),
	}
}

func (s *teacherService) List(ctx context.Context) ([]dto.TeacherResponse, error) {
	var cached []dto.TeacherResponse
	if s.writes.cache.Get(ctx, teachersListKey, &cached) {
		return cached, nil
	}

	teachers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := dto.NewTeacherResponseSlice(teachers)
	s.writes.cache.Set(ctx, teachersListKey, responses)
	return responses, nil
}

func (s *teacherService) Get(ctx context.Context, id uint) (dto.TeacherResponse, error) {
	teacher, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.TeacherResponse{}, notFoundAs(err, ErrTeacherNotFound)
	}
	return dto.NewTeacherResponse(teacher), nil
}

func (s *teacherService) Create(ctx context.Context, payload dto.TeacherCreateRequest) (dto.TeacherResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TeacherResponse{}, err
	}

	name, err := requiredText("nome", *payload.Name)
	if err != nil {
		return dto.TeacherResponse{}, err
	}
	subject, err := requiredText("materia", *payload.Subject)
	if err != nil {
		return dto.TeacherResponse{}, err
	}

	teacher := models.Teacher{
		Name:    name,
		Age:     *payload.Age,
		Subject: subject,
	}
	if payload.Note != nil {
		teacher.Note = cleanText(*payload.Note)
	}

	if err := s.repo.Create(ctx, &teacher); err != nil {
		return dto.TeacherResponse{}, writeFailed("create teacher", err)
	}

	s.logger.Info().Uint("teacher_id", teacher.ID).Msg("teacher created")
	s.writes.committed(ctx, events.EntityTeacher, events.ActionCreated, teacher.ID)

	return dto.NewTeacherResponse(teacher), nil
}

func (s *teacherService) Update(ctx context.Context, id uint, payload dto.TeacherUpdateRequest) (dto.TeacherResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TeacherResponse{}, err
	}

	teacher, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.TeacherResponse{}, notFoundAs(err, ErrTeacherNotFound)
	}

	if payload.Name != nil {
		name, err := requiredText("nome", *payload.Name)
		if err != nil {
			return dto.TeacherResponse{}, err
		}
		teacher.Name = name
	}
	if payload.Age != nil {
		teacher.Age = *payload.Age
	}
	if payload.Subject != nil {
		subject, err := requiredText("materia", *payload.Subject)
		if err != nil {
			return dto.TeacherResponse{}, err
		}
		teacher.Subject = subject
	}
	if payload.Note != nil {
		teacher.Note = cleanText(*payload.Note)
	}

	if err := s.repo.Update(ctx, &teacher); err != nil {
		return dto.TeacherResponse{}, writeFailed("update teacher", err)
	}

	s.logger.Info().Uint("teacher_id", teacher.ID).Msg("teacher updated")
	s.writes.committed(ctx, events.EntityTeacher, events.ActionUpdated, teacher.ID)

	return dto.NewTeacherResponse(teacher), nil
}

func (s *teacherService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, ErrTeacherNotFound)
	}

	s.logger.Info().Uint("teacher_id", id).Msg("teacher deleted")
	s.writes.committed(ctx, events.EntityTeacher, events.ActionDeleted, id)
	return nil
}
