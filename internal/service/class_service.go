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

// ClassService exposes class use cases.
type ClassService interface {
	List(ctx context.Context) ([]dto.ClassResponse, error)
	Get(ctx context.Context, id uint) (dto.ClassResponse, error)
	Create(ctx context.Context, payload dto.ClassCreateRequest) (dto.ClassResponse, error)
	Update(ctx context.Context, id uint, payload dto.ClassUpdateRequest) (dto.ClassResponse, error)
	Delete(ctx context.Context, id uint) error
}

type classService struct {
	repo      repository.ClassRepository
	teachers  reference.Checker
	validator PayloadValidator
	writes    rosterWrites
	logger    zerolog.Logger
}

// NewClassService builds the class service. teachers resolves professor_id.
func NewClassService(repo repository.ClassRepository, teachers reference.Checker, validate PayloadValidator, listCache cache.ListCache, publisher events.Publisher, logger zerolog.Logger) ClassService {
	return &classService{
		repo:      repo,
		teachers:  teachers,
		validator: validate,
		writes:    newRosterWrites(listCache, publisher),
		logger:    logger.With().Str("component", "class_service").Logger(),
	}
}

func (s *classService) List(ctx context.Context) ([]dto.ClassResponse, error) {
	var cached []dto.ClassResponse
	if s.writes.cache.Get(ctx, classesListKey, &cached) {
		return cached, nil
	}

	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := dto.NewClassResponseSlice(classes)
	s.writes.cache.Set(ctx, classesListKey, responses)
	return responses, nil
}

func (s *classService) Get(ctx context.Context, id uint) (dto.ClassResponse, error) {
	class, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ClassResponse{}, notFoundAs(err, ErrClassNotFound)
	}
	return dto.NewClassResponse(class), nil
}

func (s *classService) Create(ctx context.Context, payload dto.ClassCreateRequest) (dto.ClassResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ClassResponse{}, err
	}

	description, err := requiredText("descricao", *payload.Description)
	if err != nil {
		return dto.ClassResponse{}, err
	}

	class := models.Class{
		Description: description,
		TeacherID:   *payload.TeacherID,
	}

	if err := reference.Require(ctx, s.teachers, "professor_id", class.TeacherID); err != nil {
		return dto.ClassResponse{}, err
	}

	if err := s.repo.Create(ctx, &class); err != nil {
		return dto.ClassResponse{}, writeFailed("create class", err)
	}

	s.logger.Info().Uint("class_id", class.ID).Uint("teacher_id", class.TeacherID).Msg("class created")
	s.writes.committed(ctx, events.EntityClass, events.ActionCreated, class.ID)

	return s.reload(ctx, class), nil
}

func (s *classService) Update(ctx context.Context, id uint, payload dto.ClassUpdateRequest) (dto.ClassResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ClassResponse{}, err
	}

	class, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ClassResponse{}, notFoundAs(err, ErrClassNotFound)
	}

	if err := reference.RequireIfPresent(ctx, s.teachers, "professor_id", payload.TeacherID); err != nil {
		return dto.ClassResponse{}, err
	}

	if payload.Description != nil {
		description, err := requiredText("descricao", *payload.Description)
		if err != nil {
			return dto.ClassResponse{}, err
		}
		class.Description = description
	}
	if payload.TeacherID != nil {
		class.TeacherID = *payload.TeacherID
	}
	class.Teacher = nil

	if err := s.repo.Update(ctx, &class); err != nil {
		return dto.ClassResponse{}, writeFailed("update class", err)
	}

	s.logger.Info().Uint("class_id", class.ID).Msg("class updated")
	s.writes.committed(ctx, events.EntityClass, events.ActionUpdated, class.ID)

	return s.reload(ctx, class), nil
}

func (s *classService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, ErrClassNotFound)
	}

	s.logger.Info().Uint("class_id", id).Msg("class deleted")
	s.writes.committed(ctx, events.EntityClass, events.ActionDeleted, id)
	return nil
}

func (s *classService) reload(ctx context.Context, class models.Class) dto.ClassResponse {
	fresh, err := s.repo.GetByID(ctx, class.ID)
	if err != nil {
		s.logger.Warn().Err(err).Uint("class_id", class.ID).Msg("failed to reload class")
		return dto.NewClassResponse(class)
	}
	return dto.NewClassResponse(fresh)
}
