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

// ActivityService exposes activity use cases.
type ActivityService interface {
	List(ctx context.Context) ([]dto.ActivityResponse, error)
	Get(ctx context.Context, id uint) (dto.ActivityResponse, error)
	Create(ctx context.Context, payload dto.ActivityCreateRequest) (dto.ActivityResponse, error)
	Update(ctx context.Context, id uint, payload dto.ActivityUpdateRequest) (dto.ActivityResponse, error)
	Delete(ctx context.Context, id uint) error
}

type activityService struct {
	repo      repository.ActivityRepository
	classes   reference.Checker
	teachers  reference.Checker
	validator PayloadValidator
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewActivityService builds the activity service. classes and teachers
// resolve turma_id and professor_id against the roster.
func NewActivityService(repo repository.ActivityRepository, classes, teachers reference.Checker, validate PayloadValidator, publisher events.Publisher, logger zerolog.Logger) ActivityService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &activityService{
		repo:      repo,
		classes:   classes,
		teachers:  teachers,
		validator: validate,
		publisher: publisher,
		logger:    logger.With().Str("component", "activity_service").Logger(),
	}
}

func (s *activityService) List(ctx context.Context) ([]dto.ActivityResponse, error) {
	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewActivityResponseSlice(activities), nil
}

func (s *activityService) Get(ctx context.Context, id uint) (dto.ActivityResponse, error) {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ActivityResponse{}, notFoundAs(err, ErrActivityNotFound)
	}
	return dto.NewActivityResponse(activity), nil
}

func (s *activityService) Create(ctx context.Context, payload dto.ActivityCreateRequest) (dto.ActivityResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ActivityResponse{}, err
	}

	name, err := requiredText("nome_atividade", *payload.Name)
	if err != nil {
		return dto.ActivityResponse{}, err
	}
	dueDate, err := parseDateField("data_entrega", *payload.DueDate)
	if err != nil {
		return dto.ActivityResponse{}, err
	}

	activity := models.Activity{
		Name:          name,
		WeightPercent: *payload.WeightPercent,
		DueDate:       dueDate,
		ClassID:       *payload.ClassID,
		TeacherID:     *payload.TeacherID,
	}
	if payload.Description != nil {
		activity.Description = cleanText(*payload.Description)
	}

	if err := reference.Require(ctx, s.classes, "turma_id", activity.ClassID); err != nil {
		return dto.ActivityResponse{}, err
	}
	if err := reference.Require(ctx, s.teachers, "professor_id", activity.TeacherID); err != nil {
		return dto.ActivityResponse{}, err
	}

	if err := s.repo.Create(ctx, &activity); err != nil {
		return dto.ActivityResponse{}, writeFailed("create activity", err)
	}

	s.logger.Info().
		Uint("activity_id", activity.ID).
		Uint("class_id", activity.ClassID).
		Uint("teacher_id", activity.TeacherID).
		Msg("activity created")
	s.publisher.Publish(ctx, events.EntityActivity, events.ActionCreated, activity.ID)

	return dto.NewActivityResponse(activity), nil
}

func (s *activityService) Update(ctx context.Context, id uint, payload dto.ActivityUpdateRequest) (dto.ActivityResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ActivityResponse{}, err
	}

	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ActivityResponse{}, notFoundAs(err, ErrActivityNotFound)
	}

	if err := reference.RequireIfPresent(ctx, s.classes, "turma_id", payload.ClassID); err != nil {
		return dto.ActivityResponse{}, err
	}
	if err := reference.RequireIfPresent(ctx, s.teachers, "professor_id", payload.TeacherID); err != nil {
		return dto.ActivityResponse{}, err
	}

	if payload.Name != nil {
		name, err := requiredText("nome_atividade", *payload.Name)
		if err != nil {
			return dto.ActivityResponse{}, err
		}
		activity.Name = name
	}
	if payload.Description != nil {
		activity.Description = cleanText(*payload.Description)
	}
	if payload.WeightPercent != nil {
		activity.WeightPercent = *payload.WeightPercent
	}
	if payload.DueDate != nil {
		dueDate, err := parseDateField("data_entrega", *payload.DueDate)
		if err != nil {
			return dto.ActivityResponse{}, err
		}
		activity.DueDate = dueDate
	}
	if payload.ClassID != nil {
		activity.ClassID = *payload.ClassID
	}
	if payload.TeacherID != nil {
		activity.TeacherID = *payload.TeacherID
	}

	if err := s.repo.Update(ctx, &activity); err != nil {
		return dto.ActivityResponse{}, writeFailed("update activity", err)
	}

	s.logger.Info().Uint("activity_id", activity.ID).Msg("activity updated")
	s.publisher.Publish(ctx, events.EntityActivity, events.ActionUpdated, activity.ID)

	return dto.NewActivityResponse(activity), nil
}

func (s *activityService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, ErrActivityNotFound)
	}

	s.logger.Info().Uint("activity_id", id).Msg("activity deleted")
	s.publisher.Publish(ctx, events.EntityActivity, events.ActionDeleted, id)
	return nil
}
