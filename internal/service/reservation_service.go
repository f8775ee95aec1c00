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

// ReservationService exposes room reservation use cases.
type ReservationService interface {
	List(ctx context.Context) ([]dto.ReservationResponse, error)
	Get(ctx context.Context, id uint) (dto.ReservationResponse, error)
	Create(ctx context.Context, payload dto.ReservationCreateRequest) (dto.ReservationResponse, error)
	Update(ctx context.Context, id uint, payload dto.ReservationUpdateRequest) (dto.ReservationResponse, error)
	Delete(ctx context.Context, id uint) error
}

type reservationService struct {
	repo      repository.ReservationRepository
	classes   reference.Checker
	validator PayloadValidator
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewReservationService builds the reservation service.
func NewReservationService(repo repository.ReservationRepository, classes reference.Checker, validate PayloadValidator, publisher events.Publisher, logger zerolog.Logger) ReservationService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &reservationService{
		repo:      repo,
		classes:   classes,
		validator: validate,
		publisher: publisher,
		logger:    logger.With().Str("component", "reservation_service").Logger(),
	}
}

func (s *reservationService) List(ctx context.Context) ([]dto.ReservationResponse, error) {
	reservations, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewReservationResponseSlice(reservations), nil
}

func (s *reservationService) Get(ctx context.Context, id uint) (dto.ReservationResponse, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ReservationResponse{}, notFoundAs(err, ErrReservationNotFound)
	}
	return dto.NewReservationResponse(reservation), nil
}

func (s *reservationService) Create(ctx context.Context, payload dto.ReservationCreateRequest) (dto.ReservationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ReservationResponse{}, err
	}

	room, err := requiredText("num_sala", *payload.RoomNumber)
	if err != nil {
		return dto.ReservationResponse{}, err
	}
	date, err := parseDateField("data", *payload.Date)
	if err != nil {
		return dto.ReservationResponse{}, err
	}

	reservation := models.Reservation{
		RoomNumber: room,
		Date:       date,
		ClassID:    *payload.ClassID,
	}
	if payload.Lab != nil {
		reservation.Lab = *payload.Lab
	}

	if err := reference.Require(ctx, s.classes, "turma_id", reservation.ClassID); err != nil {
		return dto.ReservationResponse{}, err
	}

	if err := s.repo.Create(ctx, &reservation); err != nil {
		return dto.ReservationResponse{}, writeFailed("create reservation", err)
	}

	s.logger.Info().
		Uint("reservation_id", reservation.ID).
		Uint("class_id", reservation.ClassID).
		Str("room", reservation.RoomNumber).
		Msg("reservation created")
	s.publisher.Publish(ctx, events.EntityReservation, events.ActionCreated, reservation.ID)

	return dto.NewReservationResponse(reservation), nil
}

func (s *reservationService) Update(ctx context.Context, id uint, payload dto.ReservationUpdateRequest) (dto.ReservationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ReservationResponse{}, err
	}

	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ReservationResponse{}, notFoundAs(err, ErrReservationNotFound)
	}

	if err := reference.RequireIfPresent(ctx, s.classes, "turma_id", payload.ClassID); err != nil {
		return dto.ReservationResponse{}, err
	}

	if payload.RoomNumber != nil {
		room, err := requiredText("num_sala", *payload.RoomNumber)
		if err != nil {
			return dto.ReservationResponse{}, err
		}
		reservation.RoomNumber = room
	}
	if payload.Lab != nil {
		reservation.Lab = *payload.Lab
	}
	if payload.Date != nil {
		date, err := parseDateField("data", *payload.Date)
		if err != nil {
			return dto.ReservationResponse{}, err
		}
		reservation.Date = date
	}
	if payload.ClassID != nil {
		reservation.ClassID = *payload.ClassID
	}

	if err := s.repo.Update(ctx, &reservation); err != nil {
		return dto.ReservationResponse{}, writeFailed("update reservation", err)
	}

	s.logger.Info().Uint("reservation_id", reservation.ID).Msg("reservation updated")
	s.publisher.Publish(ctx, events.EntityReservation, events.ActionUpdated, reservation.ID)

	return dto.NewReservationResponse(reservation), nil
}

func (s *reservationService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFoundAs(err, ErrReservationNotFound)
	}

	s.logger.Info().Uint("reservation_id", id).Msg("reservation deleted")
	s.publisher.Publish(ctx, events.EntityReservation, events.ActionDeleted, id)
	return nil
}
