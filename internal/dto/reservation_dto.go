package dto

import "github.com/noah-isme/school-services/internal/models"

// ReservationCreateRequest describes the payload for booking a room.
type ReservationCreateRequest struct {
	RoomNumber *string `json:"num_sala" validate:"required,min=1,max=50"`
	Lab        *bool   `json:"lab"`
	Date       *string `json:"data" validate:"required,datetime=2006-01-02"`
	ClassID    *uint   `json:"turma_id" validate:"required,gt=0"`
}

// ReservationUpdateRequest describes a partial reservation update.
type ReservationUpdateRequest struct {
	RoomNumber *string `json:"num_sala" validate:"omitempty,min=1,max=50"`
	Lab        *bool   `json:"lab"`
	Date       *string `json:"data" validate:"omitempty,datetime=2006-01-02"`
	ClassID    *uint   `json:"turma_id" validate:"omitempty,gt=0"`
}

// ReservationResponse is the serialized representation returned to API clients.
type ReservationResponse struct {
	ID         uint   `json:"id"`
	RoomNumber string `json:"num_sala"`
	Lab        bool   `json:"lab"`
	Date       string `json:"data"`
	ClassID    uint   `json:"turma_id"`
}

// NewReservationResponse converts a model into a DTO.
func NewReservationResponse(model models.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         model.ID,
		RoomNumber: model.RoomNumber,
		Lab:        model.Lab,
		Date:       FormatDate(model.Date),
		ClassID:    model.ClassID,
	}
}

// NewReservationResponseSlice converts a slice of models into DTOs.
func NewReservationResponseSlice(reservations []models.Reservation) []ReservationResponse {
	responses := make([]ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		responses = append(responses, NewReservationResponse(reservation))
	}
	return responses
}
