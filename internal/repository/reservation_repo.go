package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-services/internal/models"
)

// ReservationRepository defines persistence operations for room reservations.
type ReservationRepository interface {
	List(ctx context.Context) ([]models.Reservation, error)
	GetByID(ctx context.Context, id uint) (models.Reservation, error)
	Create(ctx context.Context, reservation *models.Reservation) error
	Update(ctx context.Context, reservation *models.Reservation) error
	Delete(ctx context.Context, id uint) error
	CountByClass(ctx context.Context, classID uint) (int64, error)
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository instantiates a GORM-backed repository.
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) List(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).Order("date ASC, id ASC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id uint) (models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		return models.Reservation{}, err
	}
	return reservation, nil
}

func (r *reservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	return createRow(ctx, r.db, reservation)
}

func (r *reservationRepository) Update(ctx context.Context, reservation *models.Reservation) error {
	return saveRow(ctx, r.db, reservation)
}

func (r *reservationRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Reservation{}, id)
}

func (r *reservationRepository) CountByClass(ctx context.Context, classID uint) (int64, error) {
	return countWhere(ctx, r.db, &models.Reservation{}, "class_id", classID)
}
