package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-services/internal/models"
)

// ClassRepository provides access to class records.
type ClassRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	GetByID(ctx context.Context, id uint) (models.Class, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id uint) error
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository constructs a class repository.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) List(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	if err := r.db.WithContext(ctx).Preload("Teacher").Order("id ASC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) GetByID(ctx context.Context, id uint) (models.Class, error) {
	var class models.Class
	if err := r.db.WithContext(ctx).Preload("Teacher").First(&class, id).Error; err != nil {
		return models.Class{}, err
	}
	return class, nil
}

func (r *classRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return existsByID(ctx, r.db, &models.Class{}, id)
}

func (r *classRepository) Create(ctx context.Context, class *models.Class) error {
	return createRow(ctx, r.db, class)
}

func (r *classRepository) Update(ctx context.Context, class *models.Class) error {
	return saveRow(ctx, r.db, class)
}

func (r *classRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Class{}, id)
}
