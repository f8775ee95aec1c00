package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-services/internal/models"
)

// TeacherRepository provides access to teacher records.
type TeacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	GetByID(ctx context.Context, id uint) (models.Teacher, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id uint) error
}

type teacherRepository struct {
	db *gorm.DB
}

// NewTeacherRepository constructs a teacher repository.
func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	err := r.db.WithContext(ctx).
		Preload("Classes", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("id ASC").
		Find(&teachers).Error
	if err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *teacherRepository) GetByID(ctx context.Context, id uint) (models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.WithContext(ctx).
		Preload("Classes", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&teacher, id).Error
	if err != nil {
		return models.Teacher{}, err
	}
	return teacher, nil
}

func (r *teacherRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return existsByID(ctx, r.db, &models.Teacher{}, id)
}

func (r *teacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	return createRow(ctx, r.db, teacher)
}

func (r *teacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	return saveRow(ctx, r.db, teacher)
}

func (r *teacherRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Teacher{}, id)
}
