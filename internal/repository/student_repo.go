package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-services/internal/models"
)

// StudentRepository provides access to student records.
type StudentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id uint) (models.Student, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uint) error
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.db.WithContext(ctx).Preload("Class").Order("id ASC").Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).Preload("Class").First(&student, id).Error; err != nil {
		return models.Student{}, err
	}
	return student, nil
}

func (r *studentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return existsByID(ctx, r.db, &models.Student{}, id)
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return createRow(ctx, r.db, student)
}

func (r *studentRepository) Update(ctx context.Context, student *models.Student) error {
	return saveRow(ctx, r.db, student)
}

func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Student{}, id)
}
