package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-services/internal/models"
)

// GradeRepository defines persistence operations for grades.
type GradeRepository interface {
	List(ctx context.Context) ([]models.Grade, error)
	GetByID(ctx context.Context, id uint) (models.Grade, error)
	Create(ctx context.Context, grade *models.Grade) error
	Update(ctx context.Context, grade *models.Grade) error
	Delete(ctx context.Context, id uint) error
	CountByStudent(ctx context.Context, studentID uint) (int64, error)
}

type gradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository instantiates a GORM-backed repository.
func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

func (r *gradeRepository) List(ctx context.Context) ([]models.Grade, error) {
	var grades []models.Grade
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

func (r *gradeRepository) GetByID(ctx context.Context, id uint) (models.Grade, error) {
	var grade models.Grade
	if err := r.db.WithContext(ctx).First(&grade, id).Error; err != nil {
		return models.Grade{}, err
	}
	return grade, nil
}

func (r *gradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	return createRow(ctx, r.db, grade)
}

func (r *gradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	return saveRow(ctx, r.db, grade)
}

func (r *gradeRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Grade{}, id)
}

func (r *gradeRepository) CountByStudent(ctx context.Context, studentID uint) (int64, error) {
	return countWhere(ctx, r.db, &models.Grade{}, "student_id", studentID)
}
