package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/school-services/internal/models"
)

// ActivityRepository defines persistence operations for activities.
type ActivityRepository interface {
	List(ctx context.Context) ([]models.Activity, error)
	GetByID(ctx context.Context, id uint) (models.Activity, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, activity *models.Activity) error
	Update(ctx context.Context, activity *models.Activity) error
	Delete(ctx context.Context, id uint) error
	CountByClass(ctx context.Context, classID uint) (int64, error)
	CountByTeacher(ctx context.Context, teacherID uint) (int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository instantiates a GORM-backed repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) List(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	if err := r.db.WithContext(ctx).Order("due_date ASC, id ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) GetByID(ctx context.Context, id uint) (models.Activity, error) {
	var activity models.Activity
	if err := r.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

func (r *activityRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return existsByID(ctx, r.db, &models.Activity{}, id)
}

func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return createRow(ctx, r.db, activity)
}

func (r *activityRepository) Update(ctx context.Context, activity *models.Activity) error {
	return saveRow(ctx, r.db, activity)
}

func (r *activityRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Activity{}, id)
}

func (r *activityRepository) CountByClass(ctx context.Context, classID uint) (int64, error) {
	return countWhere(ctx, r.db, &models.Activity{}, "class_id", classID)
}

func (r *activityRepository) CountByTeacher(ctx context.Context, teacherID uint) (int64, error) {
	return countWhere(ctx, r.db, &models.Activity{}, "teacher_id", teacherID)
}
