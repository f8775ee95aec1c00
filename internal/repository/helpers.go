package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func existsByID(ctx context.Context, db *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func countWhere(ctx context.Context, db *gorm.DB, model interface{}, column string, value uint) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where(column+" = ?", value).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// saveRow persists the row alone inside a transaction. Preloaded
// associations are display-only and never written back.
func saveRow(ctx context.Context, db *gorm.DB, row interface{}) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(row).Error
	})
}

func createRow(ctx context.Context, db *gorm.DB, row interface{}) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(row).Error
	})
}

// deleteByID removes the row and reports gorm.ErrRecordNotFound when
// nothing matched.
func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(model, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
