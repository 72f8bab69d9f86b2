package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id asc")
}

func exists(ctx context.Context, db *gorm.DB, model interface{}, id int64) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("lookup %d: %w", id, err)
	}
	return count > 0, nil
}

// deleteByID reports gorm.ErrRecordNotFound when no row matched.
func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id int64, name string) error {
	res := db.WithContext(ctx).Delete(model, id)
	if res.Error != nil {
		return fmt.Errorf("delete %s %d: %w", name, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %s %d: %w", name, id, gorm.ErrRecordNotFound)
	}
	return nil
}
