package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Every user-owned table is filtered on both the record id and user_id,
// so a caller can never touch another user's rows by guessing an id.

func ListOwned[T any](ctx context.Context, db *gorm.DB, userID uuid.UUID, order string) ([]T, error) {
	records := []T{}
	err := db.WithContext(ctx).Where("user_id = ?", userID).Order(order).Find(&records).Error
	return records, err
}

func FindOwned[T any](ctx context.Context, db *gorm.DB, id, userID uuid.UUID) (*T, error) {
	var record T
	if err := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteOwned removes exactly one owned record and reports gorm.ErrRecordNotFound when none matched.
func DeleteOwned[T any](ctx context.Context, db *gorm.DB, id, userID uuid.UUID) error {
	res := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
