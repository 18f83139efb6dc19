package repo

import (
	"context"

	"gorm.io/gorm"

	"shopcarts/internal/models"
)

func (r *GormRepo) FindItem(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) FindItemInShopcart(ctx context.Context, shopcartID, itemID uint) (*models.Item, error) {
	var item models.Item
	err := r.DB.WithContext(ctx).
		Where("id = ? AND shopcart_id = ?", itemID, shopcartID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) CreateItem(ctx context.Context, item *models.Item) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

// IncrementItemQuantity bumps the stored quantity atomically and returns
// the refreshed row.
func (r *GormRepo) IncrementItemQuantity(ctx context.Context, id uint, by int) (*models.Item, error) {
	var item models.Item
	if err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Item{}).
			Where("id = ?", id).
			Update("quantity", gorm.Expr("quantity + ?", by))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&item, id).Error
	}); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) UpdateItem(ctx context.Context, item *models.Item) error {
	return r.DB.WithContext(ctx).Save(item).Error
}

func (r *GormRepo) DeleteItem(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.Item{}, id).Error
}

// DeleteItems removes the given rows in one transaction.
func (r *GormRepo) DeleteItems(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("id IN ?", ids).Delete(&models.Item{}).Error
	})
}
