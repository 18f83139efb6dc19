package repo

import (
	"context"

	"gorm.io/gorm"

	"shopcarts/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

// ShopcartFilter narrows List results. Nil fields mean no predicate.
type ShopcartFilter struct {
	ID         *uint
	CustomerID *uint
}

func (r *GormRepo) CreateShopcart(ctx context.Context, cart *models.Shopcart) error {
	if err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(cart).Error
	}); err != nil {
		return err
	}
	normalizeItems(cart)
	return nil
}

func (r *GormRepo) FindShopcart(ctx context.Context, id uint) (*models.Shopcart, error) {
	var cart models.Shopcart
	err := r.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("items.id") }).
		First(&cart, id).Error
	if err != nil {
		return nil, err
	}
	normalizeItems(&cart)
	return &cart, nil
}

func (r *GormRepo) ListShopcarts(ctx context.Context, filter ShopcartFilter) ([]models.Shopcart, error) {
	q := r.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("items.id") }).
		Order("shopcarts.id")

	if filter.ID != nil {
		q = q.Where("id = ?", *filter.ID)
	}
	if filter.CustomerID != nil {
		q = q.Where("customer_id = ?", *filter.CustomerID)
	}

	carts := []models.Shopcart{}
	if err := q.Find(&carts).Error; err != nil {
		return nil, err
	}
	for i := range carts {
		normalizeItems(&carts[i])
	}
	return carts, nil
}

// ReplaceShopcart swaps the customer and the whole item collection in one
// transaction. Existing items are removed, incoming ones get fresh ids.
func (r *GormRepo) ReplaceShopcart(ctx context.Context, cart *models.Shopcart) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shopcart_id = ?", cart.ID).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Shopcart{ID: cart.ID}).
			Update("customer_id", cart.CustomerID).Error; err != nil {
			return err
		}
		for i := range cart.Items {
			cart.Items[i].ID = 0
			cart.Items[i].ShopcartID = cart.ID
		}
		if len(cart.Items) > 0 {
			if err := tx.Create(&cart.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteShopcart removes the cart and its items in one transaction.
// Deleting an absent cart is not an error.
func (r *GormRepo) DeleteShopcart(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shopcart_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Shopcart{}, id).Error
	})
}

func (r *GormRepo) ClearItems(ctx context.Context, shopcartID uint) error {
	return r.DB.WithContext(ctx).Where("shopcart_id = ?", shopcartID).Delete(&models.Item{}).Error
}

func normalizeItems(cart *models.Shopcart) {
	if cart.Items == nil {
		cart.Items = []models.Item{}
	}
}
