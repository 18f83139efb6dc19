package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shopcarts/internal/models"
)

func (s *ShopcartService) ListItems(ctx context.Context, shopcartID uint) ([]models.Item, error) {
	cart, err := s.Get(ctx, shopcartID)
	if err != nil {
		return nil, err
	}
	return cart.Items, nil
}

// AddItem creates an item in the cart, or, when the posted id already names
// a stored item of the same cart, increments that item's quantity instead.
func (s *ShopcartService) AddItem(ctx context.Context, shopcartID uint, item models.Item) (*models.Item, error) {
	if _, err := s.Get(ctx, shopcartID); err != nil {
		return nil, err
	}
	if err := validateItem(&item); err != nil {
		return nil, err
	}

	if item.ID != 0 {
		existing, err := s.Repo.FindItem(ctx, item.ID)
		switch {
		case err == nil:
			if existing.ShopcartID != shopcartID {
				return nil, fmt.Errorf("item %d belongs to shopcart %d: %w", item.ID, existing.ShopcartID, ErrValidation)
			}
			return s.Repo.IncrementItemQuantity(ctx, item.ID, item.Quantity)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	item.ID = 0
	item.ShopcartID = shopcartID
	if err := s.Repo.CreateItem(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ShopcartService) GetItem(ctx context.Context, shopcartID, itemID uint) (*models.Item, error) {
	if _, err := s.Get(ctx, shopcartID); err != nil {
		return nil, err
	}
	item, err := s.Repo.FindItemInShopcart(ctx, shopcartID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("item %d not found in shopcart %d: %w", itemID, shopcartID, ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}

// UpdateItem applies a partial update (quantity and/or price) and returns
// the refreshed parent cart.
func (s *ShopcartService) UpdateItem(ctx context.Context, shopcartID, itemID uint, quantity *int, price *float64) (*models.Shopcart, error) {
	if quantity == nil && price == nil {
		return nil, fmt.Errorf("at least one of quantity or price is required: %w", ErrValidation)
	}
	if quantity != nil && *quantity <= 0 {
		return nil, fmt.Errorf("quantity must be more than zero: %w", ErrValidation)
	}
	if price != nil && *price < 0 {
		return nil, fmt.Errorf("price must not be negative: %w", ErrValidation)
	}

	item, err := s.GetItem(ctx, shopcartID, itemID)
	if err != nil {
		return nil, err
	}

	if quantity != nil {
		item.Quantity = *quantity
	}
	if price != nil {
		item.Price = *price
	}
	if err := s.Repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return s.Get(ctx, shopcartID)
}

// DeleteItem removes an item looked up within the path's cart only:
// deleting through the wrong cart path is a not-found, not a delete.
func (s *ShopcartService) DeleteItem(ctx context.Context, shopcartID, itemID uint) error {
	item, err := s.Repo.FindItemInShopcart(ctx, shopcartID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("item %d not found in shopcart %d: %w", itemID, shopcartID, ErrNotFound)
		}
		return err
	}
	return s.Repo.DeleteItem(ctx, item.ID)
}

// Checkout removes the listed items from the cart, all or nothing. The
// whole list is validated before the first delete: an unknown id aborts
// with not-found, an id owned by another cart aborts with forbidden, and
// in both cases the cart is left untouched.
func (s *ShopcartService) Checkout(ctx context.Context, shopcartID uint, itemIDs []uint) error {
	if _, err := s.Get(ctx, shopcartID); err != nil {
		return err
	}

	ids := make([]uint, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, err := s.Repo.FindItem(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("item %d not found: %w", id, ErrNotFound)
			}
			return err
		}
		if item.ShopcartID != shopcartID {
			return fmt.Errorf("item %d belongs to shopcart %d: %w", id, item.ShopcartID, ErrForbidden)
		}
		ids = append(ids, id)
	}

	return s.Repo.DeleteItems(ctx, ids)
}
