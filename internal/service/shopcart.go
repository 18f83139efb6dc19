package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shopcarts/internal/models"
	"shopcarts/internal/repo"
)

func (s *ShopcartService) Create(ctx context.Context, customerID uint, items []models.Item) (*models.Shopcart, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer_id is required: %w", ErrValidation)
	}
	for i := range items {
		items[i].ID = 0
		items[i].ShopcartID = 0
		if err := validateItem(&items[i]); err != nil {
			return nil, err
		}
	}

	cart := &models.Shopcart{CustomerID: customerID, Items: items}
	if err := s.Repo.CreateShopcart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *ShopcartService) Get(ctx context.Context, id uint) (*models.Shopcart, error) {
	cart, err := s.Repo.FindShopcart(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shopcart %d not found: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return cart, nil
}

func (s *ShopcartService) List(ctx context.Context, filter repo.ShopcartFilter) ([]models.Shopcart, error) {
	return s.Repo.ListShopcarts(ctx, filter)
}

// Update replaces customer_id and the item collection wholesale.
func (s *ShopcartService) Update(ctx context.Context, id, bodyID, customerID uint, items []models.Item) (*models.Shopcart, error) {
	if bodyID != id {
		return nil, fmt.Errorf("body id %d does not match path id %d: %w", bodyID, id, ErrValidation)
	}
	if customerID == 0 {
		return nil, fmt.Errorf("customer_id is required: %w", ErrValidation)
	}
	for i := range items {
		items[i].ID = 0
		items[i].ShopcartID = 0
		if err := validateItem(&items[i]); err != nil {
			return nil, err
		}
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	cart := &models.Shopcart{ID: id, CustomerID: customerID, Items: items}
	if err := s.Repo.ReplaceShopcart(ctx, cart); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete is idempotent: removing an absent cart is a success.
func (s *ShopcartService) Delete(ctx context.Context, id uint) error {
	return s.Repo.DeleteShopcart(ctx, id)
}

// Reset empties the item collection and leaves the cart itself in place.
func (s *ShopcartService) Reset(ctx context.Context, id uint) (*models.Shopcart, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.Repo.ClearItems(ctx, id); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}
