package service

import (
	"context"
	"errors"
	"fmt"

	"shopcarts/internal/models"
	"shopcarts/internal/repo"
)

var (
	ErrValidation = errors.New("validation")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

const (
	maxNameLen  = 64
	maxColorLen = 16
)

// Repository is the persistence port the service is wired with.
// *repo.GormRepo is the production implementation.
type Repository interface {
	CreateShopcart(ctx context.Context, cart *models.Shopcart) error
	FindShopcart(ctx context.Context, id uint) (*models.Shopcart, error)
	ListShopcarts(ctx context.Context, filter repo.ShopcartFilter) ([]models.Shopcart, error)
	ReplaceShopcart(ctx context.Context, cart *models.Shopcart) error
	DeleteShopcart(ctx context.Context, id uint) error
	ClearItems(ctx context.Context, shopcartID uint) error

	FindItem(ctx context.Context, id uint) (*models.Item, error)
	FindItemInShopcart(ctx context.Context, shopcartID, itemID uint) (*models.Item, error)
	CreateItem(ctx context.Context, item *models.Item) error
	IncrementItemQuantity(ctx context.Context, id uint, by int) (*models.Item, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, id uint) error
	DeleteItems(ctx context.Context, ids []uint) error
}

type ShopcartService struct {
	Repo Repository
}

func validateItem(item *models.Item) error {
	if item.Name == "" {
		return fmt.Errorf("item name is required: %w", ErrValidation)
	}
	if len(item.Name) > maxNameLen {
		return fmt.Errorf("item name must be at most %d characters: %w", maxNameLen, ErrValidation)
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("quantity must be more than zero: %w", ErrValidation)
	}
	if item.Price < 0 {
		return fmt.Errorf("price must not be negative: %w", ErrValidation)
	}
	if len(item.Color) > maxColorLen {
		return fmt.Errorf("color must be at most %d characters: %w", maxColorLen, ErrValidation)
	}
	return nil
}
