package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"shopcarts/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Shopcart{}, &models.Item{}))
	return &GormRepo{DB: db}
}

func TestDeleteShopcartCascades(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	cart := &models.Shopcart{CustomerID: 7, Items: []models.Item{
		{Name: "mouse", Price: 10, Quantity: 2},
	}}
	require.NoError(t, r.CreateShopcart(ctx, cart))

	require.NoError(t, r.DeleteShopcart(ctx, cart.ID))

	var count int64
	r.DB.Model(&models.Item{}).Where("shopcart_id = ?", cart.ID).Count(&count)
	assert.Zero(t, count)

	// absent cart: still no error
	require.NoError(t, r.DeleteShopcart(ctx, cart.ID))
}

func TestReplaceShopcartSwapsItems(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	cart := &models.Shopcart{CustomerID: 7, Items: []models.Item{
		{Name: "mouse", Price: 10, Quantity: 2},
	}}
	require.NoError(t, r.CreateShopcart(ctx, cart))
	oldItemID := cart.Items[0].ID

	require.NoError(t, r.ReplaceShopcart(ctx, &models.Shopcart{
		ID:         cart.ID,
		CustomerID: 9,
		Items:      []models.Item{{Name: "monitor", Price: 199, Quantity: 1}},
	}))

	got, err := r.FindShopcart(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(9), got.CustomerID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "monitor", got.Items[0].Name)
	assert.NotEqual(t, oldItemID, got.Items[0].ID)
}

func TestIncrementItemQuantityMissing(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.IncrementItemQuantity(context.Background(), 123, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindShopcartNormalizesItems(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	cart := &models.Shopcart{CustomerID: 7}
	require.NoError(t, r.CreateShopcart(ctx, cart))

	got, err := r.FindShopcart(ctx, cart.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}
