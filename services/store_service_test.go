package services

import (
	"context"
	"testing"

	"elo_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutComputesTotalFromCatalog(t *testing.T) {
	kv := NewMemoryKV()
	ss := &StoreService{KV: kv}
	ctx := context.Background()

	order, err := ss.Checkout(ctx, "u1", []models.CartItem{
		{ProductID: "1", Quantity: 2},
		{ProductID: "6", Quantity: 1},
	})
	require.NoError(t, err)
	assert.InDelta(t, 2*29.90+9.90, order.Total, 0.001)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "u1", order.UserID)

	var stored models.Order
	found, err := kv.Get(ctx, models.OrderKey(order.ID), &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, order.ID, stored.ID)
}

func TestCheckoutValidation(t *testing.T) {
	ss := &StoreService{KV: NewMemoryKV()}
	ctx := context.Background()

	t.Run("empty cart", func(t *testing.T) {
		_, err := ss.Checkout(ctx, "u1", nil)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := ss.Checkout(ctx, "u1", []models.CartItem{{ProductID: "999", Quantity: 1}})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("invalid quantity", func(t *testing.T) {
		_, err := ss.Checkout(ctx, "u1", []models.CartItem{{ProductID: "1", Quantity: 0}})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})
}

func TestProductsCatalog(t *testing.T) {
	ss := &StoreService{KV: NewMemoryKV()}

	products := ss.Products()
	require.Len(t, products, 6)
	assert.Equal(t, "Elo Premium Mensal", products[0].Name)
}
