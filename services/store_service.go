package services

import (
	"context"
	"log"
	"time"

	"elo_server/models"

	"github.com/google/uuid"
)

// StoreService serves the static product catalog and records checkouts.
// Payment processing is out of scope: orders are stored as pending and
// never advanced.
type StoreService struct {
	KV KVStore
}

// Products returns the store catalog.
func (ss *StoreService) Products() []models.Product {
	return models.Catalog()
}

// Checkout validates the cart, computes the total server-side from the
// catalog, and records a pending order.
func (ss *StoreService) Checkout(ctx context.Context, userID string, items []models.CartItem) (*models.Order, error) {
	if len(items) == 0 {
		return nil, NewValidationError("O carrinho está vazio")
	}

	prices := map[string]float64{}
	for _, product := range models.Catalog() {
		prices[product.ID] = product.Price
	}

	total := 0.0
	for _, item := range items {
		price, ok := prices[item.ProductID]
		if !ok {
			return nil, NewValidationError("Produto não encontrado: " + item.ProductID)
		}
		if item.Quantity < 1 {
			return nil, NewValidationError("Quantidade inválida")
		}
		total += price * float64(item.Quantity)
	}

	order := models.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Total:     total,
		Status:    "pending",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := ss.KV.Set(ctx, models.OrderKey(order.ID), order); err != nil {
		return nil, err
	}

	log.Printf("Recorded order %s for %s, total %.2f", order.ID, userID, total)
	return &order, nil
}
