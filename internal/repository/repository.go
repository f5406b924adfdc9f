package repository

import (
	"context"

	"freshvegies/internal/model"
)

// ShopRepository defines the interface for catalogue data access operations.
type ShopRepository interface {
	// GetAll retrieves every shop with its products and offers, ordered by shop id.
	GetAll(ctx context.Context) ([]model.Shop, error)

	// GetByID retrieves a single shop with its products and offers.
	// Returns nil when the shop does not exist.
	GetByID(ctx context.Context, id string) (*model.Shop, error)

	// Import replaces the stored catalogue with shops in a single transaction.
	Import(ctx context.Context, shops []model.Shop) error

	// Load satisfies catalog.Source.
	Load(ctx context.Context) ([]model.Shop, error)
}
