package service

import (
	"context"
	"fmt"

	"freshvegies/internal/cart"
	"freshvegies/internal/model"
	"freshvegies/internal/session"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	sessions Sessions
	catalog  Catalog
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(sessions Sessions, c Catalog, logger zerolog.Logger) CartService {
	return &cartService{
		sessions: sessions,
		catalog:  c,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// Get returns the cart contents with total and item count.
func (s *cartService) Get(ctx context.Context, sessionID string) (*model.CartView, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	view := sess.Cart.View()
	return &view, nil
}

// Add adds one unit of a catalogue product and opens the cart drawer.
func (s *cartService) Add(ctx context.Context, sessionID, productID string) (*model.CartView, error) {
	entry, ok := s.catalog.Product(productID)
	if !ok {
		s.logger.Debug().Str("product_id", productID).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	var line model.CartLine
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		line = sess.Cart.Add(entry.Product, entry.Shop.Name)
		sess.SetCartOpen(true)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}

	s.logger.Debug().
		Str("session_id", sessionID).
		Str("product_id", productID).
		Int("quantity", line.Quantity).
		Msg("added to cart")

	view := sess.Cart.View()
	return &view, nil
}

// Remove deletes a line. Unknown products are ignored.
func (s *cartService) Remove(ctx context.Context, sessionID, productID string) (*model.CartView, error) {
	sess, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		sess.Cart.Remove(productID)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove from cart: %w", err)
	}

	view := sess.Cart.View()
	return &view, nil
}

// UpdateQuantity changes a line's quantity by delta. Changes that would take
// the quantity below one, and unknown products, leave the cart unchanged.
// A delta outside [-cart.MaxQuantity, cart.MaxQuantity] is rejected.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (*model.CartView, error) {
	if delta == 0 || delta > cart.MaxQuantity || delta < -cart.MaxQuantity {
		return nil, model.ErrInvalidDelta
	}

	sess, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		if _, applied := sess.Cart.UpdateQuantity(productID, delta); !applied {
			s.logger.Debug().
				Str("product_id", productID).
				Int("delta", delta).
				Msg("quantity change ignored")
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update quantity: %w", err)
	}

	view := sess.Cart.View()
	return &view, nil
}
