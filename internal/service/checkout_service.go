package service

import (
	"context"
	"fmt"

	"freshvegies/internal/loyalty"
	"freshvegies/internal/model"
	"freshvegies/internal/session"

	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService.
type checkoutService struct {
	sessions Sessions
	logger   zerolog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(sessions Sessions, logger zerolog.Logger) CheckoutService {
	return &checkoutService{
		sessions: sessions,
		logger:   logger.With().Str("service", "checkout").Logger(),
	}
}

// Checkout awards points for the cart total, updates the profile, empties the
// cart and closes the cart drawer. An empty cart checks out with no points.
func (s *checkoutService) Checkout(ctx context.Context, sessionID string) (*model.Receipt, error) {
	var receipt model.Receipt
	_, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		receipt = loyalty.Checkout(sess.Cart, sess.Profile)
		sess.Profile = receipt.Profile
		sess.SetCartOpen(false)
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("checkout failed")
		return nil, fmt.Errorf("failed to checkout: %w", err)
	}

	s.logger.Info().
		Str("order_id", receipt.OrderID.String()).
		Str("session_id", sessionID).
		Int("line_count", len(receipt.Lines)).
		Float64("total", receipt.Total).
		Int("earned_points", receipt.EarnedPoints).
		Msg("order placed")

	return &receipt, nil
}
