package service

import (
	"context"
	"errors"
	"fmt"

	"freshvegies/internal/model"
	"freshvegies/internal/session"

	"github.com/rs/zerolog"
)

// sessionService implements SessionService.
type sessionService struct {
	sessions Sessions
	catalog  Catalog
	logger   zerolog.Logger
}

// NewSessionService creates a new session service.
func NewSessionService(sessions Sessions, c Catalog, logger zerolog.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		catalog:  c,
		logger:   logger.With().Str("service", "session").Logger(),
	}
}

// State returns the current view state.
func (s *sessionService) State(ctx context.Context, sessionID string) (*model.SessionState, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return stateOf(sess), nil
}

// SelectShop opens a shop's detail screen.
func (s *sessionService) SelectShop(ctx context.Context, sessionID, shopID string) (*model.SessionState, error) {
	if _, ok := s.catalog.Shop(shopID); !ok {
		return nil, model.ErrShopNotFound
	}

	return s.update(ctx, sessionID, func(sess *session.Session) error {
		sess.SelectShop(shopID)
		return nil
	})
}

// Back returns to the shop catalogue.
func (s *sessionService) Back(ctx context.Context, sessionID string) (*model.SessionState, error) {
	return s.update(ctx, sessionID, func(sess *session.Session) error {
		sess.Back()
		return nil
	})
}

// SetFilters updates the filters present in req. Nil fields are unchanged.
func (s *sessionService) SetFilters(ctx context.Context, sessionID string, req *model.FiltersRequest) (*model.SessionState, error) {
	var category *model.Category
	if req.Category != nil {
		c, err := model.ParseCategory(*req.Category)
		if err != nil {
			return nil, err
		}
		category = &c
	}

	return s.update(ctx, sessionID, func(sess *session.Session) error {
		if req.ShopQuery != nil {
			sess.SetShopQuery(*req.ShopQuery)
		}

		cat, query := sess.ProductCategory, sess.ProductQuery
		if category != nil {
			cat = *category
		}
		if req.ProductQuery != nil {
			query = *req.ProductQuery
		}
		sess.SetProductFilter(cat, query)
		return nil
	})
}

// SetCartOpen opens or closes the cart drawer.
func (s *sessionService) SetCartOpen(ctx context.Context, sessionID string, open bool) (*model.SessionState, error) {
	return s.update(ctx, sessionID, func(sess *session.Session) error {
		sess.SetCartOpen(open)
		return nil
	})
}

// SetAccountOpen opens or closes the account modal.
func (s *sessionService) SetAccountOpen(ctx context.Context, sessionID string, open bool) (*model.SessionState, error) {
	return s.update(ctx, sessionID, func(sess *session.Session) error {
		sess.SetAccountOpen(open)
		return nil
	})
}

func (s *sessionService) update(ctx context.Context, sessionID string, fn func(sess *session.Session) error) (*model.SessionState, error) {
	sess, err := s.sessions.Update(ctx, sessionID, fn)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to update session")
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return stateOf(sess), nil
}
