package service

import (
	"context"
	"fmt"

	"freshvegies/internal/model"
	"freshvegies/internal/session"

	"github.com/rs/zerolog"
)

// assistantService implements AssistantService.
type assistantService struct {
	sessions  Sessions
	catalog   Catalog
	suggester Suggester
	logger    zerolog.Logger
}

// NewAssistantService creates a new assistant service.
func NewAssistantService(sessions Sessions, c Catalog, suggester Suggester, logger zerolog.Logger) AssistantService {
	return &assistantService{
		sessions:  sessions,
		catalog:   c,
		suggester: suggester,
		logger:    logger.With().Str("service", "assistant").Logger(),
	}
}

// Suggest asks the assistant for a recipe using the selected shop's product
// names. The session lock is not held during the call. The answer is stored
// in the session unless the shopper has since moved to another shop; the last
// answer to arrive wins. If the answer cannot be stored, the pending flag is
// cleared on a best-effort basis; should that also fail, the flag stays set
// until the next suggestion completes.
func (s *assistantService) Suggest(ctx context.Context, sessionID, query string) (*model.SuggestionResponse, error) {
	var shop model.Shop
	_, err := s.sessions.Update(ctx, sessionID, func(sess *session.Session) error {
		if sess.View != model.ViewShopDetail || sess.SelectedShopID == "" {
			return model.ErrShopNotSelected
		}

		selected, ok := s.catalog.Shop(sess.SelectedShopID)
		if !ok {
			return model.ErrShopNotFound
		}
		shop = selected

		sess.BeginSuggestion()
		return nil
	})
	if err != nil {
		return nil, err
	}

	suggestion := s.suggester.Suggest(ctx, shop.ProductNames(), query)

	_, err = s.sessions.Update(context.WithoutCancel(ctx), sessionID, func(sess *session.Session) error {
		if sess.SelectedShopID != shop.ID {
			sess.AssistantPending = false
			return nil
		}
		sess.CompleteSuggestion(suggestion)
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to store suggestion")
		s.clearPending(ctx, sessionID)
		return nil, fmt.Errorf("failed to store suggestion: %w", err)
	}

	s.logger.Debug().
		Str("session_id", sessionID).
		Str("shop_id", shop.ID).
		Int("items", len(shop.Products)).
		Msg("recipe suggested")

	return &model.SuggestionResponse{
		ShopID:     shop.ID,
		Suggestion: suggestion,
	}, nil
}

func (s *assistantService) clearPending(ctx context.Context, sessionID string) {
	_, err := s.sessions.Update(context.WithoutCancel(ctx), sessionID, func(sess *session.Session) error {
		sess.AssistantPending = false
		return nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("failed to clear pending suggestion")
	}
}
