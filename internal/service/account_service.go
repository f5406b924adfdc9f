package service

import (
	"context"
	"fmt"

	"freshvegies/internal/loyalty"
	"freshvegies/internal/model"

	"github.com/rs/zerolog"
)

// accountService implements AccountService.
type accountService struct {
	sessions Sessions
	logger   zerolog.Logger
}

// NewAccountService creates a new account service.
func NewAccountService(sessions Sessions, logger zerolog.Logger) AccountService {
	return &accountService{
		sessions: sessions,
		logger:   logger.With().Str("service", "account").Logger(),
	}
}

// Account returns the profile with loyalty progress.
func (s *accountService) Account(ctx context.Context, sessionID string) (*model.AccountResponse, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &model.AccountResponse{
		Profile:  sess.Profile,
		Progress: loyalty.ProfileProgress(sess.Profile),
	}, nil
}
