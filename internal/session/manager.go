package session

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"freshvegies/internal/model"

	"github.com/rs/zerolog"
)

const lockStripes = 64

// Manager loads, creates and updates sessions. Updates to the same session id
// are serialised within the process.
type Manager struct {
	store   Store
	profile model.UserProfile
	logger  zerolog.Logger
	locks   [lockStripes]sync.Mutex
}

// NewManager creates a session manager. New sessions start with profile.
func NewManager(store Store, profile model.UserProfile, logger zerolog.Logger) *Manager {
	return &Manager{
		store:   store,
		profile: profile,
		logger:  logger.With().Str("component", "session-manager").Logger(),
	}
}

// Get returns the session with the given id, creating it when it does not exist.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	return m.Update(ctx, id, nil)
}

// Update loads (or creates) the session, applies fn and saves the result.
// When fn returns an error nothing is saved. A nil fn only loads or creates.
func (m *Manager) Update(ctx context.Context, id string, fn func(s *Session) error) (*Session, error) {
	if id == "" {
		return nil, fmt.Errorf("session id is required")
	}

	lock := m.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	s, created, err := m.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if fn == nil && !created {
		return s, nil
	}

	if fn != nil {
		if err := fn(s); err != nil {
			return nil, err
		}
	}

	s.UpdatedAt = time.Now().UTC()
	if err := m.store.Save(ctx, s); err != nil {
		m.logger.Error().Err(err).Str("session_id", id).Msg("failed to save session")
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return s, nil
}

// Delete ends a session.
func (m *Manager) Delete(ctx context.Context, id string) error {
	lock := m.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (m *Manager) load(ctx context.Context, id string) (*Session, bool, error) {
	s, err := m.store.Get(ctx, id)
	if err == nil {
		return s, false, nil
	}

	if !errors.Is(err, ErrSessionNotFound) {
		m.logger.Error().Err(err).Str("session_id", id).Msg("failed to load session")
		return nil, false, fmt.Errorf("failed to load session: %w", err)
	}

	m.logger.Debug().Str("session_id", id).Msg("starting new session")
	return New(id, m.profile), true, nil
}

func (m *Manager) lockFor(id string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return &m.locks[h.Sum32()%lockStripes]
}
