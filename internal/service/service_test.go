package service

import (
	"context"
	"testing"
	"time"

	"freshvegies/internal/catalog"
	"freshvegies/internal/model"
	"freshvegies/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSessions is a mock implementation of Sessions.
type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) Get(ctx context.Context, id string) (*session.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessions) Update(ctx context.Context, id string, fn func(s *session.Session) error) (*session.Session, error) {
	args := m.Called(ctx, id, fn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

// MockSuggester is a mock implementation of Suggester.
type MockSuggester struct {
	mock.Mock
}

func (m *MockSuggester) Suggest(ctx context.Context, itemNames []string, query string) string {
	args := m.Called(ctx, itemNames, query)
	return args.String(0)
}

func testProfile() model.UserProfile {
	return model.UserProfile{
		Name:           "Rahul Sharma",
		Phone:          "+91 98765 43210",
		Email:          "rahul.sharma@example.com",
		RewardPoints:   1250,
		MonthlySpend:   3400,
		SpendThreshold: 5000,
	}
}

func newTestCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore(context.Background(), catalog.SeedSource{}, zerolog.Nop())
	require.NoError(t, err)
	return store
}

func newTestSessions() *session.Manager {
	return session.NewManager(session.NewMemoryStore(time.Hour), testProfile(), zerolog.Nop())
}
