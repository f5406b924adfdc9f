package service

import (
	"context"
	"testing"

	"freshvegies/internal/loyalty"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Account(t *testing.T) {
	sessions := newTestSessions()
	svc := NewAccountService(sessions, zerolog.Nop())
	ctx := context.Background()

	resp, err := svc.Account(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Rahul Sharma", resp.Profile.Name)
	assert.Equal(t, 68.0, resp.Progress.Percent)
	assert.Equal(t, 1600.0, resp.Progress.Remaining)
	assert.False(t, resp.Progress.Unlocked)
}

func TestAccountService_AccountAfterCheckout(t *testing.T) {
	sessions := newTestSessions()
	carts := NewCartService(sessions, newTestCatalog(t), zerolog.Nop())
	checkout := NewCheckoutService(sessions, zerolog.Nop())
	svc := NewAccountService(sessions, zerolog.Nop())
	ctx := context.Background()

	// Three mangoes at 600 take the spend from 3400 to 5200.
	for i := 0; i < 3; i++ {
		_, err := carts.Add(ctx, "abc", "p3-s1")
		require.NoError(t, err)
	}
	_, err := checkout.Checkout(ctx, "abc")
	require.NoError(t, err)

	resp, err := svc.Account(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 5200.0, resp.Profile.MonthlySpend)
	assert.Equal(t, 1430, resp.Profile.RewardPoints)
	assert.Equal(t, 100.0, resp.Progress.Percent)
	assert.Equal(t, 0.0, resp.Progress.Remaining)
	assert.True(t, resp.Progress.Unlocked)
	assert.Equal(t, loyalty.TierReward, resp.Progress.Reward)
}
