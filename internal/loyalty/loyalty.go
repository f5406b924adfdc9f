// Package loyalty computes checkout rewards and progress towards the monthly
// reward tier.
package loyalty

import (
	"fmt"
	"math"
	"time"

	"freshvegies/internal/cart"
	"freshvegies/internal/model"

	"github.com/google/uuid"
)

// PointsPerRupee is the spend needed to earn one reward point.
const PointsPerRupee = 10

// TierReward is the reward granted once the monthly spend reaches the threshold.
const TierReward = "Flat 10% off coupon on your next order"

// EarnedPoints returns the reward points earned for a checkout total. The
// result is never negative and saturates at math.MaxInt.
func EarnedPoints(total float64) int {
	if !(total > 0) {
		return 0
	}
	points := math.Floor(total / PointsPerRupee)
	if points >= math.MaxInt {
		return math.MaxInt
	}
	return int(points)
}

// addPoints adds earned to balance, saturating at math.MaxInt.
func addPoints(balance, earned int) int {
	if earned > math.MaxInt-balance {
		return math.MaxInt
	}
	return balance + earned
}

// Checkout settles the cart against the profile. The cart is emptied, and the
// returned receipt carries the updated profile. Checkout cannot fail.
func Checkout(c *cart.Cart, profile model.UserProfile) model.Receipt {
	lines := c.Lines()
	total := c.Total()
	earned := EarnedPoints(total)

	profile.RewardPoints = addPoints(profile.RewardPoints, earned)
	profile.MonthlySpend += total

	c.Clear()

	return model.Receipt{
		OrderID:      uuid.New(),
		Lines:        lines,
		Total:        total,
		EarnedPoints: earned,
		Profile:      profile,
		PlacedAt:     time.Now().UTC(),
		Message:      fmt.Sprintf("Order Placed! You earned %d reward points.", earned),
	}
}

// Progress reports how far monthlySpend is towards spendThreshold.
// A non-positive threshold is treated as already reached.
func Progress(monthlySpend, spendThreshold float64) model.LoyaltyProgress {
	if spendThreshold <= 0 {
		return model.LoyaltyProgress{Percent: 100, Remaining: 0, Unlocked: true, Reward: TierReward}
	}

	percent := math.Min(100, 100*monthlySpend/spendThreshold)
	if percent < 0 {
		percent = 0
	}
	remaining := math.Max(0, spendThreshold-monthlySpend)

	progress := model.LoyaltyProgress{
		Percent:   percent,
		Remaining: remaining,
		Unlocked:  remaining == 0,
	}
	if progress.Unlocked {
		progress.Reward = TierReward
	}

	return progress
}

// ProfileProgress is Progress for a profile.
func ProfileProgress(p model.UserProfile) model.LoyaltyProgress {
	return Progress(p.MonthlySpend, p.SpendThreshold)
}
