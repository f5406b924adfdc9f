package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile is the shopper's account with loyalty state.
type UserProfile struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	RewardPoints   int     `json:"rewardPoints"`
	MonthlySpend   float64 `json:"monthlySpend"`
	SpendThreshold float64 `json:"spendThreshold"`
}

// LoyaltyProgress describes how far the monthly spend is from the next reward tier.
type LoyaltyProgress struct {
	Percent   float64 `json:"percent"`
	Remaining float64 `json:"remaining"`
	Unlocked  bool    `json:"unlocked"`
	Reward    string  `json:"reward,omitempty"`
}

// AccountResponse is the account screen payload.
type AccountResponse struct {
	Profile  UserProfile     `json:"profile"`
	Progress LoyaltyProgress `json:"progress"`
}

// Receipt is the result of a checkout.
type Receipt struct {
	OrderID      uuid.UUID   `json:"orderId"`
	Lines        []CartLine  `json:"lines"`
	Total        float64     `json:"total"`
	EarnedPoints int         `json:"earnedPoints"`
	Profile      UserProfile `json:"profile"`
	PlacedAt     time.Time   `json:"placedAt"`
	Message      string      `json:"message"`
}
