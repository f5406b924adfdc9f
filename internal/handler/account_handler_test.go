package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freshvegies/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountHandler_Get(t *testing.T) {
	account := new(MockAccountService)
	account.On("Account", mock.Anything, testSessionID).Return(&model.AccountResponse{
		Profile:  model.UserProfile{Name: "Rahul Sharma", RewardPoints: 1250, MonthlySpend: 3400, SpendThreshold: 5000},
		Progress: model.LoyaltyProgress{Percent: 68, Remaining: 1600},
	}, nil)
	h := NewAccountHandler(account, zerolog.Nop())

	w := httptest.NewRecorder()
	h.Get(w, newRequest(http.MethodGet, "/api/account", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 68.0, resp.Progress.Percent)
	assert.Equal(t, 1600.0, resp.Progress.Remaining)
	account.AssertExpectations(t)
}
