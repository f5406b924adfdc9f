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

func TestAssistantHandler_Suggest(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		query          string
		mockReturn     *model.SuggestionResponse
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "With query",
			body:           `{"query": "quick dinner"}`,
			query:          "quick dinner",
			mockReturn:     &model.SuggestionResponse{ShopID: "s1", Suggestion: "Aloo palak."},
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Empty body uses default query",
			body:           "",
			query:          "",
			mockReturn:     &model.SuggestionResponse{ShopID: "s1", Suggestion: "Sambar."},
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "No shop selected",
			body:           `{}`,
			query:          "",
			mockError:      model.ErrShopNotSelected,
			expectService:  true,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Invalid JSON",
			body:           `{"query":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assistant := new(MockAssistantService)
			if tt.expectService {
				if tt.mockError != nil {
					assistant.On("Suggest", mock.Anything, testSessionID, tt.query).Return(nil, tt.mockError)
				} else {
					assistant.On("Suggest", mock.Anything, testSessionID, tt.query).Return(tt.mockReturn, nil)
				}
			}
			h := NewAssistantHandler(assistant, zerolog.Nop())

			w := httptest.NewRecorder()
			h.Suggest(w, newRequest(http.MethodPost, "/api/assistant/suggestions", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.mockReturn != nil {
				var resp model.SuggestionResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.mockReturn.Suggestion, resp.Suggestion)
			}
			if tt.mockError == model.ErrShopNotSelected {
				assert.Equal(t, "Please select a shop first to use the AI assistant for ingredients", decodeError(t, w).Message)
			}
			assistant.AssertExpectations(t)
		})
	}
}
