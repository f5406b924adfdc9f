package handler

import (
	"net/http"

	"freshvegies/internal/service"

	"github.com/rs/zerolog"
)

// AccountHandler handles profile HTTP requests.
type AccountHandler struct {
	service service.AccountService
	logger  zerolog.Logger
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(service service.AccountService, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		logger:  logger.With().Str("handler", "account").Logger(),
	}
}

// Get handles GET /api/account requests.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Account(r.Context(), sessionID(r))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
