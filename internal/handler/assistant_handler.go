package handler

import (
	"net/http"

	"freshvegies/internal/model"
	"freshvegies/internal/service"

	"github.com/rs/zerolog"
)

// AssistantHandler handles recipe suggestion HTTP requests.
type AssistantHandler struct {
	service service.AssistantService
	logger  zerolog.Logger
}

// NewAssistantHandler creates a new assistant handler.
func NewAssistantHandler(service service.AssistantService, logger zerolog.Logger) *AssistantHandler {
	return &AssistantHandler{
		service: service,
		logger:  logger.With().Str("handler", "assistant").Logger(),
	}
}

// Suggest handles POST /api/assistant/suggestions requests. The body is optional.
func (h *AssistantHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req model.SuggestionRequest
	if !decodeJSON(w, r, &req, true, h.logger) {
		return
	}

	resp, err := h.service.Suggest(r.Context(), sessionID(r), req.Query)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
