package handler

import (
	"net/http"
	"strings"

	"freshvegies/internal/model"
	"freshvegies/internal/service"

	"github.com/rs/zerolog"
)

// SessionHandler handles view and selection HTTP requests.
type SessionHandler struct {
	service service.SessionService
	logger  zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(service service.SessionService, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		logger:  logger.With().Str("handler", "session").Logger(),
	}
}

// Get handles GET /api/session requests.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.service.State(r.Context(), sessionID(r)))
}

// SelectShop handles POST /api/session/shop requests.
func (h *SessionHandler) SelectShop(w http.ResponseWriter, r *http.Request) {
	var req model.SelectShopRequest
	if !decodeJSON(w, r, &req, false, h.logger) {
		return
	}

	shopID := strings.TrimSpace(req.ShopID)
	if shopID == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "shopId is required", h.logger)
		return
	}

	h.respond(w, r)(h.service.SelectShop(r.Context(), sessionID(r), shopID))
}

// Back handles DELETE /api/session/shop requests.
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r)(h.service.Back(r.Context(), sessionID(r)))
}

// SetFilters handles PUT /api/session/filters requests.
func (h *SessionHandler) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req model.FiltersRequest
	if !decodeJSON(w, r, &req, false, h.logger) {
		return
	}

	h.respond(w, r)(h.service.SetFilters(r.Context(), sessionID(r), &req))
}

// SetCartPanel handles PUT /api/session/cart requests.
func (h *SessionHandler) SetCartPanel(w http.ResponseWriter, r *http.Request) {
	var req model.PanelRequest
	if !decodeJSON(w, r, &req, false, h.logger) {
		return
	}

	h.respond(w, r)(h.service.SetCartOpen(r.Context(), sessionID(r), req.Open))
}

// SetAccountPanel handles PUT /api/session/account requests.
func (h *SessionHandler) SetAccountPanel(w http.ResponseWriter, r *http.Request) {
	var req model.PanelRequest
	if !decodeJSON(w, r, &req, false, h.logger) {
		return
	}

	h.respond(w, r)(h.service.SetAccountOpen(r.Context(), sessionID(r), req.Open))
}

func (h *SessionHandler) respond(w http.ResponseWriter, r *http.Request) func(*model.SessionState, error) {
	return func(state *model.SessionState, err error) {
		if err != nil {
			writeServiceError(w, r, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, state)
	}
}
