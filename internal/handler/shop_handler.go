package handler

import (
	"net/http"

	"freshvegies/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ShopHandler handles catalogue HTTP requests.
type ShopHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewShopHandler creates a new shop handler.
func NewShopHandler(service service.CatalogService, logger zerolog.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		logger:  logger.With().Str("handler", "shop").Logger(),
	}
}

// List handles GET /api/shops?q= requests.
func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	resp := h.service.ListShops(r.Context(), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/shops/{shopID} requests.
func (h *ShopHandler) Get(w http.ResponseWriter, r *http.Request) {
	shop, err := h.service.GetShop(r.Context(), chi.URLParam(r, "shopID"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, shop)
}

// Products handles GET /api/shops/{shopID}/products?category=&q= requests.
func (h *ShopHandler) Products(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	resp, err := h.service.ListProducts(r.Context(), chi.URLParam(r, "shopID"), query.Get("category"), query.Get("q"))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
