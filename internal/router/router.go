package router

import (
	"encoding/json"
	"net/http"

	"freshvegies/internal/handler"
	"freshvegies/internal/middleware"
	"freshvegies/internal/model"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Shop      *handler.ShopHandler
	Cart      *handler.CartHandler
	Account   *handler.AccountHandler
	Assistant *handler.AssistantHandler
	Session   *handler.SessionHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware in order: RequestID -> Recovery -> Logging -> CORS -> Session
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.Session(logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: "NOT_FOUND", Message: "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, model.ErrorResponse{
			Error:   model.ErrCodeMethodNotAllowed,
			Message: "method not allowed",
		})
	})

	// Health check endpoint (no session)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/shops", h.Shop.List)
		r.Get("/shops/{shopID}", h.Shop.Get)
		r.Get("/shops/{shopID}/products", h.Shop.Products)

		r.Get("/session", h.Session.Get)
		r.Post("/session/shop", h.Session.SelectShop)
		r.Delete("/session/shop", h.Session.Back)
		r.Put("/session/filters", h.Session.SetFilters)
		r.Put("/session/cart", h.Session.SetCartPanel)
		r.Put("/session/account", h.Session.SetAccountPanel)

		r.Get("/cart", h.Cart.Get)
		r.Post("/cart/items", h.Cart.AddItem)
		r.Patch("/cart/items/{productID}", h.Cart.UpdateItem)
		r.Delete("/cart/items/{productID}", h.Cart.RemoveItem)
		r.Post("/checkout", h.Cart.Checkout)

		r.Get("/account", h.Account.Get)
		r.Post("/assistant/suggestions", h.Assistant.Suggest)
	})

	return otelhttp.NewHandler(r, "freshvegies-api")
}

func writeJSON(w http.ResponseWriter, status int, v model.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
