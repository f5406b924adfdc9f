package service

import (
	"context"

	"freshvegies/internal/catalog"
	"freshvegies/internal/model"
	"freshvegies/internal/session"
)

// CatalogService defines read operations over shops and products.
type CatalogService interface {
	// ListShops returns the shops whose name or location contains query.
	ListShops(ctx context.Context, query string) *model.ShopListResponse

	// GetShop retrieves a single shop by ID.
	GetShop(ctx context.Context, id string) (*model.Shop, error)

	// ListProducts returns a shop's products filtered by category and name.
	ListProducts(ctx context.Context, shopID, category, query string) (*model.ProductListResponse, error)
}

// CartService defines operations on a session's cart.
type CartService interface {
	// Get returns the cart contents with total and item count.
	Get(ctx context.Context, sessionID string) (*model.CartView, error)

	// Add adds one unit of a catalogue product and opens the cart drawer.
	Add(ctx context.Context, sessionID, productID string) (*model.CartView, error)

	// Remove deletes a line. Unknown products are ignored.
	Remove(ctx context.Context, sessionID, productID string) (*model.CartView, error)

	// UpdateQuantity changes a line's quantity by delta, never below one.
	UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) (*model.CartView, error)
}

// CheckoutService settles carts.
type CheckoutService interface {
	// Checkout awards points for the cart total, updates the profile and empties the cart.
	Checkout(ctx context.Context, sessionID string) (*model.Receipt, error)
}

// AccountService exposes the shopper's profile.
type AccountService interface {
	// Account returns the profile with loyalty progress.
	Account(ctx context.Context, sessionID string) (*model.AccountResponse, error)
}

// SessionService drives the view and selection state.
type SessionService interface {
	State(ctx context.Context, sessionID string) (*model.SessionState, error)
	SelectShop(ctx context.Context, sessionID, shopID string) (*model.SessionState, error)
	Back(ctx context.Context, sessionID string) (*model.SessionState, error)
	SetFilters(ctx context.Context, sessionID string, req *model.FiltersRequest) (*model.SessionState, error)
	SetCartOpen(ctx context.Context, sessionID string, open bool) (*model.SessionState, error)
	SetAccountOpen(ctx context.Context, sessionID string, open bool) (*model.SessionState, error)
}

// AssistantService asks the recipe assistant about the selected shop.
type AssistantService interface {
	// Suggest returns a recipe idea for the selected shop's products.
	Suggest(ctx context.Context, sessionID, query string) (*model.SuggestionResponse, error)
}

// Catalog is the catalogue lookup used by services.
type Catalog interface {
	Shops() []model.Shop
	Shop(id string) (model.Shop, bool)
	Product(id string) (catalog.ProductEntry, bool)
}

// Sessions loads and updates shopper sessions.
type Sessions interface {
	Get(ctx context.Context, id string) (*session.Session, error)
	Update(ctx context.Context, id string, fn func(s *session.Session) error) (*session.Session, error)
}

// Suggester produces recipe suggestions. It always returns text.
type Suggester interface {
	Suggest(ctx context.Context, itemNames []string, query string) string
}

func stateOf(s *session.Session) *model.SessionState {
	return &model.SessionState{
		SessionID:         s.ID,
		View:              s.View,
		SelectedShopID:    s.SelectedShopID,
		ShopQuery:         s.ShopQuery,
		ProductCategory:   s.ProductCategory,
		ProductQuery:      s.ProductQuery,
		CartOpen:          s.CartOpen,
		AccountOpen:       s.AccountOpen,
		CartCount:         s.Cart.Count(),
		AssistantResponse: s.AssistantResponse,
		AssistantPending:  s.AssistantPending,
	}
}
