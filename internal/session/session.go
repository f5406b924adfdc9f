// Package session keeps the per-shopper state: which screen is shown, the
// active filters, the cart, the profile and the assistant's last answer.
package session

import (
	"time"

	"freshvegies/internal/cart"
	"freshvegies/internal/model"
)

// Session is the complete state of one shopper.
type Session struct {
	ID              string            `json:"id"`
	View            model.ViewState   `json:"view"`
	SelectedShopID  string            `json:"selectedShopId,omitempty"`
	ShopQuery       string            `json:"shopQuery"`
	ProductCategory model.Category    `json:"productCategory"`
	ProductQuery    string            `json:"productQuery"`
	CartOpen        bool              `json:"cartOpen"`
	AccountOpen     bool              `json:"accountOpen"`
	Cart            *cart.Cart        `json:"cart"`
	Profile         model.UserProfile `json:"profile"`

	AssistantResponse string `json:"assistantResponse,omitempty"`
	AssistantPending  bool   `json:"assistantPending"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New creates a session on the catalogue screen with an empty cart.
func New(id string, profile model.UserProfile) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:              id,
		View:            model.ViewHome,
		ProductCategory: model.CategoryAll,
		Cart:            cart.New(),
		Profile:         profile,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// SelectShop switches to the shop detail screen. Product filters and the
// assistant answer belong to a shop and are reset.
func (s *Session) SelectShop(shopID string) {
	s.View = model.ViewShopDetail
	s.SelectedShopID = shopID
	s.ProductCategory = model.CategoryAll
	s.ProductQuery = ""
	s.AssistantResponse = ""
}

// Back returns to the catalogue screen.
func (s *Session) Back() {
	s.View = model.ViewHome
	s.SelectedShopID = ""
	s.ProductCategory = model.CategoryAll
	s.ProductQuery = ""
	s.AssistantResponse = ""
}

// SetShopQuery sets the catalogue search text.
func (s *Session) SetShopQuery(query string) {
	s.ShopQuery = query
}

// SetProductFilter sets the category and name filters of the shop detail screen.
func (s *Session) SetProductFilter(category model.Category, query string) {
	s.ProductCategory = category
	s.ProductQuery = query
}

// SetCartOpen opens or closes the cart drawer.
func (s *Session) SetCartOpen(open bool) {
	s.CartOpen = open
}

// SetAccountOpen opens or closes the account modal.
func (s *Session) SetAccountOpen(open bool) {
	s.AccountOpen = open
}

// BeginSuggestion marks an assistant request as in flight.
func (s *Session) BeginSuggestion() {
	s.AssistantPending = true
}

// CompleteSuggestion stores the assistant's answer. The last answer to arrive wins.
func (s *Session) CompleteSuggestion(text string) {
	s.AssistantPending = false
	s.AssistantResponse = text
}

// ensureCart gives sessions decoded without a cart an empty one.
func (s *Session) ensureCart() {
	if s.Cart == nil {
		s.Cart = cart.New()
	}
}
