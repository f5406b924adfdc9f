package model

// ViewState is the screen currently shown to the shopper.
type ViewState string

const (
	ViewHome       ViewState = "HOME"
	ViewShopDetail ViewState = "SHOP_DETAIL"
)

// ShopListResponse is the catalogue screen payload.
type ShopListResponse struct {
	Shops   []Shop `json:"shops"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

// ProductListResponse is the shop detail product grid payload.
type ProductListResponse struct {
	ShopID   string    `json:"shopId"`
	Category Category  `json:"category"`
	Products []Product `json:"products"`
	Count    int       `json:"count"`
	Message  string    `json:"message,omitempty"`
}

// SelectShopRequest selects a shop to view.
type SelectShopRequest struct {
	ShopID string `json:"shopId"`
}

// FiltersRequest updates the search and category filters of a session.
// Nil fields are left unchanged.
type FiltersRequest struct {
	ShopQuery    *string `json:"shopQuery,omitempty"`
	Category     *string `json:"category,omitempty"`
	ProductQuery *string `json:"productQuery,omitempty"`
}

// PanelRequest opens or closes the cart drawer or account modal.
type PanelRequest struct {
	Open bool `json:"open"`
}

// SuggestionRequest asks the recipe assistant for an idea.
type SuggestionRequest struct {
	Query string `json:"query"`
}

// SuggestionResponse carries the assistant's answer.
type SuggestionResponse struct {
	ShopID     string `json:"shopId"`
	Suggestion string `json:"suggestion"`
}

// SessionState is the view and selection state of a shopper.
type SessionState struct {
	SessionID         string    `json:"sessionId"`
	View              ViewState `json:"view"`
	SelectedShopID    string    `json:"selectedShopId,omitempty"`
	ShopQuery         string    `json:"shopQuery"`
	ProductCategory   Category  `json:"productCategory"`
	ProductQuery      string    `json:"productQuery"`
	CartOpen          bool      `json:"cartOpen"`
	AccountOpen       bool      `json:"accountOpen"`
	CartCount         int       `json:"cartCount"`
	AssistantResponse string    `json:"assistantResponse,omitempty"`
	AssistantPending  bool      `json:"assistantPending"`
}
