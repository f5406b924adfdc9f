package model

// CartLine is one product in the cart together with its quantity and origin shop.
type CartLine struct {
	Product
	Quantity int    `json:"quantity"`
	ShopName string `json:"shopName"`
}

// LineTotal returns the effective price multiplied by the quantity.
func (l CartLine) LineTotal() float64 {
	return l.EffectivePrice() * float64(l.Quantity)
}

// CartView is the cart as presented to clients.
type CartView struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
	Count int        `json:"count"`
}

// AddItemRequest is the payload for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"productId"`
}

// UpdateQuantityRequest is the payload for adjusting a cart line.
type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}
