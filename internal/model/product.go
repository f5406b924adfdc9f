package model

import "strings"

// Category groups products in a shop's catalogue.
type Category string

// Product categories.
const (
	CategoryFruits     Category = "Fruits"
	CategoryVegetables Category = "Vegetables"
	CategoryLeafy      Category = "Leafy Greens"
	CategoryRoots      Category = "Root Vegetables"
	CategoryExotic     Category = "Exotic"

	// CategoryAll matches every category when filtering.
	CategoryAll Category = "All"
)

// Categories lists the product categories in display order.
var Categories = []Category{
	CategoryFruits,
	CategoryVegetables,
	CategoryLeafy,
	CategoryRoots,
	CategoryExotic,
}

// Valid reports whether c is one of the fixed product categories.
// The wildcard is not a valid product category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a filter value into a Category.
// An empty value is the wildcard.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll, nil
	}
	c := Category(s)
	if !c.Valid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Product represents a vegetable or fruit sold by a shop.
type Product struct {
	ID            string   `json:"id" yaml:"id" db:"id"`
	Name          string   `json:"name" yaml:"name" db:"name"`
	Price         float64  `json:"price" yaml:"price" db:"price"`
	Unit          string   `json:"unit" yaml:"unit" db:"unit"`
	IsFresh       bool     `json:"isFresh" yaml:"isFresh" db:"is_fresh"`
	Category      Category `json:"category" yaml:"category" db:"category"`
	Image         string   `json:"image" yaml:"image" db:"image"`
	DiscountPrice *float64 `json:"discountPrice,omitempty" yaml:"discountPrice,omitempty" db:"discount_price"`
	Description   *string  `json:"description,omitempty" yaml:"description,omitempty" db:"description"`
}

// EffectivePrice returns the discounted price when set, otherwise the base price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// ShopOffer is a promotional offer advertised by a shop.
type ShopOffer struct {
	ID                 string  `json:"id" yaml:"id" db:"id"`
	Title              string  `json:"title" yaml:"title" db:"title"`
	Description        string  `json:"description" yaml:"description" db:"description"`
	Code               string  `json:"code" yaml:"code" db:"code"`
	DiscountPercentage float64 `json:"discountPercentage" yaml:"discountPercentage" db:"discount_percentage"`
}

// Shop is a local partner shop with its products and offers.
type Shop struct {
	ID        string      `json:"id" yaml:"id" db:"id"`
	Name      string      `json:"name" yaml:"name" db:"name"`
	OwnerName string      `json:"ownerName" yaml:"ownerName" db:"owner_name"`
	Phone     string      `json:"phone" yaml:"phone" db:"phone"`
	Location  string      `json:"location" yaml:"location" db:"location"`
	Rating    float64     `json:"rating" yaml:"rating" db:"rating"`
	Image     string      `json:"image" yaml:"image" db:"image"`
	IsOpen    bool        `json:"isOpen" yaml:"isOpen" db:"is_open"`
	Products  []Product   `json:"products" yaml:"products"`
	Offers    []ShopOffer `json:"offers" yaml:"offers"`
}

// ProductNames returns the names of the shop's products in catalogue order.
func (s Shop) ProductNames() []string {
	names := make([]string, len(s.Products))
	for i, p := range s.Products {
		names[i] = p.Name
	}
	return names
}

// Float64 returns a pointer to v. Handy for optional prices.
func Float64(v float64) *float64 {
	return &v
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}
