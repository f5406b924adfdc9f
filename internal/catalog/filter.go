package catalog

import (
	"strings"

	"freshvegies/internal/model"
)

// ProductFilter narrows the products of a shop. Both conditions must hold.
type ProductFilter struct {
	Category model.Category
	Query    string
}

// FilterShops returns the shops whose name or location contains query,
// ignoring case. An empty query matches every shop.
func FilterShops(shops []model.Shop, query string) []model.Shop {
	q := normalise(query)

	result := make([]model.Shop, 0, len(shops))
	for _, shop := range shops {
		if q == "" ||
			strings.Contains(strings.ToLower(shop.Name), q) ||
			strings.Contains(strings.ToLower(shop.Location), q) {
			result = append(result, shop)
		}
	}

	return result
}

// FilterProducts returns the products matching both the category and the
// case-insensitive name query.
func FilterProducts(products []model.Product, f ProductFilter) []model.Product {
	q := normalise(f.Query)

	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !f.matchesCategory(p.Category) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		result = append(result, p)
	}

	return result
}

func (f ProductFilter) matchesCategory(c model.Category) bool {
	return f.Category == "" || f.Category == model.CategoryAll || f.Category == c
}

func normalise(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
