package service

import (
	"context"
	"fmt"

	"freshvegies/internal/catalog"
	"freshvegies/internal/model"

	"github.com/rs/zerolog"
)

const noShopsMessage = "No shops found. Try adjusting your search terms."

// catalogService implements CatalogService.
type catalogService struct {
	catalog Catalog
	logger  zerolog.Logger
}

// NewCatalogService creates a new catalogue service.
func NewCatalogService(c Catalog, logger zerolog.Logger) CatalogService {
	return &catalogService{
		catalog: c,
		logger:  logger.With().Str("service", "catalog").Logger(),
	}
}

// ListShops returns the shops whose name or location contains query.
func (s *catalogService) ListShops(ctx context.Context, query string) *model.ShopListResponse {
	shops := catalog.FilterShops(s.catalog.Shops(), query)

	resp := &model.ShopListResponse{
		Shops: shops,
		Count: len(shops),
	}
	if len(shops) == 0 {
		resp.Message = noShopsMessage
	}

	s.logger.Debug().Str("query", query).Int("count", len(shops)).Msg("listed shops")
	return resp
}

// GetShop retrieves a single shop by ID.
func (s *catalogService) GetShop(ctx context.Context, id string) (*model.Shop, error) {
	shop, ok := s.catalog.Shop(id)
	if !ok {
		s.logger.Debug().Str("shop_id", id).Msg("shop not found")
		return nil, model.ErrShopNotFound
	}
	return &shop, nil
}

// ListProducts returns a shop's products filtered by category and name.
func (s *catalogService) ListProducts(ctx context.Context, shopID, category, query string) (*model.ProductListResponse, error) {
	cat, err := model.ParseCategory(category)
	if err != nil {
		s.logger.Warn().Str("category", category).Msg("invalid category filter")
		return nil, err
	}

	shop, ok := s.catalog.Shop(shopID)
	if !ok {
		return nil, model.ErrShopNotFound
	}

	products := catalog.FilterProducts(shop.Products, catalog.ProductFilter{Category: cat, Query: query})

	resp := &model.ProductListResponse{
		ShopID:   shop.ID,
		Category: cat,
		Products: products,
		Count:    len(products),
	}
	if len(products) == 0 {
		resp.Message = noProductsMessage(query, cat)
	}

	return resp, nil
}

func noProductsMessage(query string, category model.Category) string {
	term := query
	if term == "" {
		term = string(category)
	}
	return fmt.Sprintf("No products found for %q", term)
}
