package service

import (
	"context"
	"testing"

	"freshvegies/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListShops(t *testing.T) {
	svc := NewCatalogService(newTestCatalog(t), zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name        string
		query       string
		wantIDs     []string
		wantMessage bool
	}{
		{"empty query returns all", "", []string{"s1", "s2", "s3"}, false},
		{"location match ignores case", "andheri", []string{"s3"}, false},
		{"name match", "ORGANICS", []string{"s2"}, false},
		{"no match", "kolkata", []string{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := svc.ListShops(ctx, tt.query)

			ids := make([]string, 0, len(resp.Shops))
			for _, s := range resp.Shops {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), resp.Count)
			if tt.wantMessage {
				assert.Equal(t, noShopsMessage, resp.Message)
			} else {
				assert.Empty(t, resp.Message)
			}
		})
	}
}

func TestCatalogService_GetShop(t *testing.T) {
	svc := NewCatalogService(newTestCatalog(t), zerolog.Nop())
	ctx := context.Background()

	shop, err := svc.GetShop(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, "Green Farm Organics", shop.Name)
	assert.Len(t, shop.Products, 6)

	_, err = svc.GetShop(ctx, "s9")
	assert.ErrorIs(t, err, model.ErrShopNotFound)
}

func TestCatalogService_ListProducts(t *testing.T) {
	svc := NewCatalogService(newTestCatalog(t), zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name     string
		shopID   string
		category string
		query    string
		wantIDs  []string
		wantErr  error
		wantMsg  string
	}{
		{name: "all products", shopID: "s1", wantIDs: []string{"p1-s1", "p2-s1", "p3-s1", "p4-s1", "p5-s1", "p6-s1"}},
		{name: "category and query", shopID: "s1", category: "Root Vegetables", query: "pot", wantIDs: []string{"p4-s1"}},
		{name: "query outside category", shopID: "s1", category: "Fruits", query: "pot", wantIDs: []string{}, wantMsg: `No products found for "pot"`},
		{name: "empty category", shopID: "s2", category: "Exotic", query: "", wantIDs: []string{"p5-s2"}},
		{name: "fruits only", shopID: "s2", category: "Fruits", query: "", wantIDs: []string{"p3-s2"}},
		{name: "invalid category", shopID: "s1", category: "Dairy", wantErr: model.ErrInvalidCategory},
		{name: "unknown shop", shopID: "s9", wantErr: model.ErrShopNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ListProducts(ctx, tt.shopID, tt.category, tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			ids := make([]string, 0, len(resp.Products))
			for _, p := range resp.Products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), resp.Count)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestNoProductsMessage(t *testing.T) {
	assert.Equal(t, `No products found for "kale"`, noProductsMessage("kale", model.CategoryLeafy))
	assert.Equal(t, `No products found for "Exotic"`, noProductsMessage("", model.CategoryExotic))
}
