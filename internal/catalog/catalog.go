// Package catalog holds the read-only catalogue of partner shops and the
// filters used to browse it.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"freshvegies/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Source loads the full list of shops.
type Source interface {
	Load(ctx context.Context) ([]model.Shop, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]model.Shop, error)

// Load calls f.
func (f SourceFunc) Load(ctx context.Context) ([]model.Shop, error) {
	return f(ctx)
}

// ProductEntry is a product together with the shop that sells it.
type ProductEntry struct {
	Product model.Product
	Shop    *model.Shop
}

type snapshot struct {
	shops     []model.Shop
	byShop    map[string]*model.Shop
	byProduct map[string]ProductEntry
}

// Store serves an immutable snapshot of the catalogue. Reload swaps the
// snapshot; readers never observe a partially loaded catalogue.
type Store struct {
	source Source
	logger zerolog.Logger

	mu    sync.RWMutex
	snap  *snapshot
	group singleflight.Group
}

// NewStore creates a store and performs the initial load from source.
func NewStore(ctx context.Context, source Source, logger zerolog.Logger) (*Store, error) {
	s := &Store{
		source: source,
		logger: logger.With().Str("component", "catalog-store").Logger(),
		snap:   buildSnapshot(nil),
	}

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Reload loads the catalogue from the source and replaces the current snapshot.
// Concurrent calls share a single load.
func (s *Store) Reload(ctx context.Context) error {
	_, err, shared := s.group.Do("reload", func() (interface{}, error) {
		shops, err := s.source.Load(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to load catalogue")
			return nil, fmt.Errorf("failed to load catalogue: %w", err)
		}

		if err := Validate(shops); err != nil {
			s.logger.Error().Err(err).Msg("catalogue failed validation")
			return nil, fmt.Errorf("invalid catalogue: %w", err)
		}

		snap := buildSnapshot(shops)

		s.mu.Lock()
		s.snap = snap
		s.mu.Unlock()

		s.logger.Info().
			Int("shops", len(snap.shops)).
			Int("products", len(snap.byProduct)).
			Msg("catalogue loaded")

		return nil, nil
	})

	if shared {
		s.logger.Debug().Msg("catalogue reload shared with concurrent caller")
	}

	return err
}

// Shops returns all shops in catalogue order. The slice must not be modified.
func (s *Store) Shops() []model.Shop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.shops
}

// Shop returns the shop with the given id.
func (s *Store) Shop(id string) (model.Shop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shop, ok := s.snap.byShop[id]
	if !ok {
		return model.Shop{}, false
	}
	return *shop, true
}

// Product returns the product with the given id and the shop selling it.
func (s *Store) Product(id string) (ProductEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.snap.byProduct[id]
	return entry, ok
}

func buildSnapshot(shops []model.Shop) *snapshot {
	snap := &snapshot{
		shops:     shops,
		byShop:    make(map[string]*model.Shop, len(shops)),
		byProduct: make(map[string]ProductEntry),
	}

	for i := range snap.shops {
		shop := &snap.shops[i]
		snap.byShop[shop.ID] = shop
		for _, p := range shop.Products {
			snap.byProduct[p.ID] = ProductEntry{Product: p, Shop: shop}
		}
	}

	return snap
}

// Validate checks that a loaded catalogue is internally consistent.
func Validate(shops []model.Shop) error {
	shopIDs := make(map[string]struct{}, len(shops))
	productIDs := make(map[string]string)

	for i, shop := range shops {
		if shop.ID == "" {
			return fmt.Errorf("shop %d: id is required", i)
		}
		if shop.Name == "" {
			return fmt.Errorf("shop %s: name is required", shop.ID)
		}
		if _, dup := shopIDs[shop.ID]; dup {
			return fmt.Errorf("duplicate shop id %s", shop.ID)
		}
		shopIDs[shop.ID] = struct{}{}

		for j, p := range shop.Products {
			if p.ID == "" {
				return fmt.Errorf("shop %s product %d: id is required", shop.ID, j)
			}
			if other, dup := productIDs[p.ID]; dup {
				return fmt.Errorf("duplicate product id %s in shops %s and %s", p.ID, other, shop.ID)
			}
			productIDs[p.ID] = shop.ID

			if !p.Category.Valid() {
				return fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
			}
			if p.Price < 0 {
				return fmt.Errorf("product %s: price must not be negative", p.ID)
			}
			if p.DiscountPrice != nil && *p.DiscountPrice < 0 {
				return fmt.Errorf("product %s: discount price must not be negative", p.ID)
			}
		}
	}

	return nil
}
