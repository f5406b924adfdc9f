package repository

import (
	"context"
	"errors"
	"fmt"

	"freshvegies/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// shopRepository implements the ShopRepository interface using PostgreSQL.
type shopRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewShopRepository creates a new PostgreSQL-backed shop repository.
func NewShopRepository(pool *pgxpool.Pool, logger zerolog.Logger) ShopRepository {
	return &shopRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "shop").Logger(),
	}
}

// GetAll retrieves every shop with its products and offers, ordered by shop id.
func (r *shopRepository) GetAll(ctx context.Context) ([]model.Shop, error) {
	query := `
		SELECT id, name, owner_name, phone, location, rating, image, is_open
		FROM shops
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query shops")
		return nil, fmt.Errorf("failed to query shops: %w", err)
	}
	defer rows.Close()

	shops := []model.Shop{}
	for rows.Next() {
		s, err := scanShop(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan shop row")
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating shop rows")
		return nil, fmt.Errorf("error iterating shops: %w", err)
	}

	if err := r.attachChildren(ctx, shops, ""); err != nil {
		return nil, err
	}

	r.logger.Debug().Int("count", len(shops)).Msg("retrieved shops")

	return shops, nil
}

// GetByID retrieves a single shop with its products and offers.
func (r *shopRepository) GetByID(ctx context.Context, id string) (*model.Shop, error) {
	query := `
		SELECT id, name, owner_name, phone, location, rating, image, is_open
		FROM shops
		WHERE id = $1
	`

	s, err := scanShop(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("shop_id", id).Msg("shop not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("shop_id", id).Msg("failed to query shop")
		return nil, fmt.Errorf("failed to query shop: %w", err)
	}

	shops := []model.Shop{s}
	if err := r.attachChildren(ctx, shops, id); err != nil {
		return nil, err
	}

	return &shops[0], nil
}

// Load satisfies catalog.Source.
func (r *shopRepository) Load(ctx context.Context) ([]model.Shop, error) {
	return r.GetAll(ctx)
}

// Import replaces the stored catalogue with shops in a single transaction.
func (r *shopRepository) Import(ctx context.Context, shops []model.Shop) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				r.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM shops`); err != nil {
		r.logger.Error().Err(err).Msg("failed to clear shops")
		return fmt.Errorf("failed to clear shops: %w", err)
	}

	batch := &pgx.Batch{}
	queued := 0
	for _, s := range shops {
		batch.Queue(`
			INSERT INTO shops (id, name, owner_name, phone, location, rating, image, is_open)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, s.ID, s.Name, s.OwnerName, s.Phone, s.Location, s.Rating, s.Image, s.IsOpen)
		queued++

		for i, p := range s.Products {
			batch.Queue(`
				INSERT INTO products (id, shop_id, position, name, price, unit, is_fresh, category, image, discount_price, description)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			`, p.ID, s.ID, i, p.Name, p.Price, p.Unit, p.IsFresh, string(p.Category), p.Image, p.DiscountPrice, p.Description)
			queued++
		}

		for i, o := range s.Offers {
			batch.Queue(`
				INSERT INTO shop_offers (id, shop_id, position, title, description, code, discount_percentage)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, o.ID, s.ID, i, o.Title, o.Description, o.Code, o.DiscountPercentage)
			queued++
		}
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < queued; i++ {
		if _, err = results.Exec(); err != nil {
			_ = results.Close()
			r.logger.Error().Err(err).Int("statement", i).Msg("failed to import catalogue row")
			return fmt.Errorf("failed to import catalogue: %w", err)
		}
	}
	if err = results.Close(); err != nil {
		return fmt.Errorf("failed to import catalogue: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to import catalogue: %w", err)
	}

	r.logger.Info().Int("shops", len(shops)).Msg("catalogue imported")

	return nil
}

// attachChildren loads products and offers for shops. When shopID is set only
// that shop's rows are queried.
func (r *shopRepository) attachChildren(ctx context.Context, shops []model.Shop, shopID string) error {
	index := make(map[string]*model.Shop, len(shops))
	for i := range shops {
		shops[i].Products = []model.Product{}
		shops[i].Offers = []model.ShopOffer{}
		index[shops[i].ID] = &shops[i]
	}

	productQuery := `
		SELECT shop_id, id, name, price, unit, is_fresh, category, image, discount_price, description
		FROM products
		WHERE $1 = '' OR shop_id = $1
		ORDER BY shop_id, position
	`

	rows, err := r.pool.Query(ctx, productQuery, shopID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			owner    string
			category string
			p        model.Product
		)
		err := rows.Scan(&owner, &p.ID, &p.Name, &p.Price, &p.Unit, &p.IsFresh, &category, &p.Image, &p.DiscountPrice, &p.Description)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return fmt.Errorf("failed to scan product: %w", err)
		}
		p.Category = model.Category(category)
		if s, ok := index[owner]; ok {
			s.Products = append(s.Products, p)
		}
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return fmt.Errorf("error iterating products: %w", err)
	}

	offerQuery := `
		SELECT shop_id, id, title, description, code, discount_percentage
		FROM shop_offers
		WHERE $1 = '' OR shop_id = $1
		ORDER BY shop_id, position
	`

	offerRows, err := r.pool.Query(ctx, offerQuery, shopID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query offers")
		return fmt.Errorf("failed to query offers: %w", err)
	}
	defer offerRows.Close()

	for offerRows.Next() {
		var (
			owner string
			o     model.ShopOffer
		)
		if err := offerRows.Scan(&owner, &o.ID, &o.Title, &o.Description, &o.Code, &o.DiscountPercentage); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan offer row")
			return fmt.Errorf("failed to scan offer: %w", err)
		}
		if s, ok := index[owner]; ok {
			s.Offers = append(s.Offers, o)
		}
	}

	if err := offerRows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating offer rows")
		return fmt.Errorf("error iterating offers: %w", err)
	}

	return nil
}

func scanShop(row pgx.Row) (model.Shop, error) {
	var s model.Shop
	err := row.Scan(&s.ID, &s.Name, &s.OwnerName, &s.Phone, &s.Location, &s.Rating, &s.Image, &s.IsOpen)
	return s, err
}
