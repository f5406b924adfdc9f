package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the catalogue tables.
const Schema = `
	CREATE TABLE IF NOT EXISTS shops (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		owner_name TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		image TEXT NOT NULL DEFAULT '',
		is_open BOOLEAN NOT NULL DEFAULT TRUE
	);

	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		shop_id TEXT NOT NULL REFERENCES shops(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
		unit TEXT NOT NULL DEFAULT '',
		is_fresh BOOLEAN NOT NULL DEFAULT FALSE,
		category TEXT NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		discount_price DOUBLE PRECISION CHECK (discount_price >= 0),
		description TEXT
	);

	CREATE TABLE IF NOT EXISTS shop_offers (
		id TEXT NOT NULL,
		shop_id TEXT NOT NULL REFERENCES shops(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		code TEXT NOT NULL,
		discount_percentage DOUBLE PRECISION NOT NULL DEFAULT 0,
		PRIMARY KEY (shop_id, id)
	);

	CREATE INDEX IF NOT EXISTS idx_products_shop_id ON products(shop_id, position);
	CREATE INDEX IF NOT EXISTS idx_shop_offers_shop_id ON shop_offers(shop_id, position);
`

// Migrate creates the catalogue schema if it does not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
