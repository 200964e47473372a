// Package postgres stores residents, products and purchases in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS residents (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		phase      TEXT NOT NULL,
		block      TEXT NOT NULL,
		lot        TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		color      TEXT NOT NULL,
		amount     NUMERIC(12,2) NOT NULL,
		active     BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id                TEXT PRIMARY KEY,
		resident_id       TEXT NOT NULL REFERENCES residents(id) ON DELETE CASCADE,
		product_id        TEXT REFERENCES products(id) ON DELETE SET NULL,
		amount_paid       NUMERIC(12,2) NOT NULL,
		driver_name       TEXT NOT NULL,
		driver_license    TEXT,
		company           TEXT,
		contact_number    TEXT,
		sticker_number    TEXT NOT NULL,
		plate_number      TEXT NOT NULL,
		af_number         TEXT NOT NULL,
		penalty           BOOLEAN NOT NULL DEFAULT FALSE,
		type              TEXT NOT NULL,
		payment_method    TEXT NOT NULL DEFAULT 'cash',
		payment_reference TEXT NOT NULL DEFAULT '',
		purchase_date     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS purchases_resident_id_idx ON purchases (resident_id)`,
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
