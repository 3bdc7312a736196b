package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Timestamps are stored as Unix
// milliseconds so range queries compare numerically regardless of the
// server's timezone or DST offset.
//
// logs deliberately has no foreign key to products: log entries are a
// historical audit trail that outlives product deletion, and they are
// removed by the TTL sweeper instead of a cascade.
const schema = `
CREATE TABLE IF NOT EXISTS products (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    total_stock INTEGER NOT NULL DEFAULT 0 CHECK (total_stock >= 0),
    created_at  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    id         TEXT PRIMARY KEY,
    product_id TEXT NOT NULL REFERENCES products(id),
    type       TEXT NOT NULL CHECK (type IN ('IN', 'OUT', 'RESTOCK', 'RETURN')),
    quantity   INTEGER NOT NULL CHECK (quantity > 0),
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at);
CREATE INDEX IF NOT EXISTS idx_transactions_product ON transactions(product_id);

CREATE TABLE IF NOT EXISTS logs (
    id         TEXT PRIMARY KEY,
    product_id TEXT NOT NULL,
    event      TEXT NOT NULL CHECK (event IN ('STOCKED', 'OUT_OF_STOCK', 'REFUNDED')),
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at);
CREATE INDEX IF NOT EXISTS idx_logs_product ON logs(product_id);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at
// the end.
var migrations = []string{}

// Migrate creates the schema and applies all migrations. Safe to call
// on every startup.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("applying migration %d: %w", i+1, err)
		}
	}
	return nil
}
