package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ridoy/smartstock/internal/model"
)

// CreateProduct creates a product with zero stock.
func CreateProduct(ctx context.Context, db *sql.DB, name string) (*model.Product, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO products (id, name, total_stock, created_at) VALUES (?, ?, 0, ?)`,
		id, name, time.Now().UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	return GetProduct(ctx, db, id)
}

// GetProduct returns a product by ID, or nil if it doesn't exist.
func GetProduct(ctx context.Context, db *sql.DB, id string) (*model.Product, error) {
	p := &model.Product{}
	var createdAt int64
	err := db.QueryRowContext(ctx,
		`SELECT id, name, total_stock, created_at FROM products WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.TotalStock, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	p.CreatedAt = time.UnixMilli(createdAt)
	return p, nil
}

// ListProducts returns all products, newest first.
func ListProducts(ctx context.Context, db *sql.DB) ([]model.Product, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, total_stock, created_at FROM products ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		var createdAt int64
		if err := rows.Scan(&p.ID, &p.Name, &p.TotalStock, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		p.CreatedAt = time.UnixMilli(createdAt)
		products = append(products, p)
	}
	return products, rows.Err()
}

// RenameProduct updates a product's name.
func RenameProduct(ctx context.Context, db *sql.DB, id, name string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE products SET name = ? WHERE id = ?`, name, id,
	)
	if err != nil {
		return fmt.Errorf("renaming product: %w", err)
	}
	return nil
}

// DeleteProduct removes a product and all transactions referencing it
// in a single database transaction. Log entries are intentionally left
// behind; they expire on their own.
func DeleteProduct(ctx context.Context, db *sql.DB, id string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions WHERE product_id = ?`, id); err != nil {
		return fmt.Errorf("deleting product transactions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing product delete: %w", err)
	}
	return nil
}
