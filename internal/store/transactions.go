package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ridoy/smartstock/internal/model"
)

// ApplyTransaction records a stock movement and applies its effect to
// the product's stock in a single database transaction, so concurrent
// recordings against the same product cannot read a stale stock level.
// The stored quantity is the requested amount, not the clamped effect.
// Returns the created transaction and the updated product.
func ApplyTransaction(ctx context.Context, db *sql.DB, productID, txType string, quantity int) (*model.Transaction, *model.Product, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	p := &model.Product{}
	var productCreatedAt int64
	err = tx.QueryRowContext(ctx,
		`SELECT id, name, total_stock, created_at FROM products WHERE id = ?`, productID,
	).Scan(&p.ID, &p.Name, &p.TotalStock, &productCreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil, fmt.Errorf("product %s does not exist", productID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading product stock: %w", err)
	}
	p.CreatedAt = time.UnixMilli(productCreatedAt)

	now := time.Now()
	rec := &model.Transaction{
		ID:        uuid.NewString(),
		ProductID: productID,
		Type:      txType,
		Quantity:  quantity,
		CreatedAt: now,
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (id, product_id, type, quantity, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.ProductID, rec.Type, rec.Quantity, now.UnixMilli(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("recording transaction: %w", err)
	}

	newStock := model.NextStock(p.TotalStock, txType, quantity)
	if _, err := tx.ExecContext(ctx,
		`UPDATE products SET total_stock = ? WHERE id = ?`, newStock, productID,
	); err != nil {
		return nil, nil, fmt.Errorf("updating product stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("committing transaction: %w", err)
	}

	p.TotalStock = newStock
	return rec, p, nil
}

// ListTransactionsBetween returns all transactions created within
// [from, to], inclusive on both ends, oldest first.
func ListTransactionsBetween(ctx context.Context, db *sql.DB, from, to time.Time) ([]model.Transaction, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, product_id, type, quantity, created_at FROM transactions
		 WHERE created_at >= ? AND created_at <= ? ORDER BY created_at, id`,
		from.UnixMilli(), to.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// SumTransactionTotals sums transaction quantities per type for each of
// the given products, limited to the optional [from, to] window. The
// result map only has entries for products with at least one matching
// transaction.
func SumTransactionTotals(ctx context.Context, db *sql.DB, productIDs []string, from, to *time.Time) (map[string]model.TypeTotals, error) {
	totals := make(map[string]model.TypeTotals)
	if len(productIDs) == 0 {
		return totals, nil
	}

	query := `SELECT product_id, type, COALESCE(SUM(quantity), 0) FROM transactions
	          WHERE product_id IN (` + placeholders(len(productIDs)) + `)`
	args := make([]any, 0, len(productIDs)+2)
	for _, id := range productIDs {
		args = append(args, id)
	}
	if from != nil {
		query += ` AND created_at >= ?`
		args = append(args, from.UnixMilli())
	}
	if to != nil {
		query += ` AND created_at <= ?`
		args = append(args, to.UnixMilli())
	}
	query += ` GROUP BY product_id, type`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("summing transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID, txType string
		var sum int
		if err := rows.Scan(&productID, &txType, &sum); err != nil {
			return nil, fmt.Errorf("scanning transaction sums: %w", err)
		}
		t := totals[productID]
		t.Add(txType, sum)
		totals[productID] = t
	}
	return totals, rows.Err()
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var txs []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var createdAt int64
		if err := rows.Scan(&t.ID, &t.ProductID, &t.Type, &t.Quantity, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		t.CreatedAt = time.UnixMilli(createdAt)
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// placeholders returns n comma-separated SQL placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
