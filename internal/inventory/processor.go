package inventory

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ridoy/smartstock/internal/model"
	"github.com/ridoy/smartstock/internal/store"
)

// RecordTransaction validates and records a stock movement, returning
// the created transaction and the product with its updated stock.
//
// Validation happens before anything is written, so a ValidationError
// or NotFoundError means zero partial effects. The transaction insert
// and the stock update share one database transaction; the log append
// afterwards is best-effort and never affects the reported result.
func RecordTransaction(ctx context.Context, db *sql.DB, productID, txType string, quantity int) (*model.Transaction, *model.Product, error) {
	if productID == "" || txType == "" {
		return nil, nil, &ValidationError{Reason: "product, type and quantity are required"}
	}
	if quantity <= 0 {
		return nil, nil, &ValidationError{Reason: "quantity must be a positive integer"}
	}
	if !model.ValidTxType(txType) {
		return nil, nil, &ValidationError{Reason: "invalid transaction type"}
	}
	if err := checkProductID(productID); err != nil {
		return nil, nil, err
	}

	p, err := store.GetProduct(ctx, db, productID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, &NotFoundError{ID: productID}
	}

	rec, updated, err := store.ApplyTransaction(ctx, db, productID, txType, quantity)
	if err != nil {
		return nil, nil, err
	}

	// Fire-and-forget: a failed log append must not fail the recorded
	// transaction, so the error is logged and dropped here.
	if event := model.EventForTransaction(txType, updated.TotalStock); event != "" {
		if _, err := store.AppendLog(ctx, db, productID, event); err != nil {
			slog.Error("failed to append stock event log", "product", productID, "event", event, "error", err)
		}
	}

	return rec, updated, nil
}
