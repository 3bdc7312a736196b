package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ridoy/smartstock/internal/model"
)

// LogTTL is how long log entries are kept (5 x 30 days).
const LogTTL = 5 * 30 * 24 * time.Hour

// AppendLog records a derived stock event for a product.
func AppendLog(ctx context.Context, db *sql.DB, productID, event string) (*model.LogEntry, error) {
	entry := &model.LogEntry{
		ID:        uuid.NewString(),
		ProductID: productID,
		Event:     event,
		CreatedAt: time.Now(),
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO logs (id, product_id, event, created_at) VALUES (?, ?, ?, ?)`,
		entry.ID, entry.ProductID, entry.Event, entry.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("appending log: %w", err)
	}
	return entry, nil
}

// LogFilter narrows a log listing. Zero-value fields are ignored.
type LogFilter struct {
	ProductID string
	From      *time.Time
	To        *time.Time
}

// ListLogs returns log entries matching the filter, newest first. The
// product name is joined in where the product still exists; entries for
// deleted products come back with an empty name.
func ListLogs(ctx context.Context, db *sql.DB, f LogFilter) ([]model.LogEntry, error) {
	query := `SELECT l.id, l.product_id, COALESCE(p.name, ''), l.event, l.created_at
	          FROM logs l LEFT JOIN products p ON p.id = l.product_id
	          WHERE 1=1`
	var args []any

	if f.ProductID != "" {
		query += ` AND l.product_id = ?`
		args = append(args, f.ProductID)
	}
	if f.From != nil {
		query += ` AND l.created_at >= ?`
		args = append(args, f.From.UnixMilli())
	}
	if f.To != nil {
		query += ` AND l.created_at <= ?`
		args = append(args, f.To.UnixMilli())
	}

	query += ` ORDER BY l.created_at DESC, l.id`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing logs: %w", err)
	}
	defer rows.Close()

	var entries []model.LogEntry
	for rows.Next() {
		var e model.LogEntry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.ProductID, &e.ProductName, &e.Event, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning log: %w", err)
		}
		e.CreatedAt = time.UnixMilli(createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ExpireLogs deletes log entries created before the cutoff and returns
// how many were removed.
func ExpireLogs(ctx context.Context, db *sql.DB, cutoff time.Time) (int64, error) {
	result, err := db.ExecContext(ctx,
		`DELETE FROM logs WHERE created_at < ?`, cutoff.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("expiring logs: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting expired logs: %w", err)
	}
	return n, nil
}

// StartLogSweeper periodically deletes expired log entries until ctx is
// cancelled. The sweep is advisory: reads and writes never wait on it,
// and a failed sweep is just retried on the next tick.
func StartLogSweeper(ctx context.Context, db *sql.DB, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := ExpireLogs(ctx, db, time.Now().Add(-LogTTL))
				if err != nil {
					slog.Error("log expiry sweep failed", "error", err)
					continue
				}
				if n > 0 {
					slog.Info("expired log entries", "count", n)
				}
			}
		}
	}()
}
