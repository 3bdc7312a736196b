package inventory

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/ridoy/smartstock/internal/model"
	"github.com/ridoy/smartstock/internal/store"
)

// LogFilters narrow a log query. All fields are optional. Date is a
// local calendar day ("2006-01-02"); From and To are either "HH:MM"
// local times on that day or full RFC 3339 timestamps. Without Date,
// From and To act as absolute bounds.
type LogFilters struct {
	ProductID string
	Date      string
	From      string
	To        string
}

// window resolves the filters into createdAt bounds. With a date, the
// bounds start as the day window and any given From/To edge overrides
// the matching side. Without a date, From/To are used verbatim.
func (f LogFilters) window() (from, to *time.Time, err error) {
	if f.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", f.Date, time.Local)
		if err != nil {
			return nil, nil, &ValidationError{Reason: "invalid date"}
		}
		start, end := DayRange(day)

		if f.From != "" {
			if start, err = parseBound(day, f.From); err != nil {
				return nil, nil, err
			}
		}
		if f.To != "" {
			if end, err = parseBound(day, f.To); err != nil {
				return nil, nil, err
			}
		}
		return &start, &end, nil
	}

	if f.From != "" {
		t, err := time.Parse(time.RFC3339, f.From)
		if err != nil {
			return nil, nil, &ValidationError{Reason: "invalid from timestamp"}
		}
		from = &t
	}
	if f.To != "" {
		t, err := time.Parse(time.RFC3339, f.To)
		if err != nil {
			return nil, nil, &ValidationError{Reason: "invalid to timestamp"}
		}
		to = &t
	}
	return from, to, nil
}

// parseBound interprets s as either a full timestamp or a local "HH:MM"
// time of day on the given day.
func parseBound(day time.Time, s string) (time.Time, error) {
	if strings.Contains(s, "T") {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, &ValidationError{Reason: "invalid time bound"}
		}
		return t, nil
	}
	clock, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, &ValidationError{Reason: "invalid time bound"}
	}
	year, month, d := day.Date()
	return time.Date(year, month, d, clock.Hour(), clock.Minute(), 0, 0, day.Location()), nil
}

// QueryLogs returns log entries matching the filters, newest first,
// each decorated with a summary computed over the same window: the
// number of returned entries for the entry's product, and the summed
// transaction quantity of the type its event maps to (STOCKED->IN,
// OUT_OF_STOCK->OUT, REFUNDED->RETURN). The amount is the aggregate
// across the whole window, not the single transaction nearest the
// entry.
func QueryLogs(ctx context.Context, db *sql.DB, f LogFilters) ([]model.DecoratedLogEntry, error) {
	if f.ProductID != "" {
		if err := checkProductID(f.ProductID); err != nil {
			return nil, err
		}
	}
	from, to, err := f.window()
	if err != nil {
		return nil, err
	}

	entries, err := store.ListLogs(ctx, db, store.LogFilter{ProductID: f.ProductID, From: from, To: to})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var productIDs []string
	for _, e := range entries {
		if counts[e.ProductID] == 0 {
			productIDs = append(productIDs, e.ProductID)
		}
		counts[e.ProductID]++
	}

	totals, err := store.SumTransactionTotals(ctx, db, productIDs, from, to)
	if err != nil {
		return nil, err
	}

	decorated := make([]model.DecoratedLogEntry, 0, len(entries))
	for _, e := range entries {
		txType, label := model.EventSource(e.Event)
		decorated = append(decorated, model.DecoratedLogEntry{
			LogEntry: e,
			Summary: model.LogSummary{
				Count:       counts[e.ProductID],
				StockAmount: totals[e.ProductID].Of(txType),
				StockLabel:  label,
			},
		})
	}
	return decorated, nil
}
