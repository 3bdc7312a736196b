package inventory

import (
	"context"
	"database/sql"
	"time"

	"github.com/ridoy/smartstock/internal/model"
	"github.com/ridoy/smartstock/internal/store"
)

// DayRange returns the inclusive local-calendar-day window for t:
// [00:00:00.000, 23:59:59.999] in t's location.
func DayRange(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	end := time.Date(year, month, day, 23, 59, 59, 999_000_000, t.Location())
	return start, end
}

// Report is the daily aggregate of transactions per product. Rows only
// exist for products with at least one transaction in the window.
type Report struct {
	Date   string             `json:"date"`
	Rows   []model.ReportRow  `json:"report"`
	Totals model.ReportTotals `json:"totals"`
}

// DailyReport aggregates all transactions of the local calendar day of
// date into per-product totals. FinalStock on each row is the product's
// live current stock, even when the window is a past day.
func DailyReport(ctx context.Context, db *sql.DB, date time.Time) (*Report, error) {
	start, end := DayRange(date)

	txs, err := store.ListTransactionsBetween(ctx, db, start, end)
	if err != nil {
		return nil, err
	}
	products, err := store.ListProducts(ctx, db)
	if err != nil {
		return nil, err
	}

	rows := aggregateRows(txs, products)
	return &Report{
		Date:   start.Format("2006-01-02"),
		Rows:   rows,
		Totals: grandTotals(rows),
	}, nil
}

// aggregateRows groups transactions by product and sums quantities per
// type, in first-transaction order. Transactions whose product no
// longer exists are skipped; cascade deletion makes that a transient
// race at most.
func aggregateRows(txs []model.Transaction, products []model.Product) []model.ReportRow {
	byID := make(map[string]*model.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	index := make(map[string]int)
	rows := []model.ReportRow{}
	for _, tx := range txs {
		p, ok := byID[tx.ProductID]
		if !ok {
			continue
		}
		i, ok := index[tx.ProductID]
		if !ok {
			i = len(rows)
			index[tx.ProductID] = i
			rows = append(rows, model.ReportRow{
				ProductID:   p.ID,
				ProductName: p.Name,
				FinalStock:  p.TotalStock,
			})
		}
		rows[i].Totals.Add(tx.Type, tx.Quantity)
	}
	return rows
}

// grandTotals folds all rows into display totals. Pure, never stored.
func grandTotals(rows []model.ReportRow) model.ReportTotals {
	var totals model.ReportTotals
	for _, r := range rows {
		totals.In += r.Totals.In
		totals.Out += r.Totals.Out
		totals.Restock += r.Totals.Restock
		totals.Return += r.Totals.Return
		totals.FinalStock += r.FinalStock
	}
	return totals
}
