package export

import (
	"fmt"
	"sort"

	"github.com/ridoy/smartstock/internal/model"
)

// timestampFormat is how timestamps are rendered in exported cells.
const timestampFormat = "2006-01-02 15:04:05"

// ProductsSheet shapes the product ledger for export, sorted by name.
func ProductsSheet(products []model.Product) Sheet {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	rows := make([]Row, 0, len(sorted))
	for i, p := range sorted {
		rows = append(rows, Row{
			"sn":          i + 1,
			"productName": p.Name,
			"totalStock":  p.TotalStock,
			"createdAt":   p.CreatedAt.Format(timestampFormat),
		})
	}

	return Sheet{
		Name: "Products",
		Columns: []Column{
			{Header: "S/N", Key: "sn", Width: 6},
			{Header: "Product Name", Key: "productName", Width: 30},
			{Header: "Total Stock", Key: "totalStock", Width: 14},
			{Header: "Created At", Key: "createdAt", Width: 22},
		},
		Rows: rows,
	}
}

// LogsSheet shapes decorated log entries for export. The amount column
// carries the window-aggregate sum the entries were decorated with.
func LogsSheet(entries []model.DecoratedLogEntry) Sheet {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		amount := fmt.Sprintf("%d", e.Summary.StockAmount)
		if e.Summary.StockLabel != "" {
			amount = fmt.Sprintf("%d (%s)", e.Summary.StockAmount, e.Summary.StockLabel)
		}
		rows = append(rows, Row{
			"productName": e.ProductName,
			"event":       e.Event,
			"date":        e.CreatedAt.Format(timestampFormat),
			"amount":      amount,
		})
	}

	return Sheet{
		Name: "Logs",
		Columns: []Column{
			{Header: "Product Name", Key: "productName", Width: 30},
			{Header: "Event", Key: "event", Width: 18},
			{Header: "Date & Time", Key: "date", Width: 22},
			{Header: "Amount", Key: "amount", Width: 18},
		},
		Rows: rows,
	}
}

// ReportSheet shapes a daily report for export: rows sorted by product
// name with serial numbers and a bold totals footer.
func ReportSheet(report []model.ReportRow, totals model.ReportTotals) Sheet {
	sorted := make([]model.ReportRow, len(report))
	copy(sorted, report)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductName < sorted[j].ProductName })

	rows := make([]Row, 0, len(sorted))
	for i, r := range sorted {
		rows = append(rows, Row{
			"sn":          i + 1,
			"productName": r.ProductName,
			"IN":          r.Totals.In,
			"OUT":         r.Totals.Out,
			"RESTOCK":     r.Totals.Restock,
			"RETURN":      r.Totals.Return,
			"FINAL":       r.FinalStock,
		})
	}

	return Sheet{
		Name: "Stock",
		Columns: []Column{
			{Header: "S/N", Key: "sn", Width: 6},
			{Header: "Product Name", Key: "productName", Width: 30},
			{Header: "IN", Key: "IN", Width: 10},
			{Header: "OUT", Key: "OUT", Width: 10},
			{Header: "RESTOCK", Key: "RESTOCK", Width: 12},
			{Header: "RETURN", Key: "RETURN", Width: 12},
			{Header: "Final Stock", Key: "FINAL", Width: 14},
		},
		Rows: rows,
		Footer: Row{
			"productName": "Totals",
			"IN":          totals.In,
			"OUT":         totals.Out,
			"RESTOCK":     totals.Restock,
			"RETURN":      totals.Return,
			"FINAL":       totals.FinalStock,
		},
	}
}
