package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ridoy/smartstock/internal/model"
)

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	if err != nil {
		t.Fatalf("reading cell %s: %v", ref, err)
	}
	return v
}

func TestFilename(t *testing.T) {
	day := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.Local)
	if got := Filename("report", day); got != "report_2026-03-15.xlsx" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestProductsSheet(t *testing.T) {
	products := []model.Product{
		{ID: "2", Name: "Bolt", TotalStock: 3, CreatedAt: time.Date(2026, 1, 2, 9, 0, 0, 0, time.Local)},
		{ID: "1", Name: "Anvil", TotalStock: 7, CreatedAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local)},
	}

	data, err := Workbook(ProductsSheet(products))
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	f := openWorkbook(t, data)

	if got := cell(t, f, "Products", "B1"); got != "Product Name" {
		t.Errorf("unexpected header: %q", got)
	}
	// Rows are sorted by name, with serial numbers.
	if got := cell(t, f, "Products", "B2"); got != "Anvil" {
		t.Errorf("expected Anvil first, got %q", got)
	}
	if got := cell(t, f, "Products", "A2"); got != "1" {
		t.Errorf("expected serial 1, got %q", got)
	}
	if got := cell(t, f, "Products", "C3"); got != "3" {
		t.Errorf("expected Bolt stock 3, got %q", got)
	}
}

func TestReportSheetWithTotalsFooter(t *testing.T) {
	rows := []model.ReportRow{
		{ProductID: "1", ProductName: "Widget", Totals: model.TypeTotals{In: 10, Out: 4}, FinalStock: 6},
		{ProductID: "2", ProductName: "Anvil", Totals: model.TypeTotals{Restock: 20}, FinalStock: 20},
	}
	totals := model.ReportTotals{TypeTotals: model.TypeTotals{In: 10, Out: 4, Restock: 20}, FinalStock: 26}

	data, err := Workbook(ReportSheet(rows, totals))
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	f := openWorkbook(t, data)

	// Sorted by product name: Anvil before Widget.
	if got := cell(t, f, "Stock", "B2"); got != "Anvil" {
		t.Errorf("expected Anvil first, got %q", got)
	}
	if got := cell(t, f, "Stock", "C3"); got != "10" {
		t.Errorf("expected Widget IN 10, got %q", got)
	}
	// Footer after the data rows.
	if got := cell(t, f, "Stock", "B4"); got != "Totals" {
		t.Errorf("expected totals footer, got %q", got)
	}
	if got := cell(t, f, "Stock", "G4"); got != "26" {
		t.Errorf("expected grand final stock 26, got %q", got)
	}
}

func TestLogsSheetAmounts(t *testing.T) {
	entries := []model.DecoratedLogEntry{
		{
			LogEntry: model.LogEntry{ProductName: "Widget", Event: model.EventStocked,
				CreatedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.Local)},
			Summary: model.LogSummary{Count: 2, StockAmount: 15, StockLabel: "stock in"},
		},
		{
			LogEntry: model.LogEntry{ProductName: "", Event: model.EventRefunded,
				CreatedAt: time.Date(2026, 2, 1, 13, 0, 0, 0, time.Local)},
			Summary: model.LogSummary{Count: 1, StockAmount: 0, StockLabel: "refund"},
		},
	}

	data, err := Workbook(LogsSheet(entries))
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	f := openWorkbook(t, data)

	if got := cell(t, f, "Logs", "D2"); got != "15 (stock in)" {
		t.Errorf("unexpected amount cell: %q", got)
	}
	if got := cell(t, f, "Logs", "B3"); got != model.EventRefunded {
		t.Errorf("unexpected event cell: %q", got)
	}
}

func TestWorkbookEmptyRows(t *testing.T) {
	data, err := Workbook(Sheet{
		Name:    "Empty",
		Columns: []Column{{Header: "Only", Key: "only", Width: 10}},
	})
	if err != nil {
		t.Fatalf("Workbook: %v", err)
	}
	f := openWorkbook(t, data)
	if got := cell(t, f, "Empty", "A1"); got != "Only" {
		t.Errorf("expected header row, got %q", got)
	}
}
