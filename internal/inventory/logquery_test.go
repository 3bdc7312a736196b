package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/ridoy/smartstock/internal/db"
	"github.com/ridoy/smartstock/internal/model"
)

func TestQueryLogsSummaryAggregates(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p, _ := CreateProduct(ctx, database, "Widget")
	RecordTransaction(ctx, database, p.ID, model.TxTypeIn, 10) // STOCKED
	RecordTransaction(ctx, database, p.ID, model.TxTypeIn, 5)  // STOCKED
	RecordTransaction(ctx, database, p.ID, model.TxTypeOut, 15) // OUT_OF_STOCK
	RecordTransaction(ctx, database, p.ID, model.TxTypeReturn, 2) // REFUNDED

	entries, err := QueryLogs(ctx, database, LogFilters{Date: time.Now().Format("2006-01-02")})
	if err != nil {
		t.Fatalf("QueryLogs: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 log entries, got %d", len(entries))
	}

	// Newest first.
	for i := 1; i < len(entries); i++ {
		if entries[i-1].CreatedAt.Before(entries[i].CreatedAt) {
			t.Fatal("expected newest-first ordering")
		}
	}

	for _, e := range entries {
		if e.Summary.Count != 4 {
			t.Errorf("expected count 4 on every entry, got %d", e.Summary.Count)
		}
		// The amount is the window-aggregate sum for the mapped type,
		// not the quantity of the nearest single transaction.
		switch e.Event {
		case model.EventStocked:
			if e.Summary.StockAmount != 15 {
				t.Errorf("STOCKED: expected aggregate IN sum 15, got %d", e.Summary.StockAmount)
			}
			if e.Summary.StockLabel != "stock in" {
				t.Errorf("STOCKED: expected label 'stock in', got %q", e.Summary.StockLabel)
			}
		case model.EventOutOfStock:
			if e.Summary.StockAmount != 15 {
				t.Errorf("OUT_OF_STOCK: expected aggregate OUT sum 15, got %d", e.Summary.StockAmount)
			}
			if e.Summary.StockLabel != "stock out" {
				t.Errorf("OUT_OF_STOCK: expected label 'stock out', got %q", e.Summary.StockLabel)
			}
		case model.EventRefunded:
			if e.Summary.StockAmount != 2 {
				t.Errorf("REFUNDED: expected aggregate RETURN sum 2, got %d", e.Summary.StockAmount)
			}
			if e.Summary.StockLabel != "refund" {
				t.Errorf("REFUNDED: expected label 'refund', got %q", e.Summary.StockLabel)
			}
		}
	}
}

func TestQueryLogsProductFilter(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	a, _ := CreateProduct(ctx, database, "A")
	b, _ := CreateProduct(ctx, database, "B")
	RecordTransaction(ctx, database, a.ID, model.TxTypeIn, 1)
	RecordTransaction(ctx, database, b.ID, model.TxTypeIn, 1)

	entries, err := QueryLogs(ctx, database, LogFilters{ProductID: a.ID})
	if err != nil {
		t.Fatalf("QueryLogs: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ProductID != a.ID {
		t.Errorf("expected product a's entry, got %s", entries[0].ProductID)
	}
	if entries[0].Summary.Count != 1 {
		t.Errorf("expected count 1 within the filtered result set, got %d", entries[0].Summary.Count)
	}
}

func TestQueryLogsMalformedProduct(t *testing.T) {
	database := db.NewTestDB(t)

	_, err := QueryLogs(context.Background(), database, LogFilters{ProductID: "nope"})
	if !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestQueryLogsEmptyResult(t *testing.T) {
	database := db.NewTestDB(t)

	entries, err := QueryLogs(context.Background(), database, LogFilters{})
	if err != nil {
		t.Fatalf("QueryLogs: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty result, got %d entries", len(entries))
	}
}

func TestLogFiltersWindow(t *testing.T) {
	day := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local)
	dayStr := day.Format("2006-01-02")

	t.Run("date only uses day bounds", func(t *testing.T) {
		from, to, err := LogFilters{Date: dayStr}.window()
		if err != nil {
			t.Fatalf("window: %v", err)
		}
		wantStart, wantEnd := DayRange(day)
		if !from.Equal(wantStart) || !to.Equal(wantEnd) {
			t.Errorf("got [%v, %v], want [%v, %v]", from, to, wantStart, wantEnd)
		}
	})

	t.Run("clock times narrow the day", func(t *testing.T) {
		from, to, err := LogFilters{Date: dayStr, From: "09:30", To: "17:00"}.window()
		if err != nil {
			t.Fatalf("window: %v", err)
		}
		if from.Hour() != 9 || from.Minute() != 30 {
			t.Errorf("unexpected from: %v", from)
		}
		if to.Hour() != 17 || to.Minute() != 0 {
			t.Errorf("unexpected to: %v", to)
		}
		if from.Day() != 15 || to.Day() != 15 {
			t.Error("expected bounds on the given date")
		}
	})

	t.Run("full timestamps are used verbatim", func(t *testing.T) {
		stamp := "2026-03-10T08:00:00Z"
		from, _, err := LogFilters{Date: dayStr, From: stamp}.window()
		if err != nil {
			t.Fatalf("window: %v", err)
		}
		want, _ := time.Parse(time.RFC3339, stamp)
		if !from.Equal(want) {
			t.Errorf("got %v, want %v", from, want)
		}
	})

	t.Run("absolute bounds without date", func(t *testing.T) {
		from, to, err := LogFilters{From: "2026-03-01T00:00:00Z", To: "2026-03-02T00:00:00Z"}.window()
		if err != nil {
			t.Fatalf("window: %v", err)
		}
		if from == nil || to == nil {
			t.Fatal("expected both bounds set")
		}
		if !from.Before(*to) {
			t.Error("expected from before to")
		}
	})

	t.Run("no filters means no bounds", func(t *testing.T) {
		from, to, err := LogFilters{}.window()
		if err != nil {
			t.Fatalf("window: %v", err)
		}
		if from != nil || to != nil {
			t.Error("expected unbounded window")
		}
	})

	t.Run("malformed values are rejected", func(t *testing.T) {
		if _, _, err := (LogFilters{Date: "15-03-2026"}).window(); !IsValidation(err) {
			t.Errorf("expected ValidationError for bad date, got %v", err)
		}
		if _, _, err := (LogFilters{Date: dayStr, From: "9am"}).window(); !IsValidation(err) {
			t.Errorf("expected ValidationError for bad clock time, got %v", err)
		}
		if _, _, err := (LogFilters{From: "yesterday"}).window(); !IsValidation(err) {
			t.Errorf("expected ValidationError for bad timestamp, got %v", err)
		}
	})
}

func TestQueryLogsOrphanedEntries(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p, _ := CreateProduct(ctx, database, "Gone")
	RecordTransaction(ctx, database, p.ID, model.TxTypeIn, 5)

	if err := DeleteProduct(ctx, database, p.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}

	// The STOCKED entry remains queryable; its transactions are gone so
	// the aggregate amount drops to zero.
	entries, err := QueryLogs(ctx, database, LogFilters{})
	if err != nil {
		t.Fatalf("QueryLogs: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 orphaned entry, got %d", len(entries))
	}
	if entries[0].Summary.StockAmount != 0 {
		t.Errorf("expected zero aggregate after cascade delete, got %d", entries[0].Summary.StockAmount)
	}
}
