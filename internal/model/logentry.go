package model

import "time"

// LogEntry is a derived audit record of a stock milestone. Entries are
// never written directly by clients and deliberately keep no foreign
// key to products, so they survive product deletion.
type LogEntry struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName,omitempty"`
	Event       string    `json:"event"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Log events.
const (
	EventStocked    = "STOCKED"
	EventOutOfStock = "OUT_OF_STOCK"
	EventRefunded   = "REFUNDED"
)

// EventSource maps a log event back to the transaction type that
// produces it, plus the label shown next to aggregated amounts.
func EventSource(event string) (txType, label string) {
	switch event {
	case EventStocked:
		return TxTypeIn, "stock in"
	case EventOutOfStock:
		return TxTypeOut, "stock out"
	case EventRefunded:
		return TxTypeReturn, "refund"
	}
	return "", ""
}

// LogSummary decorates a queried log entry with aggregates computed
// over the same query window: how many entries the result set holds for
// the entry's product, and the summed transaction quantity of the type
// mapped from the entry's event.
type LogSummary struct {
	Count       int    `json:"count"`
	StockAmount int    `json:"stockAmount"`
	StockLabel  string `json:"stockLabel"`
}

// DecoratedLogEntry is a log entry with its query-window summary.
type DecoratedLogEntry struct {
	LogEntry
	Summary LogSummary `json:"summary"`
}
