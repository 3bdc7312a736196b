package model

import "time"

// Transaction is an immutable record of a stock-affecting action.
// Quantity is always the requested amount, even when an OUT movement
// gets clamped at zero stock.
type Transaction struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

// Transaction types.
const (
	TxTypeIn      = "IN"
	TxTypeOut     = "OUT"
	TxTypeRestock = "RESTOCK"
	TxTypeReturn  = "RETURN"
)

// TxTypes lists all transaction types in display order.
var TxTypes = []string{TxTypeIn, TxTypeOut, TxTypeRestock, TxTypeReturn}

// ValidTxType reports whether t is a known transaction type.
func ValidTxType(t string) bool {
	switch t {
	case TxTypeIn, TxTypeOut, TxTypeRestock, TxTypeReturn:
		return true
	}
	return false
}

// NextStock applies a transaction's effect to the current stock level.
// IN and RESTOCK add, OUT subtracts with a floor of zero (a deficit is
// absorbed, never an error), and RETURN leaves the stock unchanged.
func NextStock(stock int, txType string, quantity int) int {
	switch txType {
	case TxTypeIn, TxTypeRestock:
		return stock + quantity
	case TxTypeOut:
		if quantity >= stock {
			return 0
		}
		return stock - quantity
	}
	// RETURN is tracked for reporting only.
	return stock
}

// EventForTransaction returns the log event a successful transaction
// produces, or "" when none applies. OUT only logs when it empties the
// stock.
func EventForTransaction(txType string, newStock int) string {
	switch txType {
	case TxTypeIn, TxTypeRestock:
		return EventStocked
	case TxTypeReturn:
		return EventRefunded
	case TxTypeOut:
		if newStock == 0 {
			return EventOutOfStock
		}
	}
	return ""
}
