package model

import "testing"

func TestNextStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		txType   string
		quantity int
		want     int
	}{
		{"in adds", 5, TxTypeIn, 10, 15},
		{"restock adds", 0, TxTypeRestock, 7, 7},
		{"out subtracts", 10, TxTypeOut, 4, 6},
		{"out clamps at zero", 10, TxTypeOut, 15, 0},
		{"out to exactly zero", 10, TxTypeOut, 10, 0},
		{"return is neutral", 10, TxTypeReturn, 99, 10},
		{"return neutral at zero", 0, TxTypeReturn, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStock(tt.stock, tt.txType, tt.quantity); got != tt.want {
				t.Errorf("NextStock(%d, %s, %d) = %d, want %d", tt.stock, tt.txType, tt.quantity, got, tt.want)
			}
		})
	}
}

func TestEventForTransaction(t *testing.T) {
	if got := EventForTransaction(TxTypeIn, 10); got != EventStocked {
		t.Errorf("IN should log STOCKED, got %q", got)
	}
	if got := EventForTransaction(TxTypeRestock, 10); got != EventStocked {
		t.Errorf("RESTOCK should log STOCKED, got %q", got)
	}
	if got := EventForTransaction(TxTypeReturn, 10); got != EventRefunded {
		t.Errorf("RETURN should log REFUNDED, got %q", got)
	}
	if got := EventForTransaction(TxTypeOut, 0); got != EventOutOfStock {
		t.Errorf("OUT reaching zero should log OUT_OF_STOCK, got %q", got)
	}
	if got := EventForTransaction(TxTypeOut, 3); got != "" {
		t.Errorf("OUT leaving stock should log nothing, got %q", got)
	}
}

func TestValidTxType(t *testing.T) {
	for _, typ := range TxTypes {
		if !ValidTxType(typ) {
			t.Errorf("expected %q to be valid", typ)
		}
	}
	if ValidTxType("SELL") {
		t.Error("expected 'SELL' to be invalid")
	}
	if ValidTxType("") {
		t.Error("expected empty type to be invalid")
	}
}

func TestTypeTotalsAddOf(t *testing.T) {
	var totals TypeTotals
	totals.Add(TxTypeIn, 5)
	totals.Add(TxTypeIn, 3)
	totals.Add(TxTypeOut, 2)
	totals.Add(TxTypeReturn, 1)

	if totals.Of(TxTypeIn) != 8 {
		t.Errorf("expected IN total 8, got %d", totals.Of(TxTypeIn))
	}
	if totals.Of(TxTypeOut) != 2 {
		t.Errorf("expected OUT total 2, got %d", totals.Of(TxTypeOut))
	}
	if totals.Of(TxTypeRestock) != 0 {
		t.Errorf("expected RESTOCK total 0, got %d", totals.Of(TxTypeRestock))
	}
	if totals.Of(TxTypeReturn) != 1 {
		t.Errorf("expected RETURN total 1, got %d", totals.Of(TxTypeReturn))
	}
}
