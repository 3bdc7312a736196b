package model

// TypeTotals holds summed transaction quantities per type.
type TypeTotals struct {
	In      int `json:"IN"`
	Out     int `json:"OUT"`
	Restock int `json:"RESTOCK"`
	Return  int `json:"RETURN"`
}

// Add accumulates a quantity under the given transaction type.
func (t *TypeTotals) Add(txType string, quantity int) {
	switch txType {
	case TxTypeIn:
		t.In += quantity
	case TxTypeOut:
		t.Out += quantity
	case TxTypeRestock:
		t.Restock += quantity
	case TxTypeReturn:
		t.Return += quantity
	}
}

// Of returns the accumulated sum for the given transaction type.
func (t TypeTotals) Of(txType string) int {
	switch txType {
	case TxTypeIn:
		return t.In
	case TxTypeOut:
		return t.Out
	case TxTypeRestock:
		return t.Restock
	case TxTypeReturn:
		return t.Return
	}
	return 0
}

// ReportRow is a per-product aggregate for one report window.
// FinalStock is always the product's live stock, not a point-in-time
// reconstruction for the window.
type ReportRow struct {
	ProductID   string     `json:"productId"`
	ProductName string     `json:"productName"`
	Totals      TypeTotals `json:"totals"`
	FinalStock  int        `json:"finalStock"`
}

// ReportTotals are the grand totals folded across all report rows.
// Computed for display only, never persisted.
type ReportTotals struct {
	TypeTotals
	FinalStock int `json:"finalStock"`
}
