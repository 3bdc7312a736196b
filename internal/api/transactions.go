package api

import (
	"database/sql"
	"net/http"

	"github.com/ridoy/smartstock/internal/inventory"
)

// TransactionsHandler handles stock movement recording.
type TransactionsHandler struct {
	DB *sql.DB
}

type recordRequest struct {
	Product  string `json:"product"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// Create handles POST /api/transactions.
func (h *TransactionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, product, err := inventory.RecordTransaction(r.Context(), h.DB, req.Product, req.Type, req.Quantity)
	if err != nil {
		coreError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]any{
		"transaction": tx,
		"product":     product,
	})
}
