package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/ridoy/smartstock/internal/export"
	"github.com/ridoy/smartstock/internal/inventory"
	"github.com/ridoy/smartstock/internal/model"
	"github.com/ridoy/smartstock/internal/store"
)

// ProductsHandler handles product ledger endpoints.
type ProductsHandler struct {
	DB *sql.DB
}

type productRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/products.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := store.ListProducts(r.Context(), h.DB)
	if err != nil {
		coreError(w, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	jsonResponse(w, http.StatusOK, products)
}

// Create handles POST /api/products.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := inventory.CreateProduct(r.Context(), h.DB, req.Name)
	if err != nil {
		coreError(w, err)
		return
	}

	jsonResponse(w, http.StatusCreated, product)
}

// Rename handles PATCH /api/products/{id}.
func (h *ProductsHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := inventory.RenameProduct(r.Context(), h.DB, r.PathValue("id"), req.Name)
	if err != nil {
		coreError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id}. Deleting a product removes
// all of its transactions; log entries stay behind until they expire.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := inventory.DeleteProduct(r.Context(), h.DB, r.PathValue("id")); err != nil {
		coreError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, map[string]bool{"ok": true})
}

// Export handles GET /api/products/export.
func (h *ProductsHandler) Export(w http.ResponseWriter, r *http.Request) {
	products, err := store.ListProducts(r.Context(), h.DB)
	if err != nil {
		coreError(w, err)
		return
	}

	data, err := export.Workbook(export.ProductsSheet(products))
	if err != nil {
		coreError(w, err)
		return
	}

	writeWorkbook(w, export.Filename("products", time.Now()), data)
}
