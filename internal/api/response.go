package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/ridoy/smartstock/internal/export"
	"github.com/ridoy/smartstock/internal/inventory"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("error encoding response: %v", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// coreError maps a core inventory error to the matching status class:
// validation failures to 400, missing products to 404, anything else to
// a generic 500.
func coreError(w http.ResponseWriter, err error) {
	switch {
	case inventory.IsValidation(err):
		jsonError(w, http.StatusBadRequest, err.Error())
	case inventory.IsNotFound(err):
		jsonError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("internal error: %v", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// writeWorkbook sends an xlsx binary as a download attachment.
func writeWorkbook(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(data); err != nil {
		log.Printf("error writing workbook: %v", err)
	}
}
