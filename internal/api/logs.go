package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/ridoy/smartstock/internal/export"
	"github.com/ridoy/smartstock/internal/inventory"
)

// LogsHandler handles event log query endpoints.
type LogsHandler struct {
	DB *sql.DB
}

func logFilters(r *http.Request) inventory.LogFilters {
	q := r.URL.Query()
	return inventory.LogFilters{
		ProductID: q.Get("product"),
		Date:      q.Get("date"),
		From:      q.Get("from"),
		To:        q.Get("to"),
	}
}

// Get handles GET /api/logs.
func (h *LogsHandler) Get(w http.ResponseWriter, r *http.Request) {
	entries, err := inventory.QueryLogs(r.Context(), h.DB, logFilters(r))
	if err != nil {
		coreError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, entries)
}

// Export handles GET /api/logs/export.
func (h *LogsHandler) Export(w http.ResponseWriter, r *http.Request) {
	filters := logFilters(r)

	entries, err := inventory.QueryLogs(r.Context(), h.DB, filters)
	if err != nil {
		coreError(w, err)
		return
	}

	data, err := export.Workbook(export.LogsSheet(entries))
	if err != nil {
		coreError(w, err)
		return
	}

	// Named for the queried day when one was given, otherwise today.
	day := time.Now()
	if filters.Date != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", filters.Date, time.Local); err == nil {
			day = parsed
		}
	}
	writeWorkbook(w, export.Filename("logs", day), data)
}
