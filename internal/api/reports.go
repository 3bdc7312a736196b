package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/ridoy/smartstock/internal/export"
	"github.com/ridoy/smartstock/internal/inventory"
)

// ReportsHandler handles daily report endpoints.
type ReportsHandler struct {
	DB *sql.DB
}

// reportDate resolves the optional ?date= parameter, defaulting to
// today in local time.
func reportDate(r *http.Request) (time.Time, error) {
	param := r.URL.Query().Get("date")
	if param == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", param, time.Local)
}

// Get handles GET /api/report.
func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	date, err := reportDate(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid date")
		return
	}

	report, err := inventory.DailyReport(r.Context(), h.DB, date)
	if err != nil {
		coreError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, report)
}

// Export handles GET /api/report/export.
func (h *ReportsHandler) Export(w http.ResponseWriter, r *http.Request) {
	date, err := reportDate(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid date")
		return
	}

	report, err := inventory.DailyReport(r.Context(), h.DB, date)
	if err != nil {
		coreError(w, err)
		return
	}

	data, err := export.Workbook(export.ReportSheet(report.Rows, report.Totals))
	if err != nil {
		coreError(w, err)
		return
	}

	writeWorkbook(w, export.Filename("report", date), data)
}
