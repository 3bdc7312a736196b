package api

import (
	"database/sql"
	"net/http"
)

// Config carries the router's non-database settings.
type Config struct {
	JWTSecret    string
	Email        string
	PasswordHash string
}

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, cfg Config) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Email: cfg.Email, PasswordHash: cfg.PasswordHash, JWTSecret: cfg.JWTSecret}
	productsHandler := &ProductsHandler{DB: db}
	transactionsHandler := &TransactionsHandler{DB: db}
	reportsHandler := &ReportsHandler{DB: db}
	logsHandler := &LogsHandler{DB: db}

	authMW := CookieAuthMiddleware(cfg.JWTSecret)

	// Public: session management.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("GET /api/auth/session", authHandler.Session)

	// Product ledger.
	mux.Handle("GET /api/products", authMW(http.HandlerFunc(productsHandler.List)))
	mux.Handle("POST /api/products", authMW(http.HandlerFunc(productsHandler.Create)))
	mux.Handle("PATCH /api/products/{id}", authMW(http.HandlerFunc(productsHandler.Rename)))
	mux.Handle("DELETE /api/products/{id}", authMW(http.HandlerFunc(productsHandler.Delete)))
	mux.Handle("GET /api/products/export", authMW(http.HandlerFunc(productsHandler.Export)))

	// Stock movements.
	mux.Handle("POST /api/transactions", authMW(http.HandlerFunc(transactionsHandler.Create)))

	// Reports.
	mux.Handle("GET /api/report", authMW(http.HandlerFunc(reportsHandler.Get)))
	mux.Handle("GET /api/report/export", authMW(http.HandlerFunc(reportsHandler.Export)))

	// Event logs.
	mux.Handle("GET /api/logs", authMW(http.HandlerFunc(logsHandler.Get)))
	mux.Handle("GET /api/logs/export", authMW(http.HandlerFunc(logsHandler.Export)))

	return mux
}
