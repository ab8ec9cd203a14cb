package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered. Every
// route carries permissive CORS headers so the handlers work behind any
// origin.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{DB: db}

	mux.HandleFunc("POST /items", itemsHandler.Create)
	mux.HandleFunc("GET /items", itemsHandler.List)
	mux.HandleFunc("DELETE /items/{id}", itemsHandler.Delete)

	// Preflight requests are answered by the CORS middleware and never
	// reach the mux.
	return CORSMiddleware(mux)
}
