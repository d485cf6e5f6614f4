package routes

import (
	"net/http"

	"BIXOR-SERVICE/internal/handlers"
)

// SetupRoutes configures all application routes
func SetupRoutes(mux *http.ServeMux, healthHandler *handlers.HealthHandler) {
	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/api/v1/status", healthHandler.Status)
}
