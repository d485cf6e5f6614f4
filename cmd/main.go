// @title Bixor Rust Service API
// @version 1.0.0
// @description Health check and status endpoints for the Bixor service

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /
// @schemes http

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"BIXOR-SERVICE/internal/config"
	"BIXOR-SERVICE/internal/database"
	"BIXOR-SERVICE/internal/handlers"
	"BIXOR-SERVICE/internal/logger"
	"BIXOR-SERVICE/internal/middleware"
	"BIXOR-SERVICE/internal/routes"
)

func main() {
	cfg := config.Load()

	l := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(l)

	pool, err := database.Connect(context.Background(), cfg.Database.URL)
	if err != nil {
		fatal(l, "database connection failed", err)
	}
	defer pool.Close()
	l.Info("Database connection established")

	// --- HTTP Handlers ---
	healthHandler := handlers.NewHealthHandler(pool, l)

	mux := http.NewServeMux()
	routes.SetupRoutes(mux, healthHandler)

	handler := middleware.RequestLogger(l)(middleware.CORS(mux))

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(l.Handler(), slog.LevelError),
	}

	l.Info("Rust service starting", slog.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		pool.Close()
		fatal(l, "ListenAndServe failed", err)
	}
}

func fatal(l *slog.Logger, msg string, err error) {
	l.Error(msg, logger.ErrAttr(err))
	os.Exit(1)
}
