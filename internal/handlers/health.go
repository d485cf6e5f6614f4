package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"BIXOR-SERVICE/internal/database"
	"BIXOR-SERVICE/internal/dto"
	"BIXOR-SERVICE/internal/logger"
	"BIXOR-SERVICE/internal/utils"
)

// HealthHandler handles health check related requests
type HealthHandler struct {
	db     database.Querier
	logger *slog.Logger
	now    func() time.Time
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db database.Querier, l *slog.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: l, now: time.Now}
}

// Health reports process liveness and database reachability
// @Summary Health check
// @Description Probe the database and report its status and latency
// @Tags Monitoring
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service and database are healthy"
// @Failure 503 "Database is unreachable"
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := h.now()

	dbHealth := dto.DatabaseHealth{Status: dto.StatusHealthy}
	if err := database.Probe(r.Context(), h.db); err != nil {
		h.logger.Error("database health check failed", logger.ErrAttr(err))
		dbHealth.Status = dto.StatusUnhealthy
	}
	dbHealth.ResponseTimeMs = h.elapsedMs(start)

	// uptime is measured from the start of this request, not the process
	details := map[string]string{
		"version": dto.Version,
		"uptime":  fmt.Sprintf("%dms", h.elapsedMs(start)),
	}

	response := dto.HealthResponse{
		Status:    dbHealth.Status,
		Service:   dto.ServiceName,
		Timestamp: h.now().UTC(),
		Database:  dbHealth,
		Details:   details,
	}

	if response.Status == dto.StatusUnhealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, response)
}

// Status reports static service metadata
// @Summary Service status
// @Description Static service information, no dependencies are checked
// @Tags Monitoring
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /api/v1/status [get]
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.StatusResponse{
		Message:   dto.StatusMessage,
		Timestamp: h.now().UTC(),
		Service:   dto.ServiceName,
		Version:   dto.Version,
	})
}

func (h *HealthHandler) elapsedMs(start time.Time) uint64 {
	elapsed := h.now().Sub(start)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed.Milliseconds())
}
