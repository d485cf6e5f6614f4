package dto

import "time"

const (
	// StatusHealthy marks a reachable dependency
	StatusHealthy = "healthy"
	// StatusUnhealthy marks a failed dependency
	StatusUnhealthy = "unhealthy"

	ServiceName   = "bixor-rust-service"
	Version       = "1.0.0"
	StatusMessage = "Bixor Rust Service is running"
)

// HealthResponse represents the response structure for health checks
type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp time.Time         `json:"timestamp"`
	Database  DatabaseHealth    `json:"database"`
	Details   map[string]string `json:"details"`
}

// DatabaseHealth reports the outcome of a single probe query
type DatabaseHealth struct {
	Status         string `json:"status"`
	ResponseTimeMs uint64 `json:"response_time_ms"`
}

// StatusResponse represents the static service metadata
type StatusResponse struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}
