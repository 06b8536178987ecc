package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

type sessionCounter interface {
	Len() int
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger   *slog.Logger
	sessions sessionCounter
	env      string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *slog.Logger, sessions sessionCounter, env string) *HealthHandler {
	return &HealthHandler{
		logger:   logger,
		sessions: sessions,
		env:      env,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Env       string    `json:"env"`
	Sessions  int       `json:"sessions"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Env:       h.env,
		Sessions:  h.sessions.Len(),
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
