package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mistore/storefront/internal/session"
)

// SessionHandler exposes the visitor's view state
type SessionHandler struct {
	sessions *session.Manager
	log      *slog.Logger
}

func NewSessionHandler(sessions *session.Manager, log *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		log:      log,
	}
}

// UpdateSessionRequest is the body of PUT /api/session. Omitted fields are left as is.
type UpdateSessionRequest struct {
	Tab   *string `json:"tab,omitempty"`
	Query *string `json:"query,omitempty"`
}

// GetSession handles GET /api/session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	var snap session.Snapshot
	h.sessions.Do(sessionID(r), func(s *session.Session) {
		snap = s.Snapshot()
	})
	WriteJSON(w, http.StatusOK, snap, h.log)
}

// UpdateSession handles PUT /api/session
func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var req UpdateSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Warn("failed to decode session request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	var (
		snap session.Snapshot
		err  error
	)
	h.sessions.Do(sessionID(r), func(s *session.Session) {
		if req.Tab != nil {
			if err = s.SetTab(*req.Tab); err != nil {
				return
			}
		}
		if req.Query != nil {
			s.Query = *req.Query
		}
		snap = s.Snapshot()
	})

	if err != nil {
		if errors.Is(err, session.ErrUnknownTab) {
			WriteError(w, http.StatusBadRequest, "Unknown tab", h.log)
			return
		}
		h.log.Error("failed to update session", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, snap, h.log)
}
