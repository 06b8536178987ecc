package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mistore/storefront/internal/models"
	"github.com/mistore/storefront/internal/session"
)

// NotificationHandler exposes the notification panel
type NotificationHandler struct {
	sessions *session.Manager
	log      *slog.Logger
}

func NewNotificationHandler(sessions *session.Manager, log *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		sessions: sessions,
		log:      log,
	}
}

// NotificationsResponse is the rendered notification panel
type NotificationsResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}

func renderNotifications(s *session.Session) NotificationsResponse {
	return NotificationsResponse{
		Notifications: s.Notifications.List(),
		UnreadCount:   s.Notifications.UnreadCount(),
	}
}

// ListNotifications handles GET /api/notifications
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	var resp NotificationsResponse
	h.sessions.Do(sessionID(r), func(s *session.Session) {
		resp = renderNotifications(s)
	})
	WriteJSON(w, http.StatusOK, resp, h.log)
}

// MarkRead handles POST /api/notifications/{notificationId}/read
// Unknown and already read ids are accepted.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "notificationId")

	var resp NotificationsResponse
	h.sessions.Do(sessionID(r), func(s *session.Session) {
		s.Notifications.MarkRead(id)
		resp = renderNotifications(s)
	})
	WriteJSON(w, http.StatusOK, resp, h.log)
}
