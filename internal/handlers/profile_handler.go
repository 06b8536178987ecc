package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mistore/storefront/internal/service"
)

// ProfileHandler serves the profile tab
type ProfileHandler struct {
	service *service.ProfileService
	log     *slog.Logger
}

func NewProfileHandler(service *service.ProfileService, log *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log,
	}
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetProfile(r.Context())
	if err != nil {
		h.log.Error("failed to get profile", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, profile, h.log)
}
