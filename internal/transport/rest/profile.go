package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ranklens/ranklens-backend/internal/domain"
	"github.com/ranklens/ranklens-backend/internal/service/profile"
)

type profileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*profile.View, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, input profile.UpdateSettingsInput) (*domain.Profile, error)
}

// ProfileHandler serves the current user's profile and settings.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type profileViewResponse struct {
	Profile   profileResponse `json:"profile"`
	LastQuery string          `json:"lastQuery,omitempty"`
}

type updateSettingsRequest struct {
	Language string `json:"language"`
	LiveMode bool   `json:"liveMode"`
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	view, err := h.svc.GetProfile(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileViewResponse{
		Profile:   toProfileResponse(view.Profile),
		LastQuery: view.LastQuery,
	})
}

// UpdateSettings handles PATCH /api/profile/settings.
func (h *ProfileHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.UpdateSettings(r.Context(), userID, profile.UpdateSettingsInput{
		Language: req.Language,
		LiveMode: req.LiveMode,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}
