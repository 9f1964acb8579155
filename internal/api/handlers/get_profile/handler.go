package get_profile

import (
	"errors"
	"net/http"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
)

const (
	msgSessionExpired = "Session expired. Please login again."
	msgNotFound       = "User profile not found."
)

type Handler struct {
	gateway ProfileGateway
	logger  Logger
}

func NewHandler(gateway ProfileGateway, logger Logger) *Handler {
	return &Handler{
		gateway: gateway,
		logger:  logger,
	}
}

// Handle GET /api/v1/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, err := h.gateway.GetUserProfile(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, turfapi.ErrUnauthorized):
			h.logger.Warn("GET /profile - Token rejected by backend")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, turfapi.ErrNotFound):
			h.logger.Warn("GET /profile - Profile not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /profile - Failed to fetch profile: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /profile - Profile retrieved: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusOK, NewProfileResponse(user))
}
