package list_user_bookings

import (
	"errors"
	"net/http"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
	"github.com/nusrx24/Turf-2025/internal/service/bookings/models"
)

const msgSessionExpired = "Session expired. Please login again."

type Handler struct {
	service BookingService
	profile ProfileGateway
	logger  Logger
}

func NewHandler(service BookingService, profile ProfileGateway, logger Logger) *Handler {
	return &Handler{
		service: service,
		profile: profile,
		logger:  logger,
	}
}

// Handle GET /api/v1/profile/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, err := h.profile.GetUserProfile(r.Context())
	if err != nil {
		if errors.Is(err, turfapi.ErrUnauthorized) {
			h.logger.Warn("GET /profile/bookings - Token rejected by backend")
			handlers.RespondUnauthorized(w, msgSessionExpired)
			return
		}
		h.logger.Error("GET /profile/bookings - Failed to fetch profile: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	views, err := h.service.ListForUser(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("GET /profile/bookings - Failed to list bookings: user_id=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /profile/bookings - Listed %d bookings: user_id=%d", len(views), user.ID)
	handlers.RespondJSON(w, http.StatusOK, newResponse(views))
}

type response struct {
	Bookings []handlers.BookingView `json:"bookings"`
}

func newResponse(views []models.BookingView) response {
	rendered := make([]handlers.BookingView, 0, len(views))
	for _, v := range views {
		rendered = append(rendered, handlers.NewBookingView(v.Booking))
	}
	return response{Bookings: rendered}
}
