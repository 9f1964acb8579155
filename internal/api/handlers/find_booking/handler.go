package find_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/internal/service/bookings"
)

const (
	msgCodeRequired = "Please enter a confirmation code."
	msgNotFound     = "No booking found for this confirmation code."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/find/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]

	view, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrCodeRequired):
			h.logger.Warn("GET /bookings/find/{code} - Empty confirmation code")
			handlers.RespondBadRequest(w, msgCodeRequired)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/find/{code} - Booking not found: code=%q", code)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/find/{code} - Failed to find booking: code=%q, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/find/{code} - Booking found: booking_id=%d", view.Booking.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewBookingView(view.Booking))
}
