package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
	"github.com/nusrx24/Turf-2025/internal/service/bookings"
)

const (
	msgInvalidBookingID = "Invalid booking ID."
	msgNotFound         = "Booking not found."
	msgCannotCancel     = "This booking has already been cancelled."
	msgSessionExpired   = "Session expired. Please login again."
	msgCancelled        = "Your booking has been cancelled."
)

type Handler struct {
	service BookingService
	profile ProfileGateway
	session Session
	logger  Logger
}

func NewHandler(service BookingService, profile ProfileGateway, session Session, logger Logger) *Handler {
	return &Handler{
		service: service,
		profile: profile,
		session: session,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
// Админ отменяет любое бронирование, пользователь - только свое.
// Уже отмененное бронирование отклоняется без сетевого вызова.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if h.session.IsAdmin() {
		err = h.service.CancelAsAdmin(r.Context(), bookingID)
	} else {
		err = h.cancelOwn(r, bookingID)
	}

	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("DELETE /bookings/{id} - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		case errors.Is(err, turfapi.ErrUnauthorized):
			h.logger.Warn("DELETE /bookings/{id} - Token rejected by backend")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to cancel booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgCancelled})
}

func (h *Handler) cancelOwn(r *http.Request, bookingID int64) error {
	user, err := h.profile.GetUserProfile(r.Context())
	if err != nil {
		return err
	}
	return h.service.CancelByID(r.Context(), bookingID, user.ID)
}
