package list_bookings

import (
	"net/http"
	"strconv"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/internal/domain"
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

// Handle GET /api/v1/admin/bookings?code=&page=
// Админский список с фильтром по подстроке кода подтверждения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := domain.BookingFilter{
		Code: r.URL.Query().Get("code"),
		Page: 1,
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			filter.Page = page
		}
	}

	page, err := h.service.ListAll(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Listed %d bookings (page %d of %d)",
		len(page.Items), page.Page, page.TotalPages)
	handlers.RespondJSON(w, http.StatusOK, NewListBookingsResponse(page))
}
