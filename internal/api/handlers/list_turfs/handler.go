package list_turfs

import (
	"net/http"
	"strconv"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/internal/domain"
)

type Handler struct {
	service TurfService
	logger  Logger
}

func NewHandler(service TurfService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/turfs?type=&available=&page=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := domain.TurfFilter{
		Type:          r.URL.Query().Get("type"),
		AvailableOnly: r.URL.Query().Get("available") == "true",
		Page:          1,
	}
	if raw := r.URL.Query().Get("page"); raw != "" {
		// Некорректный номер страницы не ошибка, просто первая страница
		if page, err := strconv.Atoi(raw); err == nil {
			filter.Page = page
		}
	}

	page, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /turfs - Failed to list turfs: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /turfs - Listed %d turfs (page %d of %d)", len(page.Items), page.Page, page.TotalPages)
	handlers.RespondJSON(w, http.StatusOK, NewListTurfsResponse(page))
}
