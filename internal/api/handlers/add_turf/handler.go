package add_turf

import (
	"errors"
	"net/http"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
	"github.com/nusrx24/Turf-2025/internal/service/turfs"
)

const (
	msgInvalidForm    = "Please fill in all required turf fields."
	msgForbidden      = "You are not authorized to perform this action."
	msgSessionExpired = "Session expired. Please login again."
	msgTurfAdded      = "Turf added successfully."
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

// Handle POST /api/v1/admin/turfs (multipart/form-data)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	form, photo, photoName, err := handlers.ParseTurfForm(r)
	if err != nil {
		h.logger.Warn("POST /admin/turfs - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	if photo != nil {
		defer photo.Close()
	}

	if err := h.service.Add(r.Context(), form, photo, photoName); err != nil {
		switch {
		case errors.Is(err, turfs.ErrInvalidInput):
			h.logger.Warn("POST /admin/turfs - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidForm)

		case errors.Is(err, turfapi.ErrForbidden):
			h.logger.Warn("POST /admin/turfs - Backend denied the operation")
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, turfapi.ErrUnauthorized):
			h.logger.Warn("POST /admin/turfs - Token rejected by backend")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("POST /admin/turfs - Failed to add turf: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/turfs - Turf added: name=%q", form.TurfName)
	handlers.RespondJSON(w, http.StatusCreated, map[string]string{"message": msgTurfAdded})
}
