package update_turf

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
	"github.com/nusrx24/Turf-2025/internal/service/turfs"
)

const (
	msgInvalidTurfID  = "Invalid turf ID."
	msgInvalidForm    = "Please fill in all required turf fields."
	msgNotFound       = "Turf not found."
	msgForbidden      = "You are not authorized to perform this action."
	msgSessionExpired = "Session expired. Please login again."
	msgTurfUpdated    = "Turf updated successfully."
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

// Handle PUT /api/v1/admin/turfs/{turfId} (multipart/form-data)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	turfID, err := strconv.ParseInt(vars["turfId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/turfs/{id} - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	form, photo, photoName, err := handlers.ParseTurfForm(r)
	if err != nil {
		h.logger.Warn("PUT /admin/turfs/{id} - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	if photo != nil {
		defer photo.Close()
	}

	if err := h.service.Update(r.Context(), turfID, form, photo, photoName); err != nil {
		switch {
		case errors.Is(err, turfs.ErrInvalidInput):
			h.logger.Warn("PUT /admin/turfs/{id} - Validation failed: turf_id=%d, error=%v", turfID, err)
			handlers.RespondBadRequest(w, msgInvalidForm)

		case errors.Is(err, turfs.ErrTurfNotFound):
			h.logger.Warn("PUT /admin/turfs/{id} - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, turfapi.ErrForbidden):
			h.logger.Warn("PUT /admin/turfs/{id} - Backend denied the operation: turf_id=%d", turfID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, turfapi.ErrUnauthorized):
			h.logger.Warn("PUT /admin/turfs/{id} - Token rejected by backend")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("PUT /admin/turfs/{id} - Failed to update turf: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/turfs/{id} - Turf updated: turf_id=%d", turfID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgTurfUpdated})
}
