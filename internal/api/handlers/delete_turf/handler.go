package delete_turf

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
	msgNotFound       = "Turf not found."
	msgForbidden      = "You are not authorized to perform this action."
	msgSessionExpired = "Session expired. Please login again."
	msgTurfDeleted    = "Turf deleted successfully."
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

// Handle DELETE /api/v1/admin/turfs/{turfId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	turfID, err := strconv.ParseInt(vars["turfId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/turfs/{id} - Invalid turf ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTurfID)
		return
	}

	if err := h.service.Delete(r.Context(), turfID); err != nil {
		switch {
		case errors.Is(err, turfs.ErrTurfNotFound):
			h.logger.Warn("DELETE /admin/turfs/{id} - Turf not found: turf_id=%d", turfID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, turfapi.ErrForbidden):
			h.logger.Warn("DELETE /admin/turfs/{id} - Backend denied the operation: turf_id=%d", turfID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, turfapi.ErrUnauthorized):
			h.logger.Warn("DELETE /admin/turfs/{id} - Token rejected by backend")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		default:
			h.logger.Error("DELETE /admin/turfs/{id} - Failed to delete turf: turf_id=%d, error=%v", turfID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/turfs/{id} - Turf deleted: turf_id=%d", turfID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgTurfDeleted})
}
