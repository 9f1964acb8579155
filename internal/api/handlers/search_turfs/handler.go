package search_turfs

import (
	"errors"
	"net/http"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
	searchUC "github.com/nusrx24/Turf-2025/internal/usecase/search_turfs"
	"github.com/nusrx24/Turf-2025/pkg/types"
)

const (
	msgInvalidRequestBody = "Please select date, time slot and turf type."
	msgDateRequired       = "Please select a date."
	msgFutureDate         = "Please select a future date."
	msgDateTooFar         = "Bookings can be made at most 3 months in advance."
	msgSlotRequired       = "Please select a time slot."
	msgTypeRequired       = "Please select a turf type."
	msgNoTurfs            = "No turfs available for the selected date, time and type."
	msgSessionExpired     = "Session expired. Please login again."
	msgServerError        = "Server error. Please try again later."
)

type Handler struct {
	useCase SearchUseCase
	turfs   TurfService
	logger  Logger
}

func NewHandler(useCase SearchUseCase, turfs TurfService, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		turfs:   turfs,
		logger:  logger,
	}
}

// Handle POST /api/v1/turfs/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /turfs/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /turfs/search - Unparsable date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	found, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, searchUC.ErrDateRequired):
			handlers.RespondBadRequest(w, msgDateRequired)

		case errors.Is(err, searchUC.ErrPastDate):
			handlers.RespondBadRequest(w, msgFutureDate)

		case errors.Is(err, searchUC.ErrDateTooFar):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, searchUC.ErrSlotRequired):
			handlers.RespondBadRequest(w, msgSlotRequired)

		case errors.Is(err, searchUC.ErrTypeRequired):
			handlers.RespondBadRequest(w, msgTypeRequired)

		case errors.Is(err, turfapi.ErrNotFound):
			h.logger.Info("POST /turfs/search - No turfs for date=%s slot=%s type=%s",
				req.Date, req.TimeSlot, req.TurfType)
			handlers.RespondNotFound(w, msgNoTurfs)

		case errors.Is(err, turfapi.ErrUnauthorized):
			h.logger.Warn("POST /turfs/search - Token rejected by backend")
			handlers.RespondUnauthorized(w, msgSessionExpired)

		case errors.Is(err, turfapi.ErrServer):
			h.logger.Error("POST /turfs/search - Backend error: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgServerError)

		default:
			h.logger.Error("POST /turfs/search - Search failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /turfs/search - Found %d turfs", len(found))
	handlers.RespondJSON(w, http.StatusOK, SearchResponse{Turfs: handlers.NewTurfViews(found)})
}

// HandleTypes GET /api/v1/turfs/types
// Справочник для селектов формы поиска. Сервис сам подставляет
// дефолтный список типов при недоступности backend.
func (h *Handler) HandleTypes(w http.ResponseWriter, r *http.Request) {
	slots := make([]string, 0, len(types.AllSlots))
	for _, slot := range types.AllSlots {
		slots = append(slots, slot.String())
	}

	handlers.RespondJSON(w, http.StatusOK, TypesResponse{
		TurfTypes: h.turfs.Types(r.Context()),
		TimeSlots: slots,
	})
}
