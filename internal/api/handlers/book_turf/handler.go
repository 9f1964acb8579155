package book_turf

import (
	"errors"
	"net/http"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
	"github.com/nusrx24/Turf-2025/internal/service/turfs"
	bookUC "github.com/nusrx24/Turf-2025/internal/usecase/book_turf"
)

const (
	msgInvalidRequestBody = "Invalid booking form data."
	msgTurfNotFound       = "Turf not found."
	msgTurfUnavailable    = "This turf is currently unavailable for booking."
	msgInvalidState       = "This action is not available right now."
	msgSessionExpired     = "Session expired. Please login again."
	msgDateAndSlot        = "Please select booking date and time slot."
	msgValidPlayers       = "Please enter a valid number of players."
	msgTooManyPlayers     = "Number of players exceeds the turf capacity."
	msgBookingFailed      = "Booking failed. Please try again."
)

// Handler управляет формой бронирования: один процесс обслуживает одну
// сессию, поэтому у него одна текущая форма
type Handler struct {
	flow    BookingFlow
	turfs   TurfService
	profile ProfileGateway
	board   Messages
	logger  Logger
}

func NewHandler(flow BookingFlow, turfs TurfService, profile ProfileGateway, board Messages, logger Logger) *Handler {
	return &Handler{
		flow:    flow,
		turfs:   turfs,
		profile: profile,
		board:   board,
		logger:  logger,
	}
}

// HandleOpen POST /api/v1/booking/open
func (h *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	var req OpenRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/open - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Профиль дает userID для последующей отправки
	user, err := h.profile.GetUserProfile(r.Context())
	if err != nil {
		if errors.Is(err, turfapi.ErrUnauthorized) {
			h.logger.Warn("POST /booking/open - Token rejected by backend")
			handlers.RespondUnauthorized(w, msgSessionExpired)
			return
		}
		h.logger.Error("POST /booking/open - Failed to fetch profile: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	turf, err := h.turfs.Detail(r.Context(), req.TurfID)
	if err != nil {
		if errors.Is(err, turfs.ErrTurfNotFound) {
			h.logger.Warn("POST /booking/open - Turf not found: turf_id=%d", req.TurfID)
			handlers.RespondNotFound(w, msgTurfNotFound)
			return
		}
		h.logger.Error("POST /booking/open - Failed to fetch turf: turf_id=%d, error=%v", req.TurfID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := h.flow.Open(turf, user.ID); err != nil {
		switch {
		case errors.Is(err, bookUC.ErrTurfNotAvailable):
			h.logger.Warn("POST /booking/open - Turf unavailable: turf_id=%d", req.TurfID)
			handlers.RespondConflict(w, msgTurfUnavailable)

		case errors.Is(err, bookUC.ErrInvalidState):
			h.logger.Warn("POST /booking/open - Invalid state: %v", err)
			handlers.RespondConflict(w, msgInvalidState)

		default:
			h.logger.Error("POST /booking/open - Failed to open form: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/open - Form opened: turf_id=%d, user_id=%d", req.TurfID, user.ID)
	handlers.RespondJSON(w, http.StatusOK, StateResponse{State: string(h.flow.State())})
}

// HandleQuote POST /api/v1/booking/quote
func (h *Handler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteHTTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /booking/quote - Unparsable date %q: %v", req.BookingDate, err)
		handlers.RespondBadRequest(w, msgDateAndSlot)
		return
	}

	quote, err := h.flow.CalculatePrice(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, bookUC.ErrDateRequired), errors.Is(err, bookUC.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgDateAndSlot)

		case errors.Is(err, bookUC.ErrInvalidPlayers):
			handlers.RespondBadRequest(w, msgValidPlayers)

		case errors.Is(err, bookUC.ErrTooManyPlayers):
			handlers.RespondBadRequest(w, msgTooManyPlayers)

		case errors.Is(err, bookUC.ErrInvalidState):
			h.logger.Warn("POST /booking/quote - Invalid state: %v", err)
			handlers.RespondConflict(w, msgInvalidState)

		default:
			h.logger.Error("POST /booking/quote - Failed to calculate price: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking/quote - Price calculated: %.2f", quote.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, NewQuoteResponse(quote))
}

// HandleSubmit POST /api/v1/booking/submit
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	code, err := h.flow.Submit(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, bookUC.ErrInvalidState):
			h.logger.Warn("POST /booking/submit - Invalid state: %v", err)
			handlers.RespondConflict(w, msgInvalidState)

		case errors.Is(err, bookUC.ErrSubmitFailed):
			// Причина уже переведена в пользовательское сообщение на доске
			msg := msgBookingFailed
			if text, _, ok := h.board.Message(); ok {
				msg = text
			}
			h.logger.Warn("POST /booking/submit - Submission failed: %v", err)
			handlers.RespondConflict(w, msg)

		default:
			h.logger.Error("POST /booking/submit - Failed to submit booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	msg := ""
	if text, _, ok := h.board.Message(); ok {
		msg = text
	}
	h.logger.Info("POST /booking/submit - Booking confirmed: code=%s", code)
	handlers.RespondJSON(w, http.StatusOK, SubmitResponse{ConfirmationCode: code, Message: msg})
}

// HandleClose DELETE /api/v1/booking
func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	h.flow.Close()
	h.logger.Info("DELETE /booking - Form closed")
	handlers.RespondJSON(w, http.StatusOK, StateResponse{State: string(h.flow.State())})
}

// HandleState GET /api/v1/booking
// Текущее состояние процесса и активное транзиентное сообщение
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	resp := StateResponse{
		State:            string(h.flow.State()),
		ConfirmationCode: h.flow.ConfirmationCode(),
	}
	if text, kind, ok := h.board.Message(); ok {
		resp.Message = &FlashView{Text: text, Kind: string(kind)}
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
