package register

import (
	"net/http"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "Please fill in all fields."
	msgRegisterSuccess    = "Registration successful. Please login to continue."
	msgRegisterFailed     = "Registration failed. Please try again."
	msgServerError        = "Server error. Please try again later."
)

type Handler struct {
	gateway AuthGateway
	logger  Logger
}

func NewHandler(gateway AuthGateway, logger Logger) *Handler {
	return &Handler{
		gateway: gateway,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if !req.Validate() {
		h.logger.Warn("POST /auth/register - Missing required fields")
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	envelope, err := h.gateway.Register(r.Context(), req.ToGatewayRequest())
	if err != nil {
		h.logger.Error("POST /auth/register - Gateway call failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	switch {
	case envelope.Status == http.StatusOK || envelope.Status == http.StatusCreated:
		h.logger.Info("POST /auth/register - User registered: email=%s", req.Email)
		handlers.RespondJSON(w, http.StatusCreated, RegisterResponse{Message: msgRegisterSuccess})

	case envelope.Status >= http.StatusInternalServerError:
		h.logger.Error("POST /auth/register - Backend error (status=%d)", envelope.Status)
		handlers.RespondError(w, http.StatusBadGateway, msgServerError)

	default:
		// Backend сообщает причину (занятый email и т.п.) в message
		msg := envelope.Data.Message
		if msg == "" {
			msg = msgRegisterFailed
		}
		h.logger.Warn("POST /auth/register - Registration rejected (status=%d): %s", envelope.Status, msg)
		handlers.RespondError(w, envelope.Status, msg)
	}
}
