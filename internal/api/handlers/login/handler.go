package login

import (
	"net/http"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/internal/domain"
)

const (
	msgInvalidRequestBody = "Please fill in all fields."
	msgInvalidCredentials = "Invalid email or password."
	msgLoginSuccess       = "Login successful."
	msgServerError        = "Server error. Please try again later."
)

type Handler struct {
	gateway AuthGateway
	session Session
	logger  Logger
}

func NewHandler(gateway AuthGateway, session Session, logger Logger) *Handler {
	return &Handler{
		gateway: gateway,
		session: session,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if !req.Validate() {
		h.logger.Warn("POST /auth/login - Missing credentials")
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	envelope, err := h.gateway.Login(r.Context(), req.ToGatewayRequest())
	if err != nil {
		h.logger.Error("POST /auth/login - Gateway call failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Не-2xx приходит в конверте, а не как ошибка транспорта
	switch {
	case envelope.Status == http.StatusOK && envelope.Data.Token != "":
		// Отдаем роль, реально сохраненную сессией: токен без читаемого
		// role-claim дает аутентифицированную сессию с пустой ролью
		role := ""
		switch {
		case h.session.IsAdmin():
			role = string(domain.RoleAdmin)
		case h.session.IsUser():
			role = string(domain.RoleUser)
		}
		h.logger.Info("POST /auth/login - Login successful, role=%q", role)
		handlers.RespondJSON(w, http.StatusOK, LoginResponse{Message: msgLoginSuccess, Role: role})

	case envelope.Status == http.StatusUnauthorized || envelope.Status == http.StatusNotFound:
		h.logger.Warn("POST /auth/login - Invalid credentials (status=%d)", envelope.Status)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)

	case envelope.Status >= http.StatusInternalServerError:
		h.logger.Error("POST /auth/login - Backend error (status=%d)", envelope.Status)
		handlers.RespondError(w, http.StatusBadGateway, msgServerError)

	default:
		msg := envelope.Data.Message
		if msg == "" {
			msg = msgInvalidCredentials
		}
		h.logger.Warn("POST /auth/login - Login rejected (status=%d): %s", envelope.Status, msg)
		handlers.RespondError(w, envelope.Status, msg)
	}
}
