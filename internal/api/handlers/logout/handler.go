package logout

import (
	"net/http"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
)

const msgLoggedOut = "You have been logged out."

type Handler struct {
	session Session
	logger  Logger
}

func NewHandler(session Session, logger Logger) *Handler {
	return &Handler{
		session: session,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Идемпотентно: повторный выход без сессии тоже успешен
	if err := h.session.Logout(); err != nil {
		h.logger.Error("POST /auth/logout - Failed to clear session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/logout - Session cleared")
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgLoggedOut})
}
