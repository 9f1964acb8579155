package login

import (
	"context"

	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
)

// AuthGateway интерфейс API gateway для аутентификации
type AuthGateway interface {
	Login(ctx context.Context, req turfapi.LoginRequest) (*turfapi.Envelope, error)
}

// Session доступ к роли, выведенной из сохраненного токена
type Session interface {
	IsAdmin() bool
	IsUser() bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
