package register

import (
	"context"

	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
)

// AuthGateway интерфейс API gateway для регистрации
type AuthGateway interface {
	Register(ctx context.Context, req turfapi.RegisterRequest) (*turfapi.Envelope, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
