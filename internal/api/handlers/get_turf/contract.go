package get_turf

import (
	"context"

	"github.com/nusrx24/Turf-2025/internal/domain"
)

// TurfService интерфейс сервиса площадок
type TurfService interface {
	Detail(ctx context.Context, turfID int64) (*domain.Turf, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
