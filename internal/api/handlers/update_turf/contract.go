package update_turf

import (
	"context"
	"io"

	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
)

// TurfService интерфейс сервиса площадок
type TurfService interface {
	Update(ctx context.Context, turfID int64, form turfapi.TurfForm, photo io.Reader, photoName string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
