package delete_turf

import "context"

// TurfService интерфейс сервиса площадок
type TurfService interface {
	Delete(ctx context.Context, turfID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
