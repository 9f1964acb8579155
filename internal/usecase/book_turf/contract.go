package book_turf

import (
	"context"

	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
)

// Gateway интерфейс API gateway для отправки бронирования
type Gateway interface {
	BookTurf(ctx context.Context, turfID, userID int64, req turfapi.BookTurfRequest) (*turfapi.BookTurfResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
