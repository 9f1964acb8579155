package find_booking

import (
	"context"

	"github.com/nusrx24/Turf-2025/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	GetByCode(ctx context.Context, code string) (*models.BookingView, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
