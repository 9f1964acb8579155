package list_bookings

import (
	"context"

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	ListAll(ctx context.Context, filter domain.BookingFilter) (*models.BookingListPage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
