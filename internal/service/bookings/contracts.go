package bookings

import (
	"context"

	"github.com/nusrx24/Turf-2025/internal/domain"
)

// Gateway интерфейс API gateway для операций с бронированиями
type Gateway interface {
	GetAllBookings(ctx context.Context) ([]*domain.Booking, error)
	GetUserBookings(ctx context.Context, userID int64) ([]*domain.Booking, error)
	GetBookingByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
