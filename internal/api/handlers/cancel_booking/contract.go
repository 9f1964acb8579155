package cancel_booking

import (
	"context"

	"github.com/nusrx24/Turf-2025/internal/domain"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	CancelByID(ctx context.Context, bookingID, userID int64) error
	CancelAsAdmin(ctx context.Context, bookingID int64) error
}

// ProfileGateway интерфейс API gateway для профиля пользователя
type ProfileGateway interface {
	GetUserProfile(ctx context.Context) (*domain.User, error)
}

// Session доступ к флагу роли текущей сессии
type Session interface {
	IsAdmin() bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
