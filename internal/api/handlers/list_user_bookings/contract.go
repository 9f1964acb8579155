package list_user_bookings

import (
	"context"

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	ListForUser(ctx context.Context, userID int64) ([]models.BookingView, error)
}

// ProfileGateway интерфейс API gateway для профиля пользователя
type ProfileGateway interface {
	GetUserProfile(ctx context.Context) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
