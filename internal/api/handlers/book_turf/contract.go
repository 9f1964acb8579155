package book_turf

import (
	"context"

	"github.com/nusrx24/Turf-2025/internal/domain"
	bookUC "github.com/nusrx24/Turf-2025/internal/usecase/book_turf"
	"github.com/nusrx24/Turf-2025/pkg/flash"
)

// BookingFlow интерфейс процесса бронирования
type BookingFlow interface {
	Open(turf *domain.Turf, userID int64) error
	CalculatePrice(ctx context.Context, req bookUC.QuoteRequest) (*bookUC.Quote, error)
	Submit(ctx context.Context) (string, error)
	Close()
	State() bookUC.State
	ConfirmationCode() string
}

// TurfService интерфейс сервиса площадок
type TurfService interface {
	Detail(ctx context.Context, turfID int64) (*domain.Turf, error)
}

// ProfileGateway интерфейс API gateway для профиля пользователя
type ProfileGateway interface {
	GetUserProfile(ctx context.Context) (*domain.User, error)
}

// Messages доступ к текущему транзиентному сообщению
type Messages interface {
	Message() (string, flash.Kind, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
