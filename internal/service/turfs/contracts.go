package turfs

import (
	"context"
	"io"

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
)

// Gateway интерфейс API gateway для операций с площадками
type Gateway interface {
	GetAllTurfs(ctx context.Context) ([]*domain.Turf, error)
	GetAllAvailableTurfs(ctx context.Context) ([]*domain.Turf, error)
	GetTurfByID(ctx context.Context, turfID int64) (*domain.Turf, error)
	GetTurfTypes(ctx context.Context) ([]string, error)
	AddTurf(ctx context.Context, form turfapi.TurfForm, photo io.Reader, photoName string) error
	UpdateTurf(ctx context.Context, turfID int64, form turfapi.TurfForm, photo io.Reader, photoName string) error
	DeleteTurf(ctx context.Context, turfID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
