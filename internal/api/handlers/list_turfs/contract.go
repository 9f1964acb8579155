package list_turfs

import (
	"context"

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/internal/service/turfs/models"
)

// TurfService интерфейс сервиса площадок
type TurfService interface {
	List(ctx context.Context, filter domain.TurfFilter) (*models.TurfListPage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
