package search_turfs

import (
	"context"
	"time"

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/pkg/types"
)

// Gateway интерфейс API gateway для поиска доступных площадок
type Gateway interface {
	SearchAvailableTurfs(ctx context.Context, date time.Time, slot types.TimeSlot, turfType string) ([]*domain.Turf, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
