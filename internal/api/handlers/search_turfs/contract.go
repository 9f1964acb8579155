package search_turfs

import (
	"context"

	"github.com/nusrx24/Turf-2025/internal/domain"
	searchUC "github.com/nusrx24/Turf-2025/internal/usecase/search_turfs"
)

// SearchUseCase интерфейс use case поиска доступных площадок
type SearchUseCase interface {
	Execute(ctx context.Context, req *searchUC.Request) ([]*domain.Turf, error)
}

// TurfService справочник типов площадок для формы поиска
type TurfService interface {
	Types(ctx context.Context) []string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
