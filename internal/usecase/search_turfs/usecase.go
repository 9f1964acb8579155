package search_turfs

import (
	"context"
	"fmt"

	"github.com/nusrx24/Turf-2025/internal/domain"
)

// UseCase use case поиска доступных площадок по дате, слоту и типу
type UseCase struct {
	gateway      Gateway
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(gateway Gateway, logger Logger) *UseCase {
	return &UseCase{
		gateway:      gateway,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute валидирует критерии и выполняет поиск.
// Ошибки валидации возвращаются до какого-либо сетевого вызова.
func (uc *UseCase) Execute(ctx context.Context, req *Request) ([]*domain.Turf, error) {
	uc.logger.Info("SearchTurfs: date=%s slot=%s type=%s",
		req.Date.Format(domain.DateFormat), req.Slot, req.TurfType)

	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("SearchTurfs: validation failed: %v", err)
		return nil, err
	}

	turfs, err := uc.gateway.SearchAvailableTurfs(ctx, req.Date, req.Slot, req.TurfType)
	if err != nil {
		uc.logger.Warn("SearchTurfs: backend call failed: %v", err)
		return nil, fmt.Errorf("search available turfs: %w", err)
	}

	uc.logger.Info("SearchTurfs: found %d turfs", len(turfs))
	return turfs, nil
}
