package book_turf

import (
	"fmt"

	"github.com/nusrx24/Turf-2025/internal/domain"
)

// validateQuote проверяет данные формы перед расчетом стоимости
func validateQuote(turf *domain.Turf, req QuoteRequest) error {
	if req.Date.IsZero() {
		return ErrDateRequired
	}

	if req.Slot.IsZero() {
		return ErrInvalidSlot
	}
	if err := req.Slot.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	if req.Players < 1 {
		return ErrInvalidPlayers
	}
	if max := turf.MaxPlayers(); req.Players > max {
		return fmt.Errorf("%w: max %d players", ErrTooManyPlayers, max)
	}

	return nil
}
