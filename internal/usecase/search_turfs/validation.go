package search_turfs

import (
	"fmt"
	"strings"
	"time"

	"github.com/nusrx24/Turf-2025/internal/domain"
)

// validateRequest проверяет критерии поиска до любого сетевого вызова
func validateRequest(req *Request, now time.Time) error {
	if req.Date.IsZero() {
		return ErrDateRequired
	}

	if isDateInPast(req.Date, now) {
		return ErrPastDate
	}

	maxDate := dateOnly(now).AddDate(0, domain.MaxAdvanceBookingMonths, 0)
	if dateOnly(req.Date).After(maxDate) {
		return fmt.Errorf("%w: can only search %d months ahead", ErrDateTooFar, domain.MaxAdvanceBookingMonths)
	}

	if req.Slot.IsZero() {
		return ErrSlotRequired
	}
	if err := req.Slot.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrSlotRequired, err)
	}

	if strings.TrimSpace(req.TurfType) == "" {
		return ErrTypeRequired
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return dateOnly(date).Before(dateOnly(now))
}

// dateOnly обнуляет время, чтобы сравнивать только даты
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
