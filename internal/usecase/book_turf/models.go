package book_turf

import (
	"time"

	"github.com/nusrx24/Turf-2025/pkg/types"
)

// State состояние процесса бронирования
type State string

const (
	StateBrowsing        State = "browsing"
	StateFormOpen        State = "form_open"
	StatePriceCalculated State = "price_calculated"
	StateSubmitting      State = "submitting"
	StateConfirmed       State = "confirmed"
	StateFailed          State = "failed"
)

// Config тайминги процесса бронирования
type Config struct {
	// MessageTTL сколько держится сообщение об ошибке до возврата в форму
	MessageTTL time.Duration
	// ConfirmDisplay сколько показывается подтверждение до возврата к списку
	ConfirmDisplay time.Duration
}

// QuoteRequest данные формы для расчета стоимости
type QuoteRequest struct {
	Date    time.Time
	Slot    types.TimeSlot
	Players int
}

// Quote рассчитанная стоимость бронирования
type Quote struct {
	Date       time.Time
	Slot       types.TimeSlot
	Players    int
	Duration   int     // часы
	TotalPrice float64 // цена за час x длительность слота
}
