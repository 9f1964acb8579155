package domain

import (
	"time"

	"github.com/nusrx24/Turf-2025/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a turf reservation owned by the backend.
// The client only ever holds a transient copy fetched per view.
type Booking struct {
	ID               int64
	ConfirmationCode string
	UserID           int64
	TurfID           int64
	BookingDate      time.Time
	TimeSlot         types.TimeSlot
	DurationHours    int
	NumOfPlayers     int
	TotalAmount      float64
	Status           BookingStatus

	// Denormalized data for rendering booking history
	TurfName string
	TurfType string
}

// CanBeCancelled returns true if the cancel action may be offered.
// Уже отмененные бронирования отменить нельзя (кнопка не показывается).
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// BookingFilter фильтр списка бронирований для постраничного вывода
type BookingFilter struct {
	Code string // Подстрока кода подтверждения, регистронезависимо
	Page int    // 1-based номер страницы
}
