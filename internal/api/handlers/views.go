package handlers

import (
	"github.com/nusrx24/Turf-2025/internal/domain"
)

// TurfView JSON представление площадки для view-слоя
type TurfView struct {
	ID           int64   `json:"id"`
	TurfName     string  `json:"turfName"`
	TurfType     string  `json:"turfType"`
	TurfPrice    float64 `json:"turfPrice"`
	Capacity     *int    `json:"capacity,omitempty"`
	Dimensions   *string `json:"dimensions,omitempty"`
	Description  *string `json:"description,omitempty"`
	PhotoURL     *string `json:"turfPhotoUrl,omitempty"`
	Available    bool    `json:"available"`
	MaxPlayers   int     `json:"maxPlayers"`
	PricePerSlot float64 `json:"pricePerSlot"`
}

// NewTurfView конвертирует доменную площадку в view-модель.
// PricePerSlot - итоговая цена за фиксированный двухчасовой слот.
func NewTurfView(t *domain.Turf) TurfView {
	return TurfView{
		ID:           t.ID,
		TurfName:     t.Name,
		TurfType:     t.Type,
		TurfPrice:    t.PricePerHour,
		Capacity:     t.Capacity,
		Dimensions:   t.Dimensions,
		Description:  t.Description,
		PhotoURL:     t.PhotoURL,
		Available:    t.Available,
		MaxPlayers:   t.MaxPlayers(),
		PricePerSlot: t.PricePerHour * domain.BookingDurationHours,
	}
}

// NewTurfViews конвертирует список площадок
func NewTurfViews(turfs []*domain.Turf) []TurfView {
	views := make([]TurfView, 0, len(turfs))
	for _, t := range turfs {
		views = append(views, NewTurfView(t))
	}
	return views
}

// BookingView JSON представление бронирования.
// CanCancel управляет видимостью действия отмены: для уже отмененных
// бронирований действие не рендерится.
type BookingView struct {
	ID               int64   `json:"id"`
	ConfirmationCode string  `json:"bookingConfirmationCode"`
	BookingDate      string  `json:"bookingDate"`
	TimeSlot         string  `json:"timeSlot"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	Duration         int     `json:"duration"`
	NumOfPlayers     int     `json:"numOfPlayers,omitempty"`
	TotalAmount      float64 `json:"totalAmount,omitempty"`
	Status           string  `json:"status"`
	TurfName         string  `json:"turfName,omitempty"`
	TurfType         string  `json:"turfType,omitempty"`
	CanCancel        bool    `json:"canCancel"`
}

// NewBookingView конвертирует доменное бронирование в view-модель
func NewBookingView(b *domain.Booking) BookingView {
	return BookingView{
		ID:               b.ID,
		ConfirmationCode: b.ConfirmationCode,
		BookingDate:      b.BookingDate.Format(domain.DateFormat),
		TimeSlot:         b.TimeSlot.String(),
		StartTime:        b.TimeSlot.Start(),
		EndTime:          b.TimeSlot.End(),
		Duration:         b.DurationHours,
		NumOfPlayers:     b.NumOfPlayers,
		TotalAmount:      b.TotalAmount,
		Status:           string(b.Status),
		TurfName:         b.TurfName,
		TurfType:         b.TurfType,
		CanCancel:        b.CanBeCancelled(),
	}
}
