package book_turf

import (
	"fmt"
	"time"

	"github.com/nusrx24/Turf-2025/internal/domain"
	bookUC "github.com/nusrx24/Turf-2025/internal/usecase/book_turf"
	"github.com/nusrx24/Turf-2025/pkg/types"
)

// OpenRequest HTTP request model открытия формы бронирования
type OpenRequest struct {
	TurfID int64 `json:"turfId"`
}

// QuoteHTTPRequest HTTP request model расчета стоимости
type QuoteHTTPRequest struct {
	BookingDate  string `json:"bookingDate"` // "2026-09-15"
	TimeSlot     string `json:"timeSlot"`
	NumOfPlayers int    `json:"numOfPlayers"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case.
// Пустая или нечитаемая дата дает нулевое время: валидацию выполняет flow.
func (r *QuoteHTTPRequest) ToUseCaseRequest() (bookUC.QuoteRequest, error) {
	var date time.Time
	if r.BookingDate != "" {
		parsed, err := time.Parse(domain.DateFormat, r.BookingDate)
		if err != nil {
			return bookUC.QuoteRequest{}, fmt.Errorf("parse booking date: %w", err)
		}
		date = parsed
	}

	return bookUC.QuoteRequest{
		Date:    date,
		Slot:    types.TimeSlot(r.TimeSlot),
		Players: r.NumOfPlayers,
	}, nil
}

// QuoteResponse HTTP response model рассчитанной стоимости
type QuoteResponse struct {
	BookingDate  string  `json:"bookingDate"`
	TimeSlot     string  `json:"timeSlot"`
	NumOfPlayers int     `json:"numOfPlayers"`
	Duration     int     `json:"duration"`
	TotalPrice   float64 `json:"totalPrice"`
}

// NewQuoteResponse конвертирует расчет use case в response
func NewQuoteResponse(q *bookUC.Quote) QuoteResponse {
	return QuoteResponse{
		BookingDate:  q.Date.Format(domain.DateFormat),
		TimeSlot:     q.Slot.String(),
		NumOfPlayers: q.Players,
		Duration:     q.Duration,
		TotalPrice:   q.TotalPrice,
	}
}

// SubmitResponse HTTP response model успешной отправки
type SubmitResponse struct {
	ConfirmationCode string `json:"bookingConfirmationCode"`
	Message          string `json:"message"`
}

// FlashView транзиентное сообщение для рендера
type FlashView struct {
	Text string `json:"text"`
	Kind string `json:"kind"` // "error" | "success"
}

// StateResponse HTTP response model текущего состояния процесса
type StateResponse struct {
	State            string     `json:"state"`
	ConfirmationCode string     `json:"bookingConfirmationCode,omitempty"`
	Message          *FlashView `json:"message,omitempty"`
}
