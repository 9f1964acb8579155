package search_turfs

import (
	"fmt"
	"time"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/internal/domain"
	searchUC "github.com/nusrx24/Turf-2025/internal/usecase/search_turfs"
	"github.com/nusrx24/Turf-2025/pkg/types"
)

// SearchRequest HTTP request model: критерии формы поиска
type SearchRequest struct {
	Date     string `json:"bookingDate"` // "2026-09-15", пустая строка = не выбрана
	TimeSlot string `json:"bookingTime"`
	TurfType string `json:"turfType"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case.
// Нечитаемая дата превращается в нулевое время: валидацию выполняет use case.
func (r *SearchRequest) ToUseCaseRequest() (*searchUC.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, fmt.Errorf("parse booking date: %w", err)
		}
		date = parsed
	}

	return &searchUC.Request{
		Date:     date,
		Slot:     types.TimeSlot(r.TimeSlot),
		TurfType: r.TurfType,
	}, nil
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Turfs []handlers.TurfView `json:"turfs"`
}

// TypesResponse HTTP response model справочника типов
type TypesResponse struct {
	TurfTypes []string `json:"turfTypes"`
	TimeSlots []string `json:"timeSlots"`
}
