package list_bookings

import (
	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/internal/service/bookings/models"
)

// ListBookingsResponse HTTP response model: страница списка бронирований
type ListBookingsResponse struct {
	Bookings   []handlers.BookingView `json:"bookings"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"pageSize"`
	TotalItems int                    `json:"totalItems"`
	TotalPages int                    `json:"totalPages"`
}

// NewListBookingsResponse конвертирует страницу сервиса в response
func NewListBookingsResponse(page *models.BookingListPage) ListBookingsResponse {
	rendered := make([]handlers.BookingView, 0, len(page.Items))
	for _, v := range page.Items {
		rendered = append(rendered, handlers.NewBookingView(v.Booking))
	}
	return ListBookingsResponse{
		Bookings:   rendered,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}
