package models

import "github.com/nusrx24/Turf-2025/internal/domain"

// BookingView бронирование, подготовленное для отображения.
// CanCancel управляет видимостью кнопки отмены: для отмененных
// бронирований действие не предлагается.
type BookingView struct {
	Booking   *domain.Booking
	CanCancel bool
}

// BookingListPage одна страница отфильтрованного списка бронирований
type BookingListPage struct {
	Items      []BookingView
	Page       int // 1-based, после возможного сброса фильтром
	PageSize   int
	TotalItems int // размер отфильтрованной последовательности
	TotalPages int
}

// TotalPagesFor вычисляет число страниц для totalItems элементов
func TotalPagesFor(totalItems, pageSize int) int {
	if pageSize < 1 || totalItems <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// ViewsFor оборачивает бронирования в view-модели с флагом отмены
func ViewsFor(bookings []*domain.Booking) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, BookingView{Booking: b, CanCancel: b.CanBeCancelled()})
	}
	return views
}
