package models

import "github.com/nusrx24/Turf-2025/internal/domain"

// TurfListPage одна страница отфильтрованного списка площадок
type TurfListPage struct {
	Items      []*domain.Turf
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
