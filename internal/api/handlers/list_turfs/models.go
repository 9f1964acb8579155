package list_turfs

import (
	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/internal/service/turfs/models"
)

// ListTurfsResponse HTTP response model: страница списка площадок
type ListTurfsResponse struct {
	Turfs      []handlers.TurfView `json:"turfs"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalItems int                 `json:"totalItems"`
	TotalPages int                 `json:"totalPages"`
}

// NewListTurfsResponse конвертирует страницу сервиса в response
func NewListTurfsResponse(page *models.TurfListPage) ListTurfsResponse {
	return ListTurfsResponse{
		Turfs:      handlers.NewTurfViews(page.Items),
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
	}
}
