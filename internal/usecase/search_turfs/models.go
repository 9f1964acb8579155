package search_turfs

import (
	"time"

	"github.com/nusrx24/Turf-2025/pkg/types"
)

// Request критерии поиска доступных площадок
type Request struct {
	Date     time.Time      // Дата бронирования (без времени)
	Slot     types.TimeSlot // Слот из фиксированного набора
	TurfType string         // Тип площадки (точное совпадение)
}
