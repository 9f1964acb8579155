package domain

// Turf represents a bookable sports field fetched from the backend
type Turf struct {
	ID           int64
	Name         string
	Type         string // Football, Cricket, Futsal, ...
	PricePerHour float64
	Capacity     *int // Максимальное число игроков (может отсутствовать)
	Dimensions   *string
	Description  *string
	PhotoURL     *string
	Available    bool
}

// IsBookable returns true if the turf can be offered for booking
func (t *Turf) IsBookable() bool {
	return t.Available
}

// MaxPlayers returns the capacity or the default ceiling when capacity is absent
func (t *Turf) MaxPlayers() int {
	if t.Capacity != nil && *t.Capacity > 0 {
		return *t.Capacity
	}
	return DefaultMaxPlayers
}

// TurfFilter фильтр списка площадок для постраничного вывода
type TurfFilter struct {
	Type          string // Точное совпадение по типу, пустая строка = все типы
	AvailableOnly bool   // Показывать только площадки с флагом доступности
	Page          int    // 1-based номер страницы
}
