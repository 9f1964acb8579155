package domain

// Booking defaults
const (
	// DefaultMaxPlayers потолок числа игроков, когда у площадки не задана вместимость
	DefaultMaxPlayers = 20

	// BookingDurationHours фиксированная длительность бронирования (двухчасовые слоты)
	BookingDurationHours = 2

	// MaxAdvanceBookingMonths как далеко вперед можно искать доступность
	MaxAdvanceBookingMonths = 3
)

// Pagination defaults
const (
	DefaultPageSize = 5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultTurfTypes используется как запасной список, когда backend
// не отдает справочник типов площадок
var DefaultTurfTypes = []string{
	"Football", "Cricket", "Basketball", "Tennis", "Badminton", "Volleyball",
	"Hockey", "Rugby", "Baseball", "Soccer", "Futsal", "Multi-Purpose",
}
