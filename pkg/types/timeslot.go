package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// TimeSlot представляет фиксированный двухчасовой интервал в формате "HH:MM-HH:MM"
// Например: "06:00-08:00", "18:00-20:00"
type TimeSlot string

// SlotDurationHours длительность каждого слота в часах
const SlotDurationHours = 2

var slotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d-([01]\d|2[0-3]):[0-5]\d$`)

// AllSlots фиксированный набор доступных для бронирования слотов
// Порядок соответствует порядку отображения в форме поиска
var AllSlots = []TimeSlot{
	"06:00-08:00",
	"08:00-10:00",
	"10:00-12:00",
	"12:00-14:00",
	"14:00-16:00",
	"16:00-18:00",
	"18:00-20:00",
	"20:00-22:00",
}

var (
	// ErrInvalidSlotFormat возвращается при некорректном формате слота
	ErrInvalidSlotFormat = errors.New("invalid time slot format, expected HH:MM-HH:MM")

	// ErrUnknownSlot возвращается, когда слот не входит в фиксированный набор
	ErrUnknownSlot = errors.New("time slot is not in the allowed set")
)

// NewTimeSlotFromString парсит строку в TimeSlot с проверкой по фиксированному набору
func NewTimeSlotFromString(s string) (TimeSlot, error) {
	slot := TimeSlot(strings.TrimSpace(s))
	if err := slot.Validate(); err != nil {
		return "", err
	}
	return slot, nil
}

// Validate проверяет формат и принадлежность фиксированному набору
func (s TimeSlot) Validate() error {
	if !slotPattern.MatchString(string(s)) {
		return fmt.Errorf("%w: %q", ErrInvalidSlotFormat, string(s))
	}
	for _, known := range AllSlots {
		if s == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownSlot, string(s))
}

// IsZero возвращает true, если слот не задан
func (s TimeSlot) IsZero() bool {
	return s == ""
}

// Start возвращает время начала слота ("06:00-08:00" -> "06:00")
func (s TimeSlot) Start() string {
	if idx := strings.IndexByte(string(s), '-'); idx > 0 {
		return string(s)[:idx]
	}
	return string(s)
}

// End возвращает время окончания слота ("06:00-08:00" -> "08:00")
func (s TimeSlot) End() string {
	if idx := strings.IndexByte(string(s), '-'); idx > 0 {
		return string(s)[idx+1:]
	}
	return ""
}

func (s TimeSlot) String() string {
	return string(s)
}
