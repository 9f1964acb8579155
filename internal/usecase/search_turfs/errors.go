package search_turfs

import "errors"

var (
	// ErrDateRequired возвращается, когда дата поиска не выбрана
	ErrDateRequired = errors.New("search_turfs: booking date is required")

	// ErrPastDate возвращается при поиске на прошедшую дату
	ErrPastDate = errors.New("search_turfs: booking date is in the past")

	// ErrDateTooFar возвращается, когда дата дальше окна поиска (3 месяца)
	ErrDateTooFar = errors.New("search_turfs: booking date is too far in the future")

	// ErrSlotRequired возвращается, когда слот не выбран или некорректен
	ErrSlotRequired = errors.New("search_turfs: time slot is required")

	// ErrTypeRequired возвращается, когда тип площадки не выбран
	ErrTypeRequired = errors.New("search_turfs: turf type is required")
)
