package book_turf

import "errors"

var (
	// ErrTurfNotAvailable возвращается при попытке открыть форму для недоступной площадки
	ErrTurfNotAvailable = errors.New("book_turf: turf is not available for booking")

	// ErrInvalidState возвращается при вызове операции из недопустимого состояния
	ErrInvalidState = errors.New("book_turf: operation not allowed in current state")

	// ErrDateRequired возвращается, когда дата бронирования не выбрана
	ErrDateRequired = errors.New("book_turf: booking date is required")

	// ErrInvalidSlot возвращается, когда слот не входит в фиксированный набор
	ErrInvalidSlot = errors.New("book_turf: invalid time slot")

	// ErrInvalidPlayers возвращается при неположительном числе игроков
	ErrInvalidPlayers = errors.New("book_turf: number of players must be positive")

	// ErrTooManyPlayers возвращается, когда число игроков превышает вместимость площадки
	ErrTooManyPlayers = errors.New("book_turf: number of players exceeds turf capacity")

	// ErrSubmitFailed возвращается, когда backend отклонил бронирование
	ErrSubmitFailed = errors.New("book_turf: booking submission failed")
)
