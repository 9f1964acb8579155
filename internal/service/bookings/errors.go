package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается при попытке отменить уже отмененное бронирование
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCodeRequired возвращается при поиске с пустым кодом подтверждения
	ErrCodeRequired = errors.New("confirmation code is required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
