package turfs

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("turf not found")

	// ErrInvalidInput возвращается при некорректных данных формы площадки
	ErrInvalidInput = errors.New("invalid turf form data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("turfs service: internal error")
)
