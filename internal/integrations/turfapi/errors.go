package turfapi

import "errors"

var (
	// ErrUnauthorized возвращается при 401 от backend (токен отсутствует или истек)
	ErrUnauthorized = errors.New("turfapi: unauthorized")

	// ErrForbidden возвращается при 403 от backend
	ErrForbidden = errors.New("turfapi: forbidden")

	// ErrNotFound возвращается при 404 от backend
	ErrNotFound = errors.New("turfapi: not found")

	// ErrSlotTaken возвращается при 409 - слот уже занят
	ErrSlotTaken = errors.New("turfapi: slot already booked")

	// ErrServer возвращается при 5xx от backend
	ErrServer = errors.New("turfapi: server error")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("turfapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от backend
	ErrInvalidResponse = errors.New("turfapi client: invalid response")
)
