package localstore

import "errors"

var (
	// ErrKeyNotFound возвращается, когда значение по ключу отсутствует
	ErrKeyNotFound = errors.New("localstore: key not found")

	// ErrInternal возвращается при ошибках чтения/записи файла хранилища
	ErrInternal = errors.New("localstore: internal error")
)
