package logout

// Session доступ к завершению текущей сессии
type Session interface {
	Logout() error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
