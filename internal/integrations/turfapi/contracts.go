package turfapi

// SessionStore доступ к сохраненному токену сессии.
// Gateway читает токен для bearer-заголовка и сохраняет его после логина.
type SessionStore interface {
	Token() string
	SaveToken(token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
