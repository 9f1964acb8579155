package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/internal/infra/localstore"
)

const (
	keyToken = "token"
	keyRole  = "role"
)

// Session клиентская сессия: непрозрачный токен + выведенный из него флаг роли.
// Инвариант: флаг роли никогда не используется без наличия токена -
// отсутствие токена означает "не аутентифицирован" независимо от
// устаревшего значения роли в хранилище.
//
// Роль выводится декодированием claims токена БЕЗ проверки подписи.
// Это исключительно подсказка для UI, а не граница безопасности:
// авторизацию выполняет backend на каждом запросе.
type Session struct {
	store Storage
	log   Logger
}

// New создает сессию поверх переданного хранилища
func New(store Storage, log Logger) *Session {
	return &Session{store: store, log: log}
}

// SaveToken сохраняет токен и выводит из его claims флаг роли.
// Если claims не декодируются или роли нет, сессия остается
// аутентифицированной, но без роли (role-gated UI скрыт).
func (s *Session) SaveToken(token string) error {
	if err := s.store.Set(keyToken, token); err != nil {
		return fmt.Errorf("session: save token: %w", err)
	}

	role := deriveRole(token)
	if role == "" {
		s.log.Warn("Session: token has no decodable role claim, role-gated UI stays hidden")
		// Стираем возможное устаревшее значение
		if err := s.store.Delete(keyRole); err != nil {
			return fmt.Errorf("session: clear stale role: %w", err)
		}
		return nil
	}

	if err := s.store.Set(keyRole, role); err != nil {
		return fmt.Errorf("session: save role: %w", err)
	}
	s.log.Info("Session: authenticated with role=%s", role)
	return nil
}

// Token возвращает сохраненный токен (пустая строка = нет токена)
func (s *Session) Token() string {
	token, err := s.store.Get(keyToken)
	if err != nil {
		if !errors.Is(err, localstore.ErrKeyNotFound) {
			s.log.Error("Session: failed to read token: %v", err)
		}
		return ""
	}
	return token
}

// IsAuthenticated возвращает true тогда и только тогда, когда токен присутствует
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// IsAdmin возвращает true, если есть токен и сохраненная роль ADMIN
func (s *Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.role() == string(domain.RoleAdmin)
}

// IsUser возвращает true, если есть токен и сохраненная роль USER
func (s *Session) IsUser() bool {
	return s.IsAuthenticated() && s.role() == string(domain.RoleUser)
}

// Logout очищает токен и флаг роли. Идемпотентен.
func (s *Session) Logout() error {
	if err := s.store.Delete(keyToken, keyRole); err != nil {
		return fmt.Errorf("session: logout: %w", err)
	}
	s.log.Info("Session: logged out")
	return nil
}

func (s *Session) role() string {
	role, err := s.store.Get(keyRole)
	if err != nil {
		return ""
	}
	return role
}

// deriveRole декодирует claims токена без проверки подписи и возвращает
// "ADMIN", если среди ролей есть ADMIN, иначе "USER" при наличии ролей,
// иначе пустую строку
func deriveRole(token string) string {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return ""
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	rawRoles, ok := claims["roles"].([]interface{})
	if !ok || len(rawRoles) == 0 {
		return ""
	}

	hasAny := false
	for _, raw := range rawRoles {
		role, ok := raw.(string)
		if !ok {
			continue
		}
		hasAny = true
		if role == string(domain.RoleAdmin) {
			return string(domain.RoleAdmin)
		}
	}
	if hasAny {
		return string(domain.RoleUser)
	}
	return ""
}
