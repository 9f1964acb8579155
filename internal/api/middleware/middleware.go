package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/nusrx24/Turf-2025/internal/api/handlers"
	"github.com/nusrx24/Turf-2025/pkg/metrics"
)

const (
	msgLoginRequired = "Session expired. Please login again."
	msgAdminRequired = "You are not authorized to perform this action."
)

// Session доступ к состоянию текущей сессии.
// Роль - подсказка для UI: настоящую авторизацию выполняет backend.
type Session interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// Auth пропускает запрос только при наличии токена в сессии
func Auth(session Session) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.IsAuthenticated() {
				handlers.RespondUnauthorized(w, msgLoginRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Admin пропускает запрос только при установленном флаге роли ADMIN.
// Это UI-гейт для скрытия админских страниц, не контроль доступа:
// backend независимо проверяет права по токену.
func Admin(session Session) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.IsAdmin() {
				handlers.RespondForbidden(w, msgAdminRequired)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// statusRecorder перехватывает статус ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware собирает счетчики и гистограммы длительности HTTP запросов
func MetricsMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}

			m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
