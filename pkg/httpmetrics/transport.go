package httpmetrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/nusrx24/Turf-2025/pkg/metrics"
)

type ctxKey struct{}

// WithOperation помечает контекст именем операции backend API
// Имя попадает в метрики исходящих запросов вместо сырого URL
func WithOperation(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ctxKey{}, name)
}

func operationFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(ctxKey{}).(string); ok && name != "" {
		return name
	}
	return "unknown"
}

// Transport обертка над http.RoundTripper, записывающая метрики
// исходящих запросов к backend API
type Transport struct {
	next      http.RoundTripper
	collector *metrics.Metrics
}

// Wrap оборачивает базовый RoundTripper (nil = http.DefaultTransport)
func Wrap(next http.RoundTripper, collector *metrics.Metrics) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Transport{next: next, collector: collector}
}

// RoundTrip выполняет запрос и записывает счетчик и длительность
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	operation := operationFromContext(req.Context())

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	elapsed := time.Since(start).Seconds()

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	t.collector.BackendRequestsTotal.WithLabelValues(operation, status).Inc()
	t.collector.BackendRequestDuration.WithLabelValues(operation).Observe(elapsed)

	return resp, err
}
