package turfapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nusrx24/Turf-2025/pkg/httpmetrics"
)

// Client gateway к backend REST API: один метод на операцию, ровно один
// сетевой вызов на метод. Прикладывает bearer-токен из сессии, когда он есть;
// без токена заголовок опускается и backend сам отвечает ошибкой авторизации.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    SessionStore
	log        Logger
}

// NewClient создает новый экземпляр gateway-клиента.
// transport может быть nil (будет использован http.DefaultTransport).
func NewClient(baseURL string, timeout time.Duration, session SessionStore, transport http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		session: session,
		log:     log,
	}
}

// newRequest собирает запрос: контекст помечается именем операции для метрик,
// добавляются X-Request-ID и bearer-токен (если сессия аутентифицирована)
func (c *Client) newRequest(ctx context.Context, operation, method, path string, body io.Reader) (*http.Request, error) {
	ctx = httpmetrics.WithOperation(ctx, operation)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// newJSONRequest собирает запрос с JSON-телом
func (c *Client) newJSONRequest(ctx context.Context, operation, method, path string, payload interface{}) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, operation, method, path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do выполняет запрос; не-200 статусы транслируются в sentinel-ошибки
// с сообщением backend (или generic fallback)
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// backendError несет sentinel статуса вместе с сообщением backend,
// чтобы сообщение доставалось без разбора строки ошибки
type backendError struct {
	sentinel error
	message  string
}

func (e *backendError) Error() string {
	return e.sentinel.Error() + ": " + e.message
}

func (e *backendError) Unwrap() error {
	return e.sentinel
}

// statusError мапит статус-код в sentinel-ошибку пакета
func (c *Client) statusError(resp *http.Response) error {
	msg := c.backendMessage(resp)

	var sentinel error
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		sentinel = ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		sentinel = ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		sentinel = ErrSlotTaken
	case resp.StatusCode >= 500:
		sentinel = fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	default:
		sentinel = fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}
	return &backendError{sentinel: sentinel, message: msg}
}

// backendMessage достает message из тела ошибки, если backend его прислал
func (c *Client) backendMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return http.StatusText(resp.StatusCode)
	}

	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return http.StatusText(resp.StatusCode)
}

// BackendMessage возвращает сообщение backend из ошибки gateway
// (пустая строка, если ошибка пришла не от backend)
func BackendMessage(err error) string {
	var be *backendError
	if errors.As(err, &be) {
		return be.message
	}
	return ""
}
