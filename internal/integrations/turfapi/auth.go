package turfapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nusrx24/Turf-2025/internal/domain"
)

// Register регистрирует пользователя.
// Возвращает нормализованный конверт {Status, Data}: вызывающий код ветвится
// по статусу, не-2xx здесь не является ошибкой транспорта.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Envelope, error) {
	httpReq, err := c.newJSONRequest(ctx, "register", http.MethodPost, "/auth/register", req)
	if err != nil {
		return nil, err
	}
	return c.doEnvelope(httpReq)
}

// Login аутентифицирует пользователя. При 200 с токеном gateway сохраняет
// токен в сессию; роль выводится из claims токена на стороне сессии.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Envelope, error) {
	httpReq, err := c.newJSONRequest(ctx, "login", http.MethodPost, "/auth/login", req)
	if err != nil {
		return nil, err
	}

	envelope, err := c.doEnvelope(httpReq)
	if err != nil {
		return nil, err
	}

	if envelope.Status == http.StatusOK && envelope.Data.Token != "" {
		if err := c.session.SaveToken(envelope.Data.Token); err != nil {
			c.log.Error("Login: failed to persist session token: %v", err)
			return nil, fmt.Errorf("%w: persist token: %v", ErrInternal, err)
		}
		c.log.Info("Login: session token persisted")
	}
	return envelope, nil
}

// doEnvelope выполняет запрос и возвращает конверт вне зависимости от статуса
func (c *Client) doEnvelope(req *http.Request) (*Envelope, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	envelope := &Envelope{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}
	if len(body) > 0 {
		// Тело может быть и не-JSON (например, plain text от прокси) - тогда
		// оставляем конверт с одним статусом
		_ = json.Unmarshal(bytes.TrimSpace(body), &envelope.Data)
	}
	return envelope, nil
}

// GetUserProfile получает профиль залогиненного пользователя
func (c *Client) GetUserProfile(ctx context.Context) (*domain.User, error) {
	req, err := c.newRequest(ctx, "get_profile", http.MethodGet, "/users/get-logged-in-profile-info", nil)
	if err != nil {
		return nil, err
	}

	var parsed userProfileResponse
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}
	if parsed.User == nil {
		return nil, fmt.Errorf("%w: profile payload missing user", ErrInvalidResponse)
	}
	return parsed.User.toDomain(), nil
}
