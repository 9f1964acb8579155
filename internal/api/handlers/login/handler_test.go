package login

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Login(ctx context.Context, req turfapi.LoginRequest) (*turfapi.Envelope, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*turfapi.Envelope), args.Error(1)
}

type stubSession struct {
	admin bool
	user  bool
}

func (s *stubSession) IsAdmin() bool { return s.admin }
func (s *stubSession) IsUser() bool  { return s.user }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doLogin(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func okEnvelope() *turfapi.Envelope {
	return &turfapi.Envelope{
		Status: http.StatusOK,
		Data:   turfapi.AuthData{Token: "token-abc"},
	}
}

func TestHandle_ReportsPersistedRole(t *testing.T) {
	tests := []struct {
		name    string
		session *stubSession
		want    string
	}{
		{"admin token", &stubSession{admin: true}, "ADMIN"},
		{"user token", &stubSession{user: true}, "USER"},
		{"token without role claim", &stubSession{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &mockGateway{}
			gateway.On("Login", mock.Anything, mock.Anything).Return(okEnvelope(), nil)
			h := NewHandler(gateway, tt.session, noopLogger{})

			rec := doLogin(h, `{"email":"a@b.c","password":"secret"}`)

			require.Equal(t, http.StatusOK, rec.Code)
			var parsed LoginResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&parsed))
			assert.Equal(t, tt.want, parsed.Role)
		})
	}
}

func TestHandle_InvalidCredentials(t *testing.T) {
	gateway := &mockGateway{}
	gateway.On("Login", mock.Anything, mock.Anything).Return(&turfapi.Envelope{
		Status: http.StatusUnauthorized,
	}, nil)
	h := NewHandler(gateway, &stubSession{}, noopLogger{})

	rec := doLogin(h, `{"email":"a@b.c","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var parsed struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&parsed))
	assert.Equal(t, "Invalid email or password.", parsed.Message)
}

func TestHandle_MissingFieldsRejectedBeforeGateway(t *testing.T) {
	gateway := &mockGateway{}
	h := NewHandler(gateway, &stubSession{}, noopLogger{})

	rec := doLogin(h, `{"email":"  ","password":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	gateway.AssertNotCalled(t, "Login")
}
