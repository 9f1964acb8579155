package cancel_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/internal/service/bookings"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CancelByID(ctx context.Context, bookingID, userID int64) error {
	args := m.Called(ctx, bookingID, userID)
	return args.Error(0)
}

func (m *mockService) CancelAsAdmin(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

type stubProfile struct {
	user *domain.User
	err  error
}

func (s *stubProfile) GetUserProfile(context.Context) (*domain.User, error) {
	return s.user, s.err
}

type stubSession struct {
	admin bool
}

func (s *stubSession) IsAdmin() bool { return s.admin }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doCancel(h *Handler, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}", h.Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_UserCancelsOwnBooking(t *testing.T) {
	svc := &mockService{}
	svc.On("CancelByID", mock.Anything, int64(3), int64(7)).Return(nil)
	profile := &stubProfile{user: &domain.User{ID: 7}}
	h := NewHandler(svc, profile, &stubSession{}, noopLogger{})

	rec := doCancel(h, "/bookings/3")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
	svc.AssertNotCalled(t, "CancelAsAdmin")
}

func TestHandle_AdminCancelsAnyBooking(t *testing.T) {
	svc := &mockService{}
	svc.On("CancelAsAdmin", mock.Anything, int64(3)).Return(nil)
	h := NewHandler(svc, &stubProfile{}, &stubSession{admin: true}, noopLogger{})

	rec := doCancel(h, "/bookings/3")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
	svc.AssertNotCalled(t, "CancelByID")
}

func TestHandle_AlreadyCancelled(t *testing.T) {
	svc := &mockService{}
	svc.On("CancelByID", mock.Anything, int64(2), int64(7)).Return(bookings.ErrCannotCancel)
	profile := &stubProfile{user: &domain.User{ID: 7}}
	h := NewHandler(svc, profile, &stubSession{}, noopLogger{})

	rec := doCancel(h, "/bookings/2")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var parsed struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&parsed))
	assert.Equal(t, "This booking has already been cancelled.", parsed.Message)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("CancelByID", mock.Anything, int64(99), int64(7)).Return(bookings.ErrBookingNotFound)
	profile := &stubProfile{user: &domain.User{ID: 7}}
	h := NewHandler(svc, profile, &stubSession{}, noopLogger{})

	rec := doCancel(h, "/bookings/99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidBookingID(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, &stubProfile{user: &domain.User{ID: 7}}, &stubSession{}, noopLogger{})

	rec := doCancel(h, "/bookings/abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "CancelByID")
	svc.AssertNotCalled(t, "CancelAsAdmin")
}
