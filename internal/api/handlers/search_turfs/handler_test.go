package search_turfs

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

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
	searchUC "github.com/nusrx24/Turf-2025/internal/usecase/search_turfs"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *searchUC.Request) ([]*domain.Turf, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Turf), args.Error(1)
}

type stubTurfService struct {
	types []string
}

func (s *stubTurfService) Types(context.Context) []string {
	return s.types
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func decodeMessage(t *testing.T, body *httptest.ResponseRecorder) string {
	t.Helper()
	var parsed struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(body.Body).Decode(&parsed))
	return parsed.Message
}

func TestHandle_ValidationMessages(t *testing.T) {
	tests := []struct {
		name   string
		ucErr  error
		want   string
		status int
	}{
		{"missing date", searchUC.ErrDateRequired, "Please select a date.", http.StatusBadRequest},
		{"past date", searchUC.ErrPastDate, "Please select a future date.", http.StatusBadRequest},
		{"date beyond window", searchUC.ErrDateTooFar, "Bookings can be made at most 3 months in advance.", http.StatusBadRequest},
		{"missing slot", searchUC.ErrSlotRequired, "Please select a time slot.", http.StatusBadRequest},
		{"missing type", searchUC.ErrTypeRequired, "Please select a turf type.", http.StatusBadRequest},
		{"no turfs", turfapi.ErrNotFound, "No turfs available for the selected date, time and type.", http.StatusNotFound},
		{"expired token", turfapi.ErrUnauthorized, "Session expired. Please login again.", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			h := NewHandler(uc, &stubTurfService{}, noopLogger{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/turfs/search",
				strings.NewReader(`{"bookingDate":"2026-09-15","bookingTime":"06:00-08:00","turfType":"Football"}`))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.want, decodeMessage(t, rec))
		})
	}
}

func TestHandle_UnparsableDateRejectedBeforeUseCase(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, &stubTurfService{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/turfs/search",
		strings.NewReader(`{"bookingDate":"15-09-2026","bookingTime":"06:00-08:00","turfType":"Football"}`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute")
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{}
	found := []*domain.Turf{{ID: 1, Name: "Arena One", Type: "Football", PricePerHour: 500, Available: true}}
	uc.On("Execute", mock.Anything, mock.Anything).Return(found, nil)
	h := NewHandler(uc, &stubTurfService{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/turfs/search",
		strings.NewReader(`{"bookingDate":"2026-09-15","bookingTime":"06:00-08:00","turfType":"Football"}`))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var parsed SearchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&parsed))
	require.Len(t, parsed.Turfs, 1)
	assert.Equal(t, "Arena One", parsed.Turfs[0].TurfName)
	assert.Equal(t, float64(1000), parsed.Turfs[0].PricePerSlot, "price covers the fixed two-hour slot")
}

func TestHandleTypes(t *testing.T) {
	h := NewHandler(&mockUseCase{}, &stubTurfService{types: []string{"Football", "Cricket"}}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/turfs/types", nil)
	rec := httptest.NewRecorder()

	h.HandleTypes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var parsed TypesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&parsed))
	assert.Equal(t, []string{"Football", "Cricket"}, parsed.TurfTypes)
	assert.Len(t, parsed.TimeSlots, 8)
	assert.Equal(t, "06:00-08:00", parsed.TimeSlots[0])
	assert.Equal(t, "20:00-22:00", parsed.TimeSlots[7])
}
