package search_turfs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
	"github.com/nusrx24/Turf-2025/pkg/types"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) SearchAvailableTurfs(ctx context.Context, date time.Time, slot types.TimeSlot, turfType string) ([]*domain.Turf, error) {
	args := m.Called(ctx, date, slot, turfType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Turf), args.Error(1)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

func newTestUseCase(gateway *mockGateway) *UseCase {
	uc := NewUseCase(gateway, noopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		Date:     testNow.AddDate(0, 0, 3),
		Slot:     "06:00-08:00",
		TurfType: "Football",
	}
}

func TestExecute_Success(t *testing.T) {
	gateway := &mockGateway{}
	want := []*domain.Turf{{ID: 1, Name: "Arena One", Type: "Football", Available: true}}
	gateway.On("SearchAvailableTurfs", mock.Anything, mock.Anything, types.TimeSlot("06:00-08:00"), "Football").
		Return(want, nil)

	got, err := newTestUseCase(gateway).Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	gateway.AssertExpectations(t)
}

func TestExecute_ValidationBlocksNetworkCall(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"missing date", func(r *Request) { r.Date = time.Time{} }, ErrDateRequired},
		{"past date", func(r *Request) { r.Date = testNow.AddDate(0, 0, -1) }, ErrPastDate},
		{"date beyond search window", func(r *Request) { r.Date = testNow.AddDate(0, 4, 0) }, ErrDateTooFar},
		{"missing slot", func(r *Request) { r.Slot = "" }, ErrSlotRequired},
		{"slot outside fixed set", func(r *Request) { r.Slot = "23:00-01:00" }, ErrSlotRequired},
		{"missing type", func(r *Request) { r.TurfType = "  " }, ErrTypeRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &mockGateway{}
			req := validRequest()
			tt.mutate(req)

			_, err := newTestUseCase(gateway).Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			gateway.AssertNotCalled(t, "SearchAvailableTurfs")
		})
	}
}

func TestExecute_TodayIsSearchable(t *testing.T) {
	gateway := &mockGateway{}
	gateway.On("SearchAvailableTurfs", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Turf{}, nil)

	req := validRequest()
	req.Date = testNow // сегодня - не прошедшая дата

	_, err := newTestUseCase(gateway).Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_BackendErrorsPassThrough(t *testing.T) {
	gateway := &mockGateway{}
	gateway.On("SearchAvailableTurfs", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, turfapi.ErrNotFound)

	_, err := newTestUseCase(gateway).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, turfapi.ErrNotFound)
}
