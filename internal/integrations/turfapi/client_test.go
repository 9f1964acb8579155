package turfapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/pkg/types"
)

type fakeSession struct {
	token string
	saved string
}

func (f *fakeSession) Token() string { return f.token }
func (f *fakeSession) SaveToken(token string) error {
	f.saved = token
	f.token = token
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc, session *fakeSession) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	if session == nil {
		session = &fakeSession{}
	}
	return NewClient(server.URL, 5*time.Second, session, nil, noopLogger{})
}

func TestLogin_PersistsTokenOn200(t *testing.T) {
	session := &fakeSession{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user@turf.io", req.Email)

		_ = json.NewEncoder(w).Encode(map[string]string{"token": "issued.jwt.token"})
	}, session)

	envelope, err := client.Login(context.Background(), LoginRequest{Email: "user@turf.io", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, envelope.Status)
	assert.Equal(t, "issued.jwt.token", envelope.Data.Token)
	assert.Equal(t, "issued.jwt.token", session.saved)
}

func TestLogin_NormalizedEnvelopeOn401(t *testing.T) {
	session := &fakeSession{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}, session)

	envelope, err := client.Login(context.Background(), LoginRequest{Email: "user@turf.io", Password: "wrong"})
	require.NoError(t, err, "non-2xx auth responses are data, not transport errors")

	assert.Equal(t, http.StatusUnauthorized, envelope.Status)
	assert.Equal(t, "Invalid credentials", envelope.Data.Message)
	assert.Empty(t, session.saved)
}

func TestRegister_Envelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "registered"})
	}, nil)

	envelope, err := client.Register(context.Background(), RegisterRequest{
		FullName: "New Player", Email: "new@turf.io", Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, envelope.Status)
	assert.Equal(t, "registered", envelope.Data.Message)
}

func TestBearerHeader_AttachedOnlyWithToken(t *testing.T) {
	var gotAuth string
	var gotRequestID string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode(turfListResponse{})
	}

	t.Run("with token", func(t *testing.T) {
		client := newTestClient(t, handler, &fakeSession{token: "tkn"})
		_, err := client.GetAllTurfs(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer tkn", gotAuth)
		assert.NotEmpty(t, gotRequestID)
	})

	t.Run("without token the header is omitted", func(t *testing.T) {
		client := newTestClient(t, handler, &fakeSession{})
		_, err := client.GetAllTurfs(context.Background())
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})
}

func TestGetTurfByID(t *testing.T) {
	capacity := 14
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/turfs/turf-by-id/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(turfByIDResponse{
			StatusCode: 200,
			Turf: &turfPayload{
				ID: 7, TurfName: "Arena One", TurfType: "Football",
				TurfPrice: 1200, Capacity: &capacity, Available: true,
			},
		})
	}, nil)

	turf, err := client.GetTurfByID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), turf.ID)
	assert.Equal(t, "Arena One", turf.Name)
	assert.Equal(t, float64(1200), turf.PricePerHour)
	assert.Equal(t, 14, turf.MaxPlayers())
	assert.True(t, turf.IsBookable())
}

func TestSearchAvailableTurfs_QueryParamsAndMapping(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/turfs/available-turfs-by-date-and-type", r.URL.Path)
		assert.Equal(t, "2026-09-12", r.URL.Query().Get("bookingDate"))
		assert.Equal(t, "06:00-08:00", r.URL.Query().Get("bookingTime"))
		assert.Equal(t, "Football", r.URL.Query().Get("turfType"))
		_ = json.NewEncoder(w).Encode(turfListResponse{
			TurfList: []turfPayload{{ID: 1, TurfName: "Arena One", TurfType: "Football", Available: true}},
		})
	}, nil)

	date, _ := time.Parse(domain.DateFormat, "2026-09-12")
	turfs, err := client.SearchAvailableTurfs(context.Background(), date, types.TimeSlot("06:00-08:00"), "Football")
	require.NoError(t, err)
	require.Len(t, turfs, 1)
	assert.Equal(t, "Arena One", turfs[0].Name)
}

func TestSearchAvailableTurfs_404MapsToNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "no turfs for criteria"})
	}, nil)

	_, err := client.SearchAvailableTurfs(context.Background(), time.Now(), types.TimeSlot("06:00-08:00"), "Cricket")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "no turfs for criteria", BackendMessage(err))
}

func TestBackendMessage_KeepsColonsIntact(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "slot 06:00-08:00 is taken: try 08:00-10:00"})
	}, nil)

	_, err := client.BookTurf(context.Background(), 7, 42, BookTurfRequest{
		BookingDate: "2026-09-15", TimeSlot: "06:00-08:00", NumOfPlayers: 4, Duration: 2,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Equal(t, "slot 06:00-08:00 is taken: try 08:00-10:00", BackendMessage(err))
}

func TestBackendMessage_EmptyForNonBackendErrors(t *testing.T) {
	assert.Empty(t, BackendMessage(nil))
	assert.Empty(t, BackendMessage(context.Canceled))
}

func TestBookTurf_ConfirmationCodeVerbatim(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/book-turf/7/42", r.URL.Path)

		var req BookTurfRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2026-09-12", req.BookingDate)
		assert.Equal(t, "06:00-08:00", req.TimeSlot)
		assert.Equal(t, 10, req.NumOfPlayers)
		assert.Equal(t, 2, req.Duration)

		_ = json.NewEncoder(w).Encode(BookTurfResponse{
			StatusCode: 200, BookingID: 99, BookingConfirmationCode: "TRF-0001",
		})
	}, nil)

	resp, err := client.BookTurf(context.Background(), 7, 42, BookTurfRequest{
		BookingDate: "2026-09-12", TimeSlot: "06:00-08:00", NumOfPlayers: 10, Duration: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "TRF-0001", resp.BookingConfirmationCode)
}

func TestBookTurf_ConflictMapsToSlotTaken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "This turf is already booked for that slot"})
	}, nil)

	_, err := client.BookTurf(context.Background(), 7, 42, BookTurfRequest{})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestGetUserBookings_NormalizesLegacyStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/get-user-bookings/42", r.URL.Path)
		_ = json.NewEncoder(w).Encode(bookingListResponse{
			BookingList: []bookingPayload{
				{ID: 1, BookingConfirmationCode: "TRF-0001", BookingDate: "2026-09-12", TimeSlot: "06:00-08:00", Status: "BOOKED"},
				{ID: 2, BookingConfirmationCode: "TRF-0002", BookingDate: "2026-09-13", TimeSlot: "08:00-10:00", Status: "CANCELLED"},
			},
		})
	}, nil)

	bookings, err := client.GetUserBookings(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
	assert.True(t, bookings[0].CanBeCancelled())
	assert.Equal(t, domain.StatusCancelled, bookings[1].Status)
	assert.False(t, bookings[1].CanBeCancelled())
}

func TestServerErrorMapping(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, nil)

	_, err := client.GetAllTurfs(context.Background())
	assert.ErrorIs(t, err, ErrServer)
}

func TestAddTurf_MultipartFieldsAndPhoto(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/turfs/add", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Arena One", r.FormValue("turfName"))
		assert.Equal(t, "Football", r.FormValue("turfType"))
		assert.Equal(t, "1200", r.FormValue("turfPrice"))
		assert.Equal(t, "true", r.FormValue("available"))

		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "arena.jpg", header.Filename)

		w.WriteHeader(http.StatusOK)
	}, &fakeSession{token: "admin-token"})

	photo := bytesReader("fake-image-bytes")
	err := client.AddTurf(context.Background(), TurfForm{
		TurfName: "Arena One", TurfType: "Football", TurfPrice: 1200, Available: true,
	}, photo, "arena.jpg")
	require.NoError(t, err)
}

func bytesReader(s string) io.Reader {
	return strings.NewReader(s)
}

func TestCancelBooking(t *testing.T) {
	var called bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/bookings/cancel/99", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}, nil)

	require.NoError(t, client.CancelBooking(context.Background(), 99))
	assert.True(t, called)
}
