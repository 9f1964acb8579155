package turfapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nusrx24/Turf-2025/internal/domain"
)

// BookTurf отправляет бронирование. Успех (200) возвращает код подтверждения,
// выданный сервером; 409 транслируется в ErrSlotTaken.
func (c *Client) BookTurf(ctx context.Context, turfID, userID int64, req BookTurfRequest) (*BookTurfResponse, error) {
	path := fmt.Sprintf("/bookings/book-turf/%d/%d", turfID, userID)
	httpReq, err := c.newJSONRequest(ctx, "book_turf", http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}

	var parsed BookTurfResponse
	if err := c.do(httpReq, &parsed); err != nil {
		return nil, err
	}
	if parsed.BookingConfirmationCode == "" {
		return nil, fmt.Errorf("%w: booking response missing confirmation code", ErrInvalidResponse)
	}
	return &parsed, nil
}

// GetAllBookings получает все бронирования (админский список)
func (c *Client) GetAllBookings(ctx context.Context) ([]*domain.Booking, error) {
	return c.fetchBookingList(ctx, "list_bookings", "/bookings/all")
}

// GetUserBookings получает историю бронирований пользователя
func (c *Client) GetUserBookings(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	path := fmt.Sprintf("/users/get-user-bookings/%d", userID)
	return c.fetchBookingList(ctx, "list_user_bookings", path)
}

func (c *Client) fetchBookingList(ctx context.Context, operation, path string) ([]*domain.Booking, error) {
	req, err := c.newRequest(ctx, operation, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var parsed bookingListResponse
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}

	bookings := make([]*domain.Booking, 0, len(parsed.BookingList))
	for i := range parsed.BookingList {
		bookings = append(bookings, parsed.BookingList[i].toDomain())
	}
	return bookings, nil
}

// GetBookingByConfirmationCode получает бронирование по коду подтверждения
func (c *Client) GetBookingByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error) {
	path := "/bookings/get-by-confirmation-code/" + code
	req, err := c.newRequest(ctx, "get_booking_by_code", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var parsed bookingByCodeResponse
	if err := c.do(req, &parsed); err != nil {
		return nil, err
	}
	if parsed.Booking == nil {
		return nil, fmt.Errorf("%w: booking payload missing", ErrInvalidResponse)
	}
	return parsed.Booking.toDomain(), nil
}

// CancelBooking отменяет бронирование
func (c *Client) CancelBooking(ctx context.Context, bookingID int64) error {
	path := fmt.Sprintf("/bookings/cancel/%d", bookingID)
	req, err := c.newRequest(ctx, "cancel_booking", http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
