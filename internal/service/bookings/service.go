package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
	"github.com/nusrx24/Turf-2025/internal/listquery"
	"github.com/nusrx24/Turf-2025/internal/service/bookings/models"
)

// Service view-слой операций с бронированиями: история пользователя,
// админский список с фильтром по коду подтверждения, поиск по коду и
// отмена. Процесс обслуживает одну сессию, поэтому сервис помнит
// последний фильтр: его смена сбрасывает страницу на первую.
type Service struct {
	gateway  Gateway
	pageSize int
	logger   Logger

	mu       sync.Mutex
	lastCode string
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(gateway Gateway, pageSize int, logger Logger) *Service {
	if pageSize < 1 {
		pageSize = domain.DefaultPageSize
	}
	return &Service{
		gateway:  gateway,
		pageSize: pageSize,
		logger:   logger,
	}
}

// ListAll возвращает страницу всех бронирований, отфильтрованных по
// подстроке кода подтверждения (регистронезависимо). Пустой фильтр
// пропускает все. Смена фильтра сбрасывает страницу на 1.
func (s *Service) ListAll(ctx context.Context, filter domain.BookingFilter) (*models.BookingListPage, error) {
	all, err := s.gateway.GetAllBookings(ctx)
	if err != nil {
		s.logger.Error("ListAll: failed to fetch bookings: %v", err)
		return nil, fmt.Errorf("fetch bookings: %w", err)
	}

	page := s.resolvePage(filter.Code, filter.Page)

	filtered := listquery.Filter(all, func(b *domain.Booking) bool {
		return listquery.CodeMatch(filter.Code, b.ConfirmationCode)
	})

	s.logger.Info("ListAll: %d of %d bookings match code=%q, page=%d", len(filtered), len(all), filter.Code, page)
	return &models.BookingListPage{
		Items:      models.ViewsFor(listquery.Page(filtered, page, s.pageSize)),
		Page:       page,
		PageSize:   s.pageSize,
		TotalItems: len(filtered),
		TotalPages: models.TotalPagesFor(len(filtered), s.pageSize),
	}, nil
}

// resolvePage возвращает номер страницы с учетом сброса при смене фильтра
func (s *Service) resolvePage(filterCode string, page int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if filterCode != s.lastCode {
		s.lastCode = filterCode
		return 1
	}
	if page < 1 {
		return 1
	}
	return page
}

// ListForUser возвращает историю бронирований пользователя
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]models.BookingView, error) {
	bookings, err := s.gateway.GetUserBookings(ctx, userID)
	if err != nil {
		s.logger.Error("ListForUser: failed to fetch bookings for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("fetch user bookings: %w", err)
	}
	return models.ViewsFor(bookings), nil
}

// GetByCode находит бронирование по коду подтверждения
func (s *Service) GetByCode(ctx context.Context, code string) (*models.BookingView, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCodeRequired
	}

	booking, err := s.gateway.GetBookingByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, turfapi.ErrNotFound) {
			s.logger.Warn("GetByCode: booking code=%q not found", code)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByCode: failed to fetch booking code=%q: %v", code, err)
		return nil, fmt.Errorf("fetch booking: %w", err)
	}
	return &models.BookingView{Booking: booking, CanCancel: booking.CanBeCancelled()}, nil
}

// Cancel отменяет бронирование. Уже отмененное бронирование отклоняется
// до обращения к backend.
func (s *Service) Cancel(ctx context.Context, booking *domain.Booking) error {
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d status=%s is not cancellable", booking.ID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.gateway.CancelBooking(ctx, booking.ID); err != nil {
		if errors.Is(err, turfapi.ErrNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", booking.ID, err)
		return fmt.Errorf("cancel booking: %w", err)
	}
	s.logger.Info("Cancel: booking id=%d code=%s cancelled", booking.ID, booking.ConfirmationCode)
	return nil
}

// CancelAsAdmin отменяет любое бронирование по идентификатору,
// предварительно получив его актуальный статус через общий список.
func (s *Service) CancelAsAdmin(ctx context.Context, bookingID int64) error {
	all, err := s.gateway.GetAllBookings(ctx)
	if err != nil {
		s.logger.Error("CancelAsAdmin: failed to fetch bookings: %v", err)
		return fmt.Errorf("fetch bookings: %w", err)
	}

	for _, b := range all {
		if b.ID == bookingID {
			return s.Cancel(ctx, b)
		}
	}
	s.logger.Warn("CancelAsAdmin: booking id=%d not found", bookingID)
	return ErrBookingNotFound
}

// CancelByID отменяет бронирование по идентификатору, предварительно
// получив его актуальный статус с сервера.
func (s *Service) CancelByID(ctx context.Context, bookingID int64, userID int64) error {
	bookings, err := s.gateway.GetUserBookings(ctx, userID)
	if err != nil {
		s.logger.Error("CancelByID: failed to fetch bookings for user id=%d: %v", userID, err)
		return fmt.Errorf("fetch user bookings: %w", err)
	}

	for _, b := range bookings {
		if b.ID == bookingID {
			return s.Cancel(ctx, b)
		}
	}
	s.logger.Warn("CancelByID: booking id=%d not found for user id=%d", bookingID, userID)
	return ErrBookingNotFound
}
