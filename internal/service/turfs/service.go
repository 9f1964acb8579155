package turfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
	"github.com/nusrx24/Turf-2025/internal/listquery"
	"github.com/nusrx24/Turf-2025/internal/service/turfs/models"
)

// Service view-слой операций с площадками: списки с клиентской фильтрацией
// и постраничным выводом, карточка площадки, справочник типов и админские
// мутации. Процесс обслуживает одну сессию, поэтому сервис помнит последний
// фильтр: его смена сбрасывает страницу на первую.
type Service struct {
	gateway  Gateway
	pageSize int
	logger   Logger

	mu        sync.Mutex
	lastType  string
	lastAvail bool
}

// NewService создает новый экземпляр сервиса площадок
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

// List возвращает страницу списка площадок, отфильтрованного по типу.
// Пустой тип пропускает все. AvailableOnly берет предфильтрованный по
// доступности список backend. Смена фильтра сбрасывает страницу на 1.
// Страницы за пределами диапазона дают пустой список, а не ошибку.
func (s *Service) List(ctx context.Context, filter domain.TurfFilter) (*models.TurfListPage, error) {
	fetch := s.gateway.GetAllTurfs
	if filter.AvailableOnly {
		fetch = s.gateway.GetAllAvailableTurfs
	}

	all, err := fetch(ctx)
	if err != nil {
		s.logger.Error("List: failed to fetch turfs: %v", err)
		return nil, fmt.Errorf("fetch turfs: %w", err)
	}

	page := s.resolvePage(filter)

	filtered := listquery.Filter(all, func(t *domain.Turf) bool {
		return listquery.ExactMatch(filter.Type, t.Type)
	})

	s.logger.Info("List: %d of %d turfs match type=%q, page=%d", len(filtered), len(all), filter.Type, page)
	return &models.TurfListPage{
		Items:      listquery.Page(filtered, page, s.pageSize),
		Page:       page,
		PageSize:   s.pageSize,
		TotalItems: len(filtered),
		TotalPages: models.TotalPagesFor(len(filtered), s.pageSize),
	}, nil
}

// resolvePage возвращает номер страницы с учетом сброса при смене фильтра
func (s *Service) resolvePage(filter domain.TurfFilter) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if filter.Type != s.lastType || filter.AvailableOnly != s.lastAvail {
		s.lastType = filter.Type
		s.lastAvail = filter.AvailableOnly
		return 1
	}
	if filter.Page < 1 {
		return 1
	}
	return filter.Page
}

// Detail возвращает карточку площадки
func (s *Service) Detail(ctx context.Context, turfID int64) (*domain.Turf, error) {
	turf, err := s.gateway.GetTurfByID(ctx, turfID)
	if err != nil {
		if errors.Is(err, turfapi.ErrNotFound) {
			s.logger.Warn("Detail: turf id=%d not found", turfID)
			return nil, ErrTurfNotFound
		}
		s.logger.Error("Detail: failed to fetch turf id=%d: %v", turfID, err)
		return nil, fmt.Errorf("fetch turf: %w", err)
	}
	return turf, nil
}

// Types возвращает справочник типов площадок.
// При недоступности backend возвращает дефолтный список - форма поиска
// должна оставаться рабочей.
func (s *Service) Types(ctx context.Context) []string {
	types, err := s.gateway.GetTurfTypes(ctx)
	if err != nil || len(types) == 0 {
		s.logger.Warn("Types: falling back to default turf types: %v", err)
		return append([]string(nil), domain.DefaultTurfTypes...)
	}
	return types
}

// Add создает площадку (админская операция)
func (s *Service) Add(ctx context.Context, form turfapi.TurfForm, photo io.Reader, photoName string) error {
	if err := validateForm(form); err != nil {
		s.logger.Warn("Add: invalid turf form: %v", err)
		return err
	}

	if err := s.gateway.AddTurf(ctx, form, photo, photoName); err != nil {
		s.logger.Error("Add: failed to add turf %q: %v", form.TurfName, err)
		return fmt.Errorf("add turf: %w", err)
	}
	s.logger.Info("Add: turf %q created", form.TurfName)
	return nil
}

// Update обновляет площадку (админская операция)
func (s *Service) Update(ctx context.Context, turfID int64, form turfapi.TurfForm, photo io.Reader, photoName string) error {
	if err := validateForm(form); err != nil {
		s.logger.Warn("Update: invalid turf form for id=%d: %v", turfID, err)
		return err
	}

	if err := s.gateway.UpdateTurf(ctx, turfID, form, photo, photoName); err != nil {
		if errors.Is(err, turfapi.ErrNotFound) {
			return ErrTurfNotFound
		}
		s.logger.Error("Update: failed to update turf id=%d: %v", turfID, err)
		return fmt.Errorf("update turf: %w", err)
	}
	s.logger.Info("Update: turf id=%d updated", turfID)
	return nil
}

// Delete удаляет площадку (админская операция, терминальная)
func (s *Service) Delete(ctx context.Context, turfID int64) error {
	if err := s.gateway.DeleteTurf(ctx, turfID); err != nil {
		if errors.Is(err, turfapi.ErrNotFound) {
			return ErrTurfNotFound
		}
		s.logger.Error("Delete: failed to delete turf id=%d: %v", turfID, err)
		return fmt.Errorf("delete turf: %w", err)
	}
	s.logger.Info("Delete: turf id=%d deleted", turfID)
	return nil
}

// validateForm проверяет обязательные поля формы площадки
func validateForm(form turfapi.TurfForm) error {
	if strings.TrimSpace(form.TurfName) == "" {
		return fmt.Errorf("%w: turf name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(form.TurfType) == "" {
		return fmt.Errorf("%w: turf type is required", ErrInvalidInput)
	}
	if form.TurfPrice <= 0 {
		return fmt.Errorf("%w: price per hour must be positive", ErrInvalidInput)
	}
	if form.Capacity != nil && *form.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	return nil
}
