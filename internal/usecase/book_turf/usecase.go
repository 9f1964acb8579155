package book_turf

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/nusrx24/Turf-2025/internal/domain"
	"github.com/nusrx24/Turf-2025/internal/integrations/turfapi"
	"github.com/nusrx24/Turf-2025/pkg/flash"
)

const (
	msgGenericFailure = "Booking failed. Please try again."
	msgSlotTaken      = "This time slot is no longer available. Please select a different time."
	msgServerError    = "Server error. Please try again later."
	msgSessionExpired = "Session expired. Please login again."
)

// Flow линейный процесс бронирования одной площадки:
// Browsing -> FormOpen -> PriceCalculated -> Submitting -> Confirmed | Failed.
// Отправка повторяется только вручную, автоматических ретраев нет.
// Все отложенные переходы привязаны к контексту владельца формы.
type Flow struct {
	gateway Gateway
	board   *flash.Board
	cfg     Config
	log     Logger

	mu    sync.Mutex
	gen   uint64 // инвалидирует устаревшие отложенные переходы
	state State

	turf   *domain.Turf
	userID int64
	quote  *Quote

	confirmationCode string
}

// NewFlow создает процесс в состоянии Browsing
func NewFlow(gateway Gateway, board *flash.Board, cfg Config, log Logger) *Flow {
	return &Flow{
		gateway: gateway,
		board:   board,
		cfg:     cfg,
		log:     log,
		state:   StateBrowsing,
	}
}

// State возвращает текущее состояние процесса
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// ConfirmationCode возвращает код подтверждения после успешной отправки
func (f *Flow) ConfirmationCode() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmationCode
}

// Open открывает форму бронирования для площадки.
// Недоступная площадка отклоняется без смены состояния.
func (f *Flow) Open(turf *domain.Turf, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateBrowsing {
		return fmt.Errorf("%w: state=%s", ErrInvalidState, f.state)
	}
	if !turf.IsBookable() {
		f.log.Warn("BookTurf: turf id=%d is not available, form not opened", turf.ID)
		return ErrTurfNotAvailable
	}

	f.gen++
	f.state = StateFormOpen
	f.turf = turf
	f.userID = userID
	f.quote = nil
	f.confirmationCode = ""
	f.log.Info("BookTurf: form opened for turf id=%d user id=%d", turf.ID, userID)
	return nil
}

// CalculatePrice валидирует форму и рассчитывает стоимость:
// цена за час x фиксированная длительность слота (2 часа).
// При ошибке валидации состояние остается FormOpen, сообщение
// самоочищается через MessageTTL.
func (f *Flow) CalculatePrice(ctx context.Context, req QuoteRequest) (*Quote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateFormOpen && f.state != StatePriceCalculated {
		return nil, fmt.Errorf("%w: state=%s", ErrInvalidState, f.state)
	}

	if err := validateQuote(f.turf, req); err != nil {
		f.log.Warn("BookTurf: quote validation failed for turf id=%d: %v", f.turf.ID, err)
		f.board.Set(ctx, flash.KindError, quoteErrorMessage(err), f.cfg.MessageTTL)
		return nil, err
	}

	quote := &Quote{
		Date:       req.Date,
		Slot:       req.Slot,
		Players:    req.Players,
		Duration:   domain.BookingDurationHours,
		TotalPrice: f.turf.PricePerHour * domain.BookingDurationHours,
	}

	f.state = StatePriceCalculated
	f.quote = quote
	f.log.Info("BookTurf: price calculated for turf id=%d: %.2f", f.turf.ID, quote.TotalPrice)
	return quote, nil
}

// Submit отправляет бронирование через gateway.
// Успех переводит в Confirmed и планирует возврат в Browsing;
// любая ошибка переводит в Failed и планирует возврат в FormOpen.
func (f *Flow) Submit(ctx context.Context) (string, error) {
	f.mu.Lock()
	if f.state != StatePriceCalculated {
		f.mu.Unlock()
		return "", fmt.Errorf("%w: state=%s", ErrInvalidState, f.state)
	}

	turf := f.turf
	userID := f.userID
	quote := f.quote
	f.state = StateSubmitting
	f.mu.Unlock()

	f.log.Info("BookTurf: submitting booking turf id=%d user id=%d date=%s slot=%s",
		turf.ID, userID, quote.Date.Format(domain.DateFormat), quote.Slot)

	resp, err := f.gateway.BookTurf(ctx, turf.ID, userID, turfapi.BookTurfRequest{
		BookingDate:  quote.Date.Format(domain.DateFormat),
		TimeSlot:     quote.Slot.String(),
		NumOfPlayers: quote.Players,
		Duration:     quote.Duration,
	})
	if err != nil {
		f.fail(ctx, err)
		return "", fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.state = StateConfirmed
	f.confirmationCode = resp.BookingConfirmationCode
	f.mu.Unlock()

	f.log.Info("BookTurf: booking confirmed, code=%s", resp.BookingConfirmationCode)
	f.board.Set(ctx, flash.KindSuccess,
		fmt.Sprintf("Booking successful! Confirmation code: %s. An SMS and email of your booking details have been sent to you.",
			resp.BookingConfirmationCode),
		f.cfg.ConfirmDisplay)

	// После показа подтверждения возвращаемся к списку площадок
	f.schedule(ctx, gen, f.cfg.ConfirmDisplay, func() {
		f.reset(StateBrowsing)
	})
	return resp.BookingConfirmationCode, nil
}

// fail переводит процесс в Failed и планирует возврат в FormOpen,
// чтобы пользователь мог повторить отправку вручную
func (f *Flow) fail(ctx context.Context, cause error) {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.state = StateFailed
	f.mu.Unlock()

	msg := submitErrorMessage(cause)
	f.log.Error("BookTurf: submission failed: %v", cause)
	f.board.Set(ctx, flash.KindError, msg, f.cfg.MessageTTL)

	f.schedule(ctx, gen, f.cfg.MessageTTL, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.gen == gen && f.state == StateFailed {
			f.state = StateFormOpen
		}
	})
}

// Close закрывает форму и возвращает процесс в Browsing
func (f *Flow) Close() {
	f.reset(StateBrowsing)
}

func (f *Flow) reset(to State) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gen++
	f.state = to
	f.turf = nil
	f.userID = 0
	f.quote = nil
}

// schedule выполняет fn через delay, если контекст владельца еще жив
// и состояние не было изменено другим переходом
func (f *Flow) schedule(ctx context.Context, gen uint64, delay time.Duration, fn func()) {
	if delay <= 0 {
		return
	}
	timer := time.NewTimer(delay)
	go func() {
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
			f.mu.Lock()
			current := f.gen
			f.mu.Unlock()
			if current == gen {
				fn()
			}
		}
	}()
}

// quoteErrorMessage сообщение формы для ошибки валидации
func quoteErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrDateRequired), errors.Is(err, ErrInvalidSlot):
		return "Please select booking date and time slot."
	case errors.Is(err, ErrInvalidPlayers):
		return "Please enter a valid number of players."
	case errors.Is(err, ErrTooManyPlayers):
		return "Number of players exceeds the turf capacity."
	default:
		return msgGenericFailure
	}
}

// submitErrorMessage сообщение для ошибки отправки: специфичные статусы
// backend получают свои тексты, остальное - сообщение сервера или fallback
func submitErrorMessage(err error) string {
	switch {
	case errors.Is(err, turfapi.ErrSlotTaken):
		return msgSlotTaken
	case errors.Is(err, turfapi.ErrUnauthorized):
		return msgSessionExpired
	case errors.Is(err, turfapi.ErrServer):
		return msgServerError
	default:
		if msg := turfapi.BackendMessage(err); msg != "" {
			return msg
		}
		return msgGenericFailure
	}
}
