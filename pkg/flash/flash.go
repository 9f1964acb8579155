package flash

import (
	"context"
	"sync"
	"time"
)

// Kind тип транзиентного сообщения
type Kind string

const (
	KindError   Kind = "error"
	KindSuccess Kind = "success"
)

// Board хранит одно транзиентное сообщение с автоудалением по таймеру.
// Таймер привязан к контексту владельца: если контекст отменен раньше TTL,
// отложенная очистка не срабатывает (нет обновлений состояния после того,
// как владелец исчез).
type Board struct {
	mu  sync.Mutex
	gen uint64

	msg  string
	kind Kind
}

// NewBoard создает пустую доску сообщений
func NewBoard() *Board {
	return &Board{}
}

// Set устанавливает сообщение и планирует его очистку через ttl.
// Повторный Set отменяет предыдущую запланированную очистку.
func (b *Board) Set(ctx context.Context, kind Kind, msg string, ttl time.Duration) {
	b.mu.Lock()
	b.gen++
	gen := b.gen
	b.msg = msg
	b.kind = kind
	b.mu.Unlock()

	if ttl <= 0 {
		return
	}

	timer := time.NewTimer(ttl)
	go func() {
		defer timer.Stop()
		select {
		case <-ctx.Done():
			// Владелец исчез: очистка не нужна
		case <-timer.C:
			b.clearIfCurrent(gen)
		}
	}()
}

func (b *Board) clearIfCurrent(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen == gen {
		b.msg = ""
		b.kind = ""
	}
}

// Message возвращает текущее сообщение (ok=false, если доска пуста)
func (b *Board) Message() (msg string, kind Kind, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.msg, b.kind, b.msg != ""
}

// Clear немедленно очищает сообщение
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.gen++
	b.msg = ""
	b.kind = ""
}
