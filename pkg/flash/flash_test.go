package flash

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_SetAndAutoClear(t *testing.T) {
	b := NewBoard()
	b.Set(context.Background(), KindError, "Please select a future date.", 30*time.Millisecond)

	msg, kind, ok := b.Message()
	require.True(t, ok)
	assert.Equal(t, "Please select a future date.", msg)
	assert.Equal(t, KindError, kind)

	assert.Eventually(t, func() bool {
		_, _, ok := b.Message()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestBoard_NewMessageSurvivesOldTimer(t *testing.T) {
	b := NewBoard()
	b.Set(context.Background(), KindError, "first", 20*time.Millisecond)
	b.Set(context.Background(), KindSuccess, "second", 500*time.Millisecond)

	// Таймер первого сообщения не должен стереть второе
	time.Sleep(60 * time.Millisecond)
	msg, kind, ok := b.Message()
	require.True(t, ok)
	assert.Equal(t, "second", msg)
	assert.Equal(t, KindSuccess, kind)
}

func TestBoard_CancelledContextSkipsClear(t *testing.T) {
	b := NewBoard()
	ctx, cancel := context.WithCancel(context.Background())
	b.Set(ctx, KindSuccess, "confirmed", 20*time.Millisecond)
	cancel()

	// После отмены контекста отложенная очистка не срабатывает
	time.Sleep(60 * time.Millisecond)
	msg, _, ok := b.Message()
	assert.True(t, ok)
	assert.Equal(t, "confirmed", msg)
}

func TestBoard_ClearIsImmediateAndIdempotent(t *testing.T) {
	b := NewBoard()
	b.Set(context.Background(), KindError, "boom", 0)
	b.Clear()
	b.Clear()

	_, _, ok := b.Message()
	assert.False(t, ok)
}

func TestBoard_ZeroTTLNeverAutoClears(t *testing.T) {
	b := NewBoard()
	b.Set(context.Background(), KindSuccess, "sticky", 0)

	time.Sleep(30 * time.Millisecond)
	_, _, ok := b.Message()
	assert.True(t, ok)
}
