package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeSlotFromString(t *testing.T) {
	t.Run("valid slot from the fixed set", func(t *testing.T) {
		slot, err := NewTimeSlotFromString("06:00-08:00")
		require.NoError(t, err)
		assert.Equal(t, TimeSlot("06:00-08:00"), slot)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		slot, err := NewTimeSlotFromString("  18:00-20:00 ")
		require.NoError(t, err)
		assert.Equal(t, TimeSlot("18:00-20:00"), slot)
	})

	t.Run("rejects malformed value", func(t *testing.T) {
		_, err := NewTimeSlotFromString("6am-8am")
		assert.ErrorIs(t, err, ErrInvalidSlotFormat)
	})

	t.Run("rejects well-formed slot outside the fixed set", func(t *testing.T) {
		_, err := NewTimeSlotFromString("07:00-09:00")
		assert.ErrorIs(t, err, ErrUnknownSlot)
	})

	t.Run("rejects empty value", func(t *testing.T) {
		_, err := NewTimeSlotFromString("")
		assert.Error(t, err)
	})
}

func TestTimeSlot_AllSlotsAreValid(t *testing.T) {
	for _, slot := range AllSlots {
		assert.NoError(t, slot.Validate(), "slot %s", slot)
	}
}

func TestTimeSlot_StartEnd(t *testing.T) {
	slot := TimeSlot("14:00-16:00")
	assert.Equal(t, "14:00", slot.Start())
	assert.Equal(t, "16:00", slot.End())
}

func TestTimeSlot_IsZero(t *testing.T) {
	assert.True(t, TimeSlot("").IsZero())
	assert.False(t, TimeSlot("06:00-08:00").IsZero())
}
