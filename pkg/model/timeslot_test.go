package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestClockTime(t *testing.T) {
	t.Run("parses and formats the wall clock", func(t *testing.T) {
		//**Arrange
		raw := "09:05"

		//**Act
		parsed, err := ParseClock(raw)

		//**Assert
		assert.NoError(t, err)
		assert.Equal(t, Clock(9, 5), parsed)
		assert.Equal(t, raw, parsed.String())
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		//**Act
		_, err := ParseClock("9 o'clock")

		//**Assert
		assert.Error(t, err)
	})
}

func TestSlotMenus(t *testing.T) {
	t.Run("accepts slots from the year menu", func(t *testing.T) {
		//**Arrange
		slot := &TimeSlot{Day: Monday, Start: Clock(9, 0), End: Clock(10, 30), Kind: SlotLecture}

		//**Assert
		assert.True(t, SlotAllowedForYear(2022, slot))
		assert.True(t, SlotAllowedForYear(2024, slot))
	})

	t.Run("rejects slots outside the year menu", func(t *testing.T) {
		//**Arrange
		slot := &TimeSlot{Day: Monday, Start: Clock(16, 30), End: Clock(18, 0), Kind: SlotLecture}

		//**Assert
		assert.True(t, SlotAllowedForYear(2021, slot))
		assert.False(t, SlotAllowedForYear(2022, slot))
	})

	t.Run("minor windows never qualify for a year menu", func(t *testing.T) {
		//**Arrange
		slot := &TimeSlot{Day: Monday, Start: Clock(18, 0), End: Clock(19, 30), Kind: SlotMinor}

		//**Assert
		assert.False(t, SlotAllowedForYear(2022, slot))
		assert.True(t, SlotAllowedForMinor(slot))
	})
}

func TestInLunchBand(t *testing.T) {
	t.Run("senior cohorts eat at noon", func(t *testing.T) {
		assert.True(t, InLunchBand(2022, Clock(12, 30)))
		assert.False(t, InLunchBand(2022, Clock(13, 30)))
		assert.False(t, InLunchBand(2022, Clock(12, 14))) // exclusive bound
	})

	t.Run("junior cohorts eat after one", func(t *testing.T) {
		assert.True(t, InLunchBand(2024, Clock(13, 30)))
		assert.False(t, InLunchBand(2024, Clock(12, 30)))
	})

	t.Run("unknown years have no lunch band", func(t *testing.T) {
		assert.False(t, InLunchBand(1999, Clock(13, 0)))
	})
}

func TestDefaultTimeSlots(t *testing.T) {
	//**Act
	slots := DefaultTimeSlots()

	//**Assert
	t.Run("covers every teaching day", func(t *testing.T) {
		days := lo.UniqBy(slots, func(s *TimeSlot) Day { return s.Day })
		assert.Len(t, days, len(Weekdays))
	})

	t.Run("ids are unique and monotonic", func(t *testing.T) {
		for i, slot := range slots {
			assert.Equal(t, int64(i+1), slot.ID)
		}
	})

	t.Run("contains the lab windows of every year", func(t *testing.T) {
		labs := lo.Filter(slots, func(s *TimeSlot, _ int) bool { return s.Kind == SlotLab })
		assert.NotEmpty(t, labs)
		assert.True(t, lo.SomeBy(labs, func(s *TimeSlot) bool {
			return SlotAllowedForYear(2022, s)
		}))
	})
}
