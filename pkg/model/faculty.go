package model

import "github.com/samber/lo"

// Faculty is an immutable catalog entry for one teaching staff member.
type Faculty struct {
	ID             int64
	Name           string
	Subjects       []string
	MaxHoursPerDay int

	// PreferredSlotIDs may be empty, in which case no preference applies.
	PreferredSlotIDs []int64
}

// HasPreference reports whether the faculty member declared preferred slots.
func (f *Faculty) HasPreference() bool {
	return len(f.PreferredSlotIDs) > 0
}

// Prefers reports whether the slot is among the declared preferences.
func (f *Faculty) Prefers(slot *TimeSlot) bool {
	if slot == nil {
		return false
	}
	return lo.Contains(f.PreferredSlotIDs, slot.ID)
}
