package model

// SlotKind tags a time slot with the lesson category it may host.
type SlotKind int

const (
	SlotLecture SlotKind = iota
	SlotLab
	SlotMinor
)

var slotKindNames = map[SlotKind]string{
	SlotLecture: "LECTURE",
	SlotLab:     "LAB",
	SlotMinor:   "MINOR",
}

func (k SlotKind) String() string {
	return slotKindNames[k]
}

// TimeSlot is an immutable catalog entry describing one weekly teaching window.
type TimeSlot struct {
	ID    int64
	Day   Day
	Start ClockTime
	End   ClockTime
	Kind  SlotKind
}

// Duration returns the slot length in minutes.
func (s *TimeSlot) Duration() int {
	return int(s.End - s.Start)
}

type slotSpec struct {
	start ClockTime
	end   ClockTime
	kind  SlotKind
}

// Per-enrollment-year menus of permissible (start, end, kind) tuples. Each
// batch may only occupy slots drawn from its own year's menu.
var yearSlotMenus = map[int][]slotSpec{
	2021: {
		{Clock(9, 0), Clock(10, 30), SlotLecture},
		{Clock(13, 30), Clock(14, 30), SlotLecture},
		{Clock(14, 45), Clock(16, 15), SlotLecture},
		{Clock(16, 30), Clock(18, 0), SlotLecture},
	},
	2022: {
		{Clock(9, 0), Clock(10, 30), SlotLecture},
		{Clock(11, 15), Clock(12, 15), SlotLecture},
		{Clock(13, 30), Clock(15, 0), SlotLecture},
		{Clock(15, 15), Clock(16, 45), SlotLecture},
		{Clock(17, 0), Clock(18, 0), SlotLecture},
		{Clock(9, 0), Clock(11, 0), SlotLab},
	},
	2023: {
		{Clock(9, 0), Clock(10, 30), SlotLecture},
		{Clock(10, 45), Clock(12, 15), SlotLecture},
		{Clock(12, 15), Clock(13, 15), SlotLecture},
		{Clock(14, 30), Clock(16, 0), SlotLecture},
		{Clock(14, 30), Clock(16, 30), SlotLab},
	},
	2024: {
		{Clock(9, 0), Clock(10, 30), SlotLecture},
		{Clock(10, 45), Clock(12, 15), SlotLecture},
		{Clock(12, 15), Clock(13, 15), SlotLecture},
		{Clock(14, 30), Clock(16, 0), SlotLecture},
		{Clock(16, 15), Clock(17, 45), SlotLecture},
		{Clock(11, 15), Clock(13, 15), SlotLab},
		{Clock(14, 30), Clock(16, 30), SlotLab},
	},
}

// The two fixed minor-course windows, shared across all batch years.
var minorSlotMenu = []slotSpec{
	{Clock(8, 0), Clock(9, 0), SlotMinor},
	{Clock(18, 0), Clock(19, 30), SlotMinor},
}

// MinorStartTime is the designated evening start for minor lessons.
var MinorStartTime = Clock(18, 0)

// SlotAllowedForYear reports whether the slot belongs to the fixed menu of the
// given enrollment year. Minor slots never qualify.
func SlotAllowedForYear(year int, slot *TimeSlot) bool {
	for _, spec := range yearSlotMenus[year] {
		if spec.start == slot.Start && spec.end == slot.End && spec.kind == slot.Kind {
			return true
		}
	}
	return false
}

// SlotAllowedForMinor reports whether the slot is one of the two fixed minor
// windows.
func SlotAllowedForMinor(slot *TimeSlot) bool {
	for _, spec := range minorSlotMenu {
		if spec.start == slot.Start && spec.end == slot.End && spec.kind == slot.Kind {
			return true
		}
	}
	return false
}

type lunchBand struct {
	after  ClockTime // exclusive lower bound on lesson start
	before ClockTime // exclusive upper bound on lesson start
}

// Cohort-dependent lunch windows keyed by enrollment year.
var lunchBands = map[int]lunchBand{
	2024: {Clock(13, 14), Clock(14, 31)},
	2023: {Clock(13, 14), Clock(14, 31)},
	2022: {Clock(12, 14), Clock(13, 16)},
	2021: {Clock(12, 14), Clock(13, 16)},
}

// InLunchBand reports whether a lesson starting at the given time falls inside
// the lunch window of the given enrollment year.
func InLunchBand(year int, start ClockTime) bool {
	band, ok := lunchBands[year]
	if !ok {
		return false
	}
	return start > band.after && start < band.before
}

// DefaultTimeSlots builds the full weekly slot catalog: the union of every
// year menu plus the minor windows, repeated over the five teaching days.
// Ids are deterministic and monotonically increasing.
func DefaultTimeSlots() []*TimeSlot {
	specs := make([]slotSpec, 0, 16)
	seen := make(map[slotSpec]bool)
	for _, year := range []int{2021, 2022, 2023, 2024} {
		for _, spec := range yearSlotMenus[year] {
			if !seen[spec] {
				seen[spec] = true
				specs = append(specs, spec)
			}
		}
	}
	specs = append(specs, minorSlotMenu...)

	slots := make([]*TimeSlot, 0, len(specs)*len(Weekdays))
	id := int64(1)
	for _, day := range Weekdays {
		for _, spec := range specs {
			slots = append(slots, &TimeSlot{
				ID:    id,
				Day:   day,
				Start: spec.start,
				End:   spec.end,
				Kind:  spec.kind,
			})
			id++
		}
	}
	return slots
}
