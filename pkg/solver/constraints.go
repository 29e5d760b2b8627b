package solver

import (
	"github.com/samber/lo"

	"github.com/shivambu108/automated-timetable-scheduler/pkg/model"
)

// Scoring constants carried over from the institutional rules.
const (
	targetFacultyLessons         = 15
	facultyLoadVariance          = 2
	minLessonsPerBatch           = 20
	maxLessonsPerBatch           = 25
	targetDailyBatchLessons      = 4
	dailyBatchLoadVariance       = 1
	maxGapMinutes                = 60
	contiguityBufferMinutes      = 5
	minFacultyBreakMinutes       = 15
	labSlotMinutes               = 120
	maxLessonsPerFacultyBatchDay = 2
)

var preferredStartTime = model.Clock(9, 0)

// groupKind discriminates the aggregation key of group-scoped constraints.
type groupKind int

const (
	groupFacultyLoad groupKind = iota
	groupRoomLoad
	groupBatchLoad
	groupBatchDayLoad
	groupBatchLabDays
	groupBatchDayLabs
	groupBatchDayCourse
	groupFacultyBatchDay
)

// groupKey identifies one aggregation bucket. The meaning of a, b and c
// depends on the kind; unused components stay zero.
type groupKey struct {
	kind    groupKind
	a, b, c int64
}

type groupRule struct {
	// key maps a lesson to its bucket; ok is false when the lesson does not
	// participate (nil fields included).
	key func(l *model.Lesson) (groupKey, bool)
	// penalty returns the violation magnitude of one non-empty bucket.
	penalty func(members []*model.Lesson) int64
}

// constraint is one entry of the scoring catalog. Exactly one of unary, pair
// and group is set; the returned magnitude is multiplied by weight and summed
// into the hard or soft score component. Negative magnitudes are rewards.
type constraint struct {
	name   string
	hard   bool
	weight int64

	unary func(l *model.Lesson) int64
	pair  func(a, b *model.Lesson) int64
	group *groupRule
}

func boolPenalty(violated bool) int64 {
	if violated {
		return 1
	}
	return 0
}

// byStart orders a lesson pair chronologically. Callers guarantee both slots
// are set.
func byStart(a, b *model.Lesson) (*model.Lesson, *model.Lesson) {
	if b.Slot.Start < a.Slot.Start {
		return b, a
	}
	return a, b
}

func sameDay(a, b *model.Lesson) bool {
	return a.Slot != nil && b.Slot != nil && a.Slot.Day == b.Slot.Day
}

// overlaps reports proper interval overlap; back-to-back slots do not overlap.
func overlaps(a, b *model.TimeSlot) bool {
	return a.Start < b.End && b.Start < a.End
}

// gapMinutes is the idle time between two same-day lessons, first end to
// second start. Negative when they overlap.
func gapMinutes(a, b *model.Lesson) int {
	first, second := byStart(a, b)
	return int(second.Slot.Start - first.Slot.End)
}

func contiguous(a, b *model.Lesson) bool {
	gap := gapMinutes(a, b)
	return gap >= 0 && gap <= contiguityBufferMinutes
}

func distinctDays(lessons []*model.Lesson) int {
	return len(lo.UniqBy(lessons, func(l *model.Lesson) model.Day { return l.Slot.Day }))
}

func countOverTwo(members []*model.Lesson) int64 {
	if len(members) > maxLessonsPerFacultyBatchDay {
		return int64(len(members) - maxLessonsPerFacultyBatchDay)
	}
	return 0
}

func countOverOne(members []*model.Lesson) int64 {
	if len(members) > 1 {
		return int64(len(members) - 1)
	}
	return 0
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// defaultCatalog builds the full constraint catalog: every hard and soft rule
// the engine scores, with its relative severity.
func defaultCatalog() []constraint {
	return []constraint{
		//** Conflict hard constraints
		{
			name: "room conflict", hard: true, weight: 10,
			pair: func(a, b *model.Lesson) int64 {
				return boolPenalty(a.Room != nil && b.Room != nil && a.Slot != nil && b.Slot != nil &&
					a.Room.ID == b.Room.ID && a.Slot.ID == b.Slot.ID)
			},
		},
		{
			name: "faculty conflict", hard: true, weight: 10,
			pair: func(a, b *model.Lesson) int64 {
				return boolPenalty(a.Faculty != nil && b.Faculty != nil && a.Slot != nil && b.Slot != nil &&
					a.Faculty.ID == b.Faculty.ID && a.Slot.ID == b.Slot.ID)
			},
		},
		{
			name: "batch conflict", hard: true, weight: 10,
			pair: func(a, b *model.Lesson) int64 {
				if a.Batch == nil || b.Batch == nil || a.Batch.ID != b.Batch.ID || !sameDay(a, b) {
					return 0
				}
				return boolPenalty(a.Slot.ID == b.Slot.ID || overlaps(a.Slot, b.Slot))
			},
		},
		{
			// Same-day lessons of one faculty member need a 15-minute break;
			// overlapping and interleaving slots violate a fortiori. Identical
			// slots are already the faculty conflict above.
			name: "faculty break", hard: true, weight: 10,
			pair: func(a, b *model.Lesson) int64 {
				if a.Faculty == nil || b.Faculty == nil || a.Faculty.ID != b.Faculty.ID || !sameDay(a, b) {
					return 0
				}
				if a.Slot.ID == b.Slot.ID {
					return 0
				}
				return boolPenalty(gapMinutes(a, b) < minFacultyBreakMinutes)
			},
		},

		//** Resource coherence hard constraints
		{
			name: "room capacity", hard: true, weight: 5,
			unary: func(l *model.Lesson) int64 {
				if l.Batch == nil || l.Room == nil || l.Batch.Strength <= l.Room.Capacity {
					return 0
				}
				return int64((l.Batch.Strength - l.Room.Capacity) / 5)
			},
		},
		{
			name: "faculty qualification", hard: true, weight: 8,
			unary: func(l *model.Lesson) int64 {
				return boolPenalty(l.Faculty != nil && !l.Course.IsEligible(l.Faculty))
			},
		},
		{
			name: "room coherence", hard: true, weight: 10,
			unary: func(l *model.Lesson) int64 {
				if l.Room == nil {
					return 0
				}
				switch l.Type {
				case model.Lab:
					return boolPenalty(!l.Room.IsLabRoom() || !l.Batch.AllowsPracticalRoom(l.Room))
				case model.Lecture:
					return boolPenalty(l.Room.IsLabRoom() || !l.Batch.AllowsLectureRoom(l.Room))
				default:
					return boolPenalty(!l.Course.AllowsRoom(l.Room))
				}
			},
		},
		{
			// 120-minute slots host labs in practical rooms, shorter slots
			// host lectures in lecture rooms. Scoped to batch lessons; minor
			// windows are shorter than 120 minutes by construction.
			name: "slot duration coherence", hard: true, weight: 10,
			unary: func(l *model.Lesson) int64 {
				if l.Batch == nil || l.Slot == nil {
					return 0
				}
				if l.Slot.Duration() == labSlotMinutes {
					if l.Type != model.Lab {
						return 1
					}
					return boolPenalty(l.Room != nil && !l.Batch.AllowsPracticalRoom(l.Room))
				}
				if l.Type != model.Lecture {
					return 1
				}
				return boolPenalty(l.Room != nil && !l.Batch.AllowsLectureRoom(l.Room))
			},
		},

		//** Cadence hard constraints
		{
			name: "weekly lab cadence", hard: true, weight: 10,
			group: &groupRule{
				key: func(l *model.Lesson) (groupKey, bool) {
					if l.Type != model.Lab || l.Batch == nil || l.Slot == nil {
						return groupKey{}, false
					}
					return groupKey{kind: groupBatchLabDays, a: l.Batch.ID}, true
				},
				penalty: func(members []*model.Lesson) int64 {
					required := members[0].Batch.RequiredLabsPerWeek()
					if days := distinctDays(members); required > days {
						return int64(required - days)
					}
					return 0
				},
			},
		},
		{
			name: "one lab per batch per day", hard: true, weight: 10,
			group: &groupRule{
				key: func(l *model.Lesson) (groupKey, bool) {
					if l.Type != model.Lab || l.Batch == nil || l.Slot == nil {
						return groupKey{}, false
					}
					return groupKey{kind: groupBatchDayLabs, a: l.Batch.ID, b: int64(l.Slot.Day)}, true
				},
				penalty: countOverOne,
			},
		},
		{
			name: "single course per batch per day", hard: true, weight: 10,
			group: &groupRule{
				key: func(l *model.Lesson) (groupKey, bool) {
					if l.Batch == nil || l.Slot == nil {
						return groupKey{}, false
					}
					return groupKey{kind: groupBatchDayCourse, a: l.Batch.ID, b: int64(l.Slot.Day), c: l.Course.ID}, true
				},
				penalty: countOverOne,
			},
		},
		{
			name: "faculty daily cap per batch", hard: true, weight: 10,
			group: &groupRule{
				key: func(l *model.Lesson) (groupKey, bool) {
					if l.Faculty == nil || l.Batch == nil || l.Slot == nil {
						return groupKey{}, false
					}
					return groupKey{kind: groupFacultyBatchDay, a: l.Faculty.ID, b: l.Batch.ID, c: int64(l.Slot.Day)}, true
				},
				penalty: countOverTwo,
			},
		},

		//** Slot legality hard constraints
		{
			name: "lunch hour", hard: true, weight: 10,
			unary: func(l *model.Lesson) int64 {
				return boolPenalty(l.Batch != nil && l.Slot != nil && model.InLunchBand(l.Batch.Year, l.Slot.Start))
			},
		},
		{
			name: "batch-year slot legality", hard: true, weight: 10,
			unary: func(l *model.Lesson) int64 {
				if l.Slot == nil {
					return 0
				}
				if l.Type == model.Minor {
					return boolPenalty(!model.SlotAllowedForMinor(l.Slot))
				}
				return boolPenalty(l.Batch != nil && !model.SlotAllowedForYear(l.Batch.Year, l.Slot))
			},
		},
		{
			name: "minor fixed start", hard: true, weight: 10,
			unary: func(l *model.Lesson) int64 {
				return boolPenalty(l.Type == model.Minor && l.Slot != nil && l.Slot.Start != model.MinorStartTime)
			},
		},
		{
			// A nil assignable field keeps the lesson out of every predicate
			// above, so it must cost something on its own or the search could
			// park lessons in limbo.
			name: "incomplete lesson", hard: true, weight: 10,
			unary: func(l *model.Lesson) int64 {
				var missing int64
				if l.Faculty == nil {
					missing++
				}
				if l.Room == nil {
					missing++
				}
				if l.Slot == nil {
					missing++
				}
				return missing
			},
		},

		//** Load balancing soft constraints
		{
			name: "balance faculty load", hard: false, weight: 10,
			group: &groupRule{
				key: func(l *model.Lesson) (groupKey, bool) {
					if l.Faculty == nil {
						return groupKey{}, false
					}
					return groupKey{kind: groupFacultyLoad, a: l.Faculty.ID}, true
				},
				penalty: func(members []*model.Lesson) int64 {
					deviation := abs64(int64(len(members) - targetFacultyLessons))
					if deviation > facultyLoadVariance {
						return deviation
					}
					return 0
				},
			},
		},
		{
			name: "balance batch load", hard: false, weight: 10,
			group: &groupRule{
				key: func(l *model.Lesson) (groupKey, bool) {
					if l.Batch == nil {
						return groupKey{}, false
					}
					return groupKey{kind: groupBatchLoad, a: l.Batch.ID}, true
				},
				penalty: func(members []*model.Lesson) int64 {
					count := len(members)
					if count < minLessonsPerBatch || count > maxLessonsPerBatch {
						return abs64(int64(count - (minLessonsPerBatch+maxLessonsPerBatch)/2))
					}
					return 0
				},
			},
		},
		{
			name: "balance room load", hard: false, weight: 1,
			group: &groupRule{
				key: func(l *model.Lesson) (groupKey, bool) {
					if l.Room == nil {
						return groupKey{}, false
					}
					return groupKey{kind: groupRoomLoad, a: l.Room.ID}, true
				},
				penalty: func(members []*model.Lesson) int64 {
					ideal := members[0].Room.IdealDailyLoad()
					count := len(members)
					if count > ideal || count < max(1, ideal-1) {
						return abs64(int64(count - ideal))
					}
					return 0
				},
			},
		},
		{
			name: "balance daily batch load", hard: false, weight: 1,
			group: &groupRule{
				key: func(l *model.Lesson) (groupKey, bool) {
					if l.Batch == nil || l.Slot == nil {
						return groupKey{}, false
					}
					return groupKey{kind: groupBatchDayLoad, a: l.Batch.ID, b: int64(l.Slot.Day)}, true
				},
				penalty: func(members []*model.Lesson) int64 {
					deviation := abs64(int64(len(members) - targetDailyBatchLessons))
					if deviation > dailyBatchLoadVariance {
						return deviation
					}
					return 0
				},
			},
		},

		//** Preference soft constraints
		{
			name: "preferred start time", hard: false, weight: 1,
			unary: func(l *model.Lesson) int64 {
				if l.Slot == nil {
					return 0
				}
				return abs64(int64(l.Slot.Start - preferredStartTime))
			},
		},
		{
			name: "faculty preferred slot", hard: false, weight: 1,
			unary: func(l *model.Lesson) int64 {
				return boolPenalty(l.Faculty != nil && l.Slot != nil &&
					l.Faculty.HasPreference() && !l.Faculty.Prefers(l.Slot))
			},
		},

		//** Contiguity soft constraints
		{
			name: "contiguous lessons", hard: false, weight: 1,
			pair: func(a, b *model.Lesson) int64 {
				if a.Batch == nil || b.Batch == nil || a.Batch.ID != b.Batch.ID || !sameDay(a, b) {
					return 0
				}
				if contiguous(a, b) {
					return -1 // reward back-to-back lessons
				}
				return 0
			},
		},
		{
			name: "schedule gaps", hard: false, weight: 1,
			pair: func(a, b *model.Lesson) int64 {
				if a.Batch == nil || b.Batch == nil || a.Batch.ID != b.Batch.ID || !sameDay(a, b) {
					return 0
				}
				if gap := gapMinutes(a, b); gap > maxGapMinutes {
					return int64(gap)
				}
				return 0
			},
		},
		{
			name: "room stability", hard: false, weight: 1,
			pair: func(a, b *model.Lesson) int64 {
				if a.Batch == nil || b.Batch == nil || a.Batch.ID != b.Batch.ID || !sameDay(a, b) {
					return 0
				}
				if a.Room == nil || b.Room == nil || a.Room.ID == b.Room.ID {
					return 0
				}
				return boolPenalty(contiguous(a, b))
			},
		},
		{
			name: "room changes", hard: false, weight: 1,
			pair: func(a, b *model.Lesson) int64 {
				if a.Batch == nil || b.Batch == nil || a.Batch.ID != b.Batch.ID || !sameDay(a, b) {
					return 0
				}
				if a.Room == nil || b.Room == nil || a.Room.ID == b.Room.ID {
					return 0
				}
				gap := gapMinutes(a, b)
				return boolPenalty(gap >= 0 && gap <= maxGapMinutes && !contiguous(a, b))
			},
		},
	}
}
