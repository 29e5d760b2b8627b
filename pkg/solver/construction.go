package solver

import (
	"math/rand"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"

	"github.com/shivambu108/automated-timetable-scheduler/pkg/model"
)

// Construct greedily assigns every lesson in creation order: the first
// domain-valid faculty/room/slot combination that adds no hard violation
// against the lessons placed so far, or the least-violating combination when
// none is clean. The result is always complete, possibly infeasible. The rng
// shuffles candidate order so parallel instances start from different points.
func Construct(tt *model.Timetable, domains DomainProvider, ev *Evaluator, rng *rand.Rand, logger model.Logger) {
	warnInfeasibleLabSpread(tt, domains, logger)

	for _, lesson := range tt.Lessons {
		placeLesson(lesson, domains, ev, rng)
	}
}

func placeLesson(lesson *model.Lesson, domains DomainProvider, ev *Evaluator, rng *rand.Rand) {
	facultyPool := shuffled(rng, domains.Faculty(lesson))
	roomPool := shuffled(rng, domains.Rooms(lesson))
	slotPool := shuffled(rng, domains.Slots(lesson))
	if len(facultyPool) == 0 || len(roomPool) == 0 || len(slotPool) == 0 {
		// Defective domain; leave what cannot be drawn unset and let the
		// incomplete-lesson penalty report it.
		if len(facultyPool) > 0 {
			lesson.Faculty = facultyPool[0]
		}
		if len(roomPool) > 0 {
			lesson.Room = roomPool[0]
		}
		if len(slotPool) > 0 {
			lesson.Slot = slotPool[0]
		}
		return
	}

	var bestFaculty *model.Faculty
	var bestRoom *model.Room
	var bestSlot *model.TimeSlot
	var bestHard int64 = -1

	for _, slot := range slotPool {
		for _, room := range roomPool {
			for _, faculty := range facultyPool {
				lesson.Faculty, lesson.Room, lesson.Slot = faculty, room, slot
				hard := ev.lessonHardContribution(lesson)
				if hard == 0 {
					return // first clean placement wins
				}
				if bestHard < 0 || hard < bestHard {
					bestFaculty, bestRoom, bestSlot, bestHard = faculty, room, slot, hard
				}
			}
		}
	}

	lesson.Faculty, lesson.Room, lesson.Slot = bestFaculty, bestRoom, bestSlot
}

func shuffled[T any](rng *rand.Rand, pool []T) []T {
	out := make([]T, len(pool))
	copy(out, pool)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// lessonHardContribution is the hard-score share attributable to one lesson
// under the current assignment: its unary violations, its pairs with every
// other lesson, and the buckets it belongs to.
func (e *Evaluator) lessonHardContribution(lesson *model.Lesson) int64 {
	touched := []*model.Lesson{lesson}
	keys := make([]map[groupKey]bool, len(e.catalog))
	e.collectKeys(touched, keys)

	var hard int64
	for ci := range e.catalog {
		c := &e.catalog[ci]
		if !c.hard {
			continue
		}
		var magnitude int64
		switch {
		case c.unary != nil:
			magnitude = c.unary(lesson)
		case c.pair != nil:
			for _, other := range e.tt.Lessons {
				if other != lesson {
					magnitude += c.pair(lesson, other)
				}
			}
		case c.group != nil:
			for key := range keys[ci] {
				if members := e.bucketMembers(c, key); len(members) > 0 {
					magnitude += c.group.penalty(members)
				}
			}
		}
		hard += magnitude * c.weight
	}
	return hard
}

// warnInfeasibleLabSpread checks per batch, via maximum bipartite matching,
// that its lab lessons can occupy enough distinct weekdays to meet the weekly
// cadence. A failed matching means the cadence constraint can never reach
// zero for that batch; the problem data needs more lab slots.
func warnInfeasibleLabSpread(tt *model.Timetable, domains DomainProvider, logger model.Logger) {
	for _, batch := range tt.Batches {
		required := batch.RequiredLabsPerWeek()
		if required == 0 {
			continue
		}
		labLessons := lo.Filter(tt.Lessons, func(l *model.Lesson, _ int) bool {
			return l.Type == model.Lab && l.Batch != nil && l.Batch.ID == batch.ID
		})
		if len(labLessons) == 0 {
			continue
		}

		neighbors := func(lessonAny any, dayAny any) (bool, error) {
			lesson := lessonAny.(*model.Lesson)
			day := dayAny.(model.Day)
			return lo.SomeBy(domains.Slots(lesson), func(s *model.TimeSlot) bool {
				return s.Kind == model.SlotLab && s.Day == day
			}), nil
		}
		lessonsAny := lo.Map(labLessons, func(l *model.Lesson, _ int) any { return l })
		daysAny := lo.Map(model.Weekdays, func(d model.Day, _ int) any { return d })

		graph, err := bipartitegraph.NewBipartiteGraph(lessonsAny, daysAny, neighbors)
		if err != nil {
			continue
		}
		matched := len(graph.LargestMatching())
		want := min(required, len(labLessons))
		if matched < want {
			if logger != nil {
				logger.Printf("batch %v: lab lessons fit on %v distinct days, %v required", batch.Name, matched, want)
			}
		}
	}
}
