package solver

import (
	"math/rand"

	"github.com/samber/lo"

	"github.com/shivambu108/automated-timetable-scheduler/pkg/model"
)

const swapPartnerAttempts = 16

// generator samples candidate moves. By default lessons are drawn uniformly,
// which keeps every legal value reachable; optionally a fraction of draws is
// biased toward lessons currently implicated in hard violations to speed up
// convergence.
type generator struct {
	tt      *model.Timetable
	domains DomainProvider
	rng     *rand.Rand

	swapProbability float64
	biasProbability float64
	violating       []*model.Lesson
}

func newGenerator(tt *model.Timetable, domains DomainProvider, rng *rand.Rand, swapProbability, biasProbability float64) *generator {
	return &generator{
		tt:              tt,
		domains:         domains,
		rng:             rng,
		swapProbability: swapProbability,
		biasProbability: biasProbability,
	}
}

// refreshViolating replaces the worst-offender pool. The driver calls this
// periodically; an empty pool falls back to uniform sampling.
func (g *generator) refreshViolating(lessons []*model.Lesson) {
	g.violating = lessons
}

func (g *generator) pickLesson() *model.Lesson {
	if len(g.violating) > 0 && g.rng.Float64() < g.biasProbability {
		return g.violating[g.rng.Intn(len(g.violating))]
	}
	return g.tt.Lessons[g.rng.Intn(len(g.tt.Lessons))]
}

// propose returns the next candidate move, or nil when the picked lesson
// offers none (single-value domains all around). Proposed moves only carry
// domain-valid values.
func (g *generator) propose() *Move {
	lesson := g.pickLesson()

	if g.rng.Float64() < g.swapProbability {
		if m := g.proposeSwap(lesson); m != nil {
			return m
		}
	}
	return g.proposeReassign(lesson)
}

func (g *generator) proposeReassign(lesson *model.Lesson) *Move {
	// Try the three fields in random order until one offers an alternative.
	for _, field := range g.shuffledFields() {
		switch field {
		case FieldFaculty:
			if f := pickOther(g.rng, g.domains.Faculty(lesson), lesson.Faculty); f != nil {
				return ReassignFaculty(lesson, f)
			}
		case FieldRoom:
			if r := pickOther(g.rng, g.domains.Rooms(lesson), lesson.Room); r != nil {
				return ReassignRoom(lesson, r)
			}
		case FieldSlot:
			if s := pickOther(g.rng, g.domains.Slots(lesson), lesson.Slot); s != nil {
				return ReassignSlot(lesson, s)
			}
		}
	}
	return nil
}

func (g *generator) proposeSwap(lesson *model.Lesson) *Move {
	field := Field(g.rng.Intn(3))
	for attempt := 0; attempt < swapPartnerAttempts; attempt++ {
		partner := g.tt.Lessons[g.rng.Intn(len(g.tt.Lessons))]
		if partner == lesson || partner.Type != lesson.Type {
			continue
		}
		if !g.swappable(lesson, partner, field) {
			continue
		}
		return Swap(lesson, partner, field)
	}
	return nil
}

// swappable verifies both lessons would receive a value from their own domain
// and the exchange actually changes something.
func (g *generator) swappable(a, b *model.Lesson, field Field) bool {
	switch field {
	case FieldFaculty:
		return a.Faculty != nil && b.Faculty != nil && a.Faculty != b.Faculty &&
			inDomain(g.domains.Faculty(a), b.Faculty) && inDomain(g.domains.Faculty(b), a.Faculty)
	case FieldRoom:
		return a.Room != nil && b.Room != nil && a.Room != b.Room &&
			inDomain(g.domains.Rooms(a), b.Room) && inDomain(g.domains.Rooms(b), a.Room)
	default:
		return a.Slot != nil && b.Slot != nil && a.Slot != b.Slot &&
			inDomain(g.domains.Slots(a), b.Slot) && inDomain(g.domains.Slots(b), a.Slot)
	}
}

func (g *generator) shuffledFields() []Field {
	fields := []Field{FieldFaculty, FieldRoom, FieldSlot}
	g.rng.Shuffle(len(fields), func(i, j int) { fields[i], fields[j] = fields[j], fields[i] })
	return fields
}

func inDomain[T comparable](domain []T, value T) bool {
	return lo.Contains(domain, value)
}

// pickOther draws a uniform candidate different from the current value; nil
// when no alternative exists.
func pickOther[T comparable](rng *rand.Rand, domain []T, current T) T {
	var zero T
	alternatives := lo.Filter(domain, func(v T, _ int) bool { return v != current })
	if len(alternatives) == 0 {
		return zero
	}
	return alternatives[rng.Intn(len(alternatives))]
}
