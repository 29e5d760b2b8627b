package solver

import (
	"github.com/shivambu108/automated-timetable-scheduler/pkg/model"
)

// Evaluator scores one timetable against the constraint catalog. It holds no
// mutable bookkeeping of its own: scoring the same assignment twice yields
// identical results, and Delta never leaves side effects behind.
type Evaluator struct {
	tt      *model.Timetable
	catalog []constraint
}

func NewEvaluator(tt *model.Timetable) *Evaluator {
	return &Evaluator{
		tt:      tt,
		catalog: defaultCatalog(),
	}
}

// Score fully evaluates the current assignment: unary constraints per lesson,
// pair constraints per unordered lesson pair, group constraints per non-empty
// bucket.
func (e *Evaluator) Score() Score {
	var score Score
	lessons := e.tt.Lessons
	for ci := range e.catalog {
		c := &e.catalog[ci]
		var magnitude int64
		switch {
		case c.unary != nil:
			for _, l := range lessons {
				magnitude += c.unary(l)
			}
		case c.pair != nil:
			for i := 0; i < len(lessons); i++ {
				for j := i + 1; j < len(lessons); j++ {
					magnitude += c.pair(lessons[i], lessons[j])
				}
			}
		case c.group != nil:
			buckets := map[groupKey][]*model.Lesson{}
			for _, l := range lessons {
				if key, ok := c.group.key(l); ok {
					buckets[key] = append(buckets[key], l)
				}
			}
			for _, members := range buckets {
				magnitude += c.group.penalty(members)
			}
		}
		score = score.accumulate(c, magnitude)
	}
	return score
}

func (s Score) accumulate(c *constraint, magnitude int64) Score {
	if c.hard {
		s.Hard += magnitude * c.weight
	} else {
		s.Soft += magnitude * c.weight
	}
	return s
}

// Delta evaluates the score change the move would cause, without rescanning
// the whole assignment: only the constraints touching the moved lesson(s) and
// the group buckets they enter or leave are re-evaluated. The move is applied
// and rolled back internally; the assignment is unchanged on return.
// Invariant: Score(after apply) == Score() + Delta(move).
func (e *Evaluator) Delta(m *Move) Score {
	touched := m.touched()

	// Affected group buckets of both the pre-move and post-move assignment.
	keys := make([]map[groupKey]bool, len(e.catalog))
	e.collectKeys(touched, keys)
	m.Apply()
	e.collectKeys(touched, keys)
	after := e.localScore(touched, keys)
	m.Undo()
	before := e.localScore(touched, keys)

	return after.Sub(before)
}

func (e *Evaluator) collectKeys(touched []*model.Lesson, keys []map[groupKey]bool) {
	for ci := range e.catalog {
		c := &e.catalog[ci]
		if c.group == nil {
			continue
		}
		if keys[ci] == nil {
			keys[ci] = map[groupKey]bool{}
		}
		for _, l := range touched {
			if key, ok := c.group.key(l); ok {
				keys[ci][key] = true
			}
		}
	}
}

// localScore is the score restricted to the touched lessons: their unary
// contributions, every pair involving them (counted once), and the full
// penalty of each affected group bucket.
func (e *Evaluator) localScore(touched []*model.Lesson, keys []map[groupKey]bool) Score {
	var score Score
	lessons := e.tt.Lessons
	for ci := range e.catalog {
		c := &e.catalog[ci]
		var magnitude int64
		switch {
		case c.unary != nil:
			for _, l := range touched {
				magnitude += c.unary(l)
			}
		case c.pair != nil:
			for _, t := range touched {
				for _, other := range lessons {
					if other != t {
						magnitude += c.pair(t, other)
					}
				}
			}
			// Pairs with both ends touched were counted twice above.
			for i := 0; i < len(touched); i++ {
				for j := i + 1; j < len(touched); j++ {
					magnitude -= c.pair(touched[i], touched[j])
				}
			}
		case c.group != nil:
			for key := range keys[ci] {
				members := e.bucketMembers(c, key)
				if len(members) > 0 {
					magnitude += c.group.penalty(members)
				}
			}
		}
		score = score.accumulate(c, magnitude)
	}
	return score
}

func (e *Evaluator) bucketMembers(c *constraint, key groupKey) []*model.Lesson {
	var members []*model.Lesson
	for _, l := range e.tt.Lessons {
		if k, ok := c.group.key(l); ok && k == key {
			members = append(members, l)
		}
	}
	return members
}

// ViolatingLessons returns the lessons currently implicated in at least one
// hard violation, the worst-offender pool the move generator may bias toward.
func (e *Evaluator) ViolatingLessons() []*model.Lesson {
	lessons := e.tt.Lessons
	flagged := make(map[*model.Lesson]bool)
	for ci := range e.catalog {
		c := &e.catalog[ci]
		if !c.hard {
			continue
		}
		switch {
		case c.unary != nil:
			for _, l := range lessons {
				if c.unary(l) > 0 {
					flagged[l] = true
				}
			}
		case c.pair != nil:
			for i := 0; i < len(lessons); i++ {
				for j := i + 1; j < len(lessons); j++ {
					if c.pair(lessons[i], lessons[j]) > 0 {
						flagged[lessons[i]] = true
						flagged[lessons[j]] = true
					}
				}
			}
		case c.group != nil:
			buckets := map[groupKey][]*model.Lesson{}
			for _, l := range lessons {
				if key, ok := c.group.key(l); ok {
					buckets[key] = append(buckets[key], l)
				}
			}
			for _, members := range buckets {
				if c.group.penalty(members) > 0 {
					for _, l := range members {
						flagged[l] = true
					}
				}
			}
		}
	}

	violating := make([]*model.Lesson, 0, len(flagged))
	for _, l := range lessons { // stable order
		if flagged[l] {
			violating = append(violating, l)
		}
	}
	return violating
}
