package solver

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/shivambu108/automated-timetable-scheduler/pkg/model"
)

// ErrNoFeasibleAssignment signals that the returned best-effort solution
// still carries hard violations. The solution accompanies the error; it is
// never dropped.
var ErrNoFeasibleAssignment = errors.New("no feasible assignment found")

// Options configures one Solve run. Zero values fall back to defaults.
type Options struct {
	// TimeLimit is the wall-clock budget of the whole run.
	TimeLimit time.Duration
	// Instances is the number of independent parallel searches; each owns its
	// problem copy and random stream, only final snapshots are compared.
	Instances int
	// Seed makes runs reproducible; instance i uses Seed+i.
	Seed int64

	LateAcceptanceSize int
	PlateauMoves       int
	SwapProbability    float64
	BiasProbability    float64

	Logger model.Logger
}

func (o Options) withDefaults() Options {
	if o.TimeLimit <= 0 {
		o.TimeLimit = 5 * time.Minute
	}
	if o.Instances <= 0 {
		o.Instances = 1
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.LateAcceptanceSize <= 0 {
		o.LateAcceptanceSize = 400
	}
	if o.PlateauMoves <= 0 {
		o.PlateauMoves = 20000
	}
	if o.SwapProbability <= 0 {
		o.SwapProbability = 0.2
	}
	if o.BiasProbability <= 0 {
		o.BiasProbability = 0.5
	}
	return o
}

// Solution is the read-only outcome of a run: the lesson list with resolved
// assignments and its score.
type Solution struct {
	Lessons []*model.Lesson
	Score   Score

	Moves    int
	Accepted int
	Elapsed  time.Duration
}

// SortForReport orders lessons canonically: day, then batch name (minor
// lessons last), then slot start time. Unassigned lessons sort to the end.
func (s *Solution) SortForReport() {
	sort.SliceStable(s.Lessons, func(i, j int) bool {
		a, b := s.Lessons[i], s.Lessons[j]
		if a.Slot == nil || b.Slot == nil {
			return b.Slot == nil && a.Slot != nil
		}
		if a.Slot.Day != b.Slot.Day {
			return a.Slot.Day < b.Slot.Day
		}
		if batchName(a) != batchName(b) {
			return batchName(a) < batchName(b)
		}
		return a.Slot.Start < b.Slot.Start
	})
}

func batchName(l *model.Lesson) string {
	if l.Batch == nil {
		return "~minor" // after every real batch name
	}
	return l.Batch.Name
}

// Solve builds the lesson set from the catalogs and searches for a
// low-violation assignment within the time budget. It fails fast with
// ErrMissingEssentialData before any solving begins; on timeout the best
// snapshot found is returned, together with ErrNoFeasibleAssignment when hard
// violations remain.
func Solve(facultyList []*model.Faculty, roomList []*model.Room, courseList []*model.Course, batchList []*model.StudentBatch, slotList []*model.TimeSlot, opts Options) (*Solution, error) {
	opts = opts.withDefaults()

	problem, err := model.BuildTimetable(facultyList, roomList, courseList, batchList, slotList, opts.Logger)
	if err != nil {
		return nil, err
	}
	if opts.Logger != nil {
		opts.Logger.Printf("built problem with %v lessons, %v time slots", len(problem.Lessons), len(problem.Slots))
	}

	deadline := time.Now().Add(opts.TimeLimit)
	results := make([]searchResult, opts.Instances)

	var wg sync.WaitGroup
	for i := 0; i < opts.Instances; i++ {
		wg.Add(1)
		go func(instance int) {
			defer wg.Done()
			results[instance] = runInstance(problem, opts, instance, deadline)
		}(i)
	}
	wg.Wait()

	best := results[0]
	for _, result := range results[1:] {
		if result.bestScore.Less(best.bestScore) {
			best = result
		}
	}

	solution := &Solution{
		Lessons:  best.best.Lessons,
		Score:    best.bestScore,
		Moves:    best.moves,
		Accepted: best.accepted,
		Elapsed:  best.elapsed,
	}
	if !solution.Score.Feasible() {
		return solution, fmt.Errorf("best score %v: %w", solution.Score, ErrNoFeasibleAssignment)
	}
	return solution, nil
}

// runInstance is one independent search: own problem copy, own evaluator and
// random stream. Nothing is shared until the snapshot is returned.
func runInstance(problem *model.Timetable, opts Options, instance int, deadline time.Time) searchResult {
	working := problem.Clone()
	rng := rand.New(rand.NewSource(opts.Seed + int64(instance)))
	domains := NewDomainProvider(working)
	ev := NewEvaluator(working)

	var logger model.Logger
	if instance == 0 {
		logger = opts.Logger // one reporting instance keeps output readable
	}

	Construct(working, domains, ev, rng, logger)

	gen := newGenerator(working, domains, rng, opts.SwapProbability, opts.BiasProbability)
	return runSearch(working, ev, gen, deadline, opts.LateAcceptanceSize, opts.PlateauMoves, logger)
}
