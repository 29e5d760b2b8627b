package solver

import (
	"time"

	"github.com/shivambu108/automated-timetable-scheduler/pkg/model"
)

// How often the worst-offender pool handed to the generator is recomputed.
const violatingRefreshInterval = 256

// searchResult is the outcome of one local-search instance.
type searchResult struct {
	best      *model.Timetable
	bestScore Score
	moves     int
	accepted  int
	elapsed   time.Duration
}

// runSearch improves the working assignment with late-acceptance hill
// climbing: a move is accepted when its resulting score is no worse than the
// current one or than the score held a fixed number of steps ago. The best
// assignment seen is snapshotted whenever the current score beats it; rejected
// moves are rolled back with no scoring side effects.
func runSearch(tt *model.Timetable, ev *Evaluator, gen *generator, deadline time.Time, lateAcceptanceSize, plateauMoves int, logger model.Logger) searchResult {
	start := time.Now()

	current := ev.Score()
	ring := make([]Score, lateAcceptanceSize)
	for i := range ring {
		ring[i] = current
	}

	best := tt.Clone()
	bestScore := current

	controller := newTerminationController(deadline, plateauMoves)
	moves, accepted := 0, 0

	for !controller.shouldStop(bestScore) {
		if moves%violatingRefreshInterval == 0 {
			gen.refreshViolating(ev.ViolatingLessons())
		}

		move := gen.propose()
		moves++
		if move == nil {
			controller.recordMove(false)
			continue
		}

		candidate := current.Add(ev.Delta(move))
		slot := moves % lateAcceptanceSize

		improvedBest := false
		if candidate.Cmp(current) <= 0 || candidate.Cmp(ring[slot]) <= 0 {
			move.Apply()
			current = candidate
			accepted++
			if current.Less(bestScore) {
				best.CopyAssignmentsFrom(tt)
				bestScore = current
				improvedBest = true
			}
		}
		ring[slot] = current
		controller.recordMove(improvedBest)
	}

	if logger != nil {
		logger.Printf("search finished: %v moves, %v accepted, best %v", moves, accepted, bestScore)
	}

	return searchResult{
		best:      best,
		bestScore: bestScore,
		moves:     moves,
		accepted:  accepted,
		elapsed:   time.Since(start),
	}
}
