package solver

import "time"

// terminationController decides when the search loop stops: on wall-clock
// deadline, or early once the assignment is feasible and the soft score has
// not improved for a bounded number of moves. It is consulted between move
// evaluations only; an in-flight move is never partially applied.
type terminationController struct {
	deadline     time.Time
	plateauMoves int

	sinceImprovement int
}

func newTerminationController(deadline time.Time, plateauMoves int) *terminationController {
	return &terminationController{deadline: deadline, plateauMoves: plateauMoves}
}

// recordMove notes whether the move improved the best-known score.
func (t *terminationController) recordMove(improvedBest bool) {
	if improvedBest {
		t.sinceImprovement = 0
	} else {
		t.sinceImprovement++
	}
}

func (t *terminationController) shouldStop(best Score) bool {
	if !time.Now().Before(t.deadline) {
		return true
	}
	return best.Feasible() && t.sinceImprovement >= t.plateauMoves
}
