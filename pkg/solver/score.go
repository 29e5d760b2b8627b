package solver

import "fmt"

// Score is a lexicographic (hard, soft) pair. Both components accumulate
// weighted penalties, so lower is better; soft rewards subtract and may drive
// the soft component negative. An assignment is feasible when Hard == 0.
type Score struct {
	Hard int64
	Soft int64
}

func (s Score) Add(o Score) Score {
	return Score{s.Hard + o.Hard, s.Soft + o.Soft}
}

func (s Score) Sub(o Score) Score {
	return Score{s.Hard - o.Hard, s.Soft - o.Soft}
}

// Cmp compares lexicographically: hard violations dominate soft penalties.
// Negative means s is the better score.
func (s Score) Cmp(o Score) int {
	switch {
	case s.Hard != o.Hard:
		if s.Hard < o.Hard {
			return -1
		}
		return 1
	case s.Soft != o.Soft:
		if s.Soft < o.Soft {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether s strictly beats o.
func (s Score) Less(o Score) bool {
	return s.Cmp(o) < 0
}

// Feasible reports whether no weighted hard violation remains.
func (s Score) Feasible() bool {
	return s.Hard == 0
}

func (s Score) String() string {
	return fmt.Sprintf("%dhard/%dsoft", s.Hard, s.Soft)
}
