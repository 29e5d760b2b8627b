package model

import "github.com/samber/lo"

// CourseKind distinguishes regular batch courses from batch-independent minors.
type CourseKind int

const (
	KindRegular CourseKind = iota
	KindMinor
)

func (k CourseKind) String() string {
	if k == KindMinor {
		return "minor"
	}
	return "regular"
}

// Course is an immutable catalog entry for one taught subject.
type Course struct {
	ID             int64
	Code           string
	Name           string
	Kind           CourseKind
	LectureHours   int
	TheoryHours    int
	PracticalHours int
	Credits        int

	// EligibleFaculty must be non-empty for the course to be schedulable.
	EligibleFaculty []*Faculty

	// AllowedRoomIDs is the fixed room pool for minor courses; empty otherwise.
	AllowedRoomIDs []int64
}

// HoursPerWeek is the total weekly teaching volume of the course.
func (c *Course) HoursPerWeek() int {
	return c.LectureHours + c.TheoryHours + c.PracticalHours
}

// IsLab reports whether the course carries practical sessions.
func (c *Course) IsLab() bool {
	return c.PracticalHours > 0
}

// IsEligible reports whether the faculty member may teach this course.
func (c *Course) IsEligible(faculty *Faculty) bool {
	if faculty == nil {
		return false
	}
	return lo.SomeBy(c.EligibleFaculty, func(f *Faculty) bool { return f.ID == faculty.ID })
}

// AllowsRoom reports whether the room belongs to a minor course's fixed pool.
func (c *Course) AllowsRoom(room *Room) bool {
	if room == nil {
		return false
	}
	return lo.Contains(c.AllowedRoomIDs, room.ID)
}
