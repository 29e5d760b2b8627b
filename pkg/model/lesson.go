package model

import "fmt"

// LessonType tags a lesson with its teaching unit category.
type LessonType int

const (
	Lecture LessonType = iota
	Lab
	Minor
)

var lessonTypeNames = map[LessonType]string{
	Lecture: "LECTURE",
	Lab:     "LAB",
	Minor:   "MINOR",
}

func (t LessonType) String() string {
	return lessonTypeNames[t]
}

// Lesson is the mutable planning entity: one teaching unit requiring a
// faculty, room and time slot. Course, Batch and Type are fixed at build time;
// the three assignable fields are mutated only by the solver. Identity is by
// id.
type Lesson struct {
	ID     int64
	Course *Course
	Batch  *StudentBatch // nil for minor lessons
	Type   LessonType

	Faculty *Faculty
	Room    *Room
	Slot    *TimeSlot
}

// IsAssigned reports whether all three assignable fields are set.
func (l *Lesson) IsAssigned() bool {
	return l.Faculty != nil && l.Room != nil && l.Slot != nil
}

func (l *Lesson) String() string {
	batch := "-"
	if l.Batch != nil {
		batch = l.Batch.Name
	}
	faculty, room, slot := "?", "?", "?"
	if l.Faculty != nil {
		faculty = l.Faculty.Name
	}
	if l.Room != nil {
		room = l.Room.Number
	}
	if l.Slot != nil {
		slot = fmt.Sprintf("%v %v", l.Slot.Day, l.Slot.Start)
	}
	return fmt.Sprintf("lesson %v [%v %v %v] faculty=%v room=%v slot=%v",
		l.ID, l.Course.Code, batch, l.Type, faculty, room, slot)
}
