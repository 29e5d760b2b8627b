package solver

import (
	"fmt"

	"github.com/shivambu108/automated-timetable-scheduler/pkg/model"
)

// Field names one of the three assignable lesson fields.
type Field int

const (
	FieldFaculty Field = iota
	FieldRoom
	FieldSlot
)

var fieldNames = map[Field]string{
	FieldFaculty: "faculty",
	FieldRoom:    "room",
	FieldSlot:    "slot",
}

func (f Field) String() string {
	return fieldNames[f]
}

type moveKind int

const (
	moveReassign moveKind = iota
	moveSwap
)

// Move is one atomic assignment change: either replace one field of lesson a
// with a new value, or exchange the same field between lessons a and b.
// Apply and Undo are exact inverses; a move may be applied and undone any
// number of times.
type Move struct {
	kind  moveKind
	field Field
	a, b  *model.Lesson

	// Reassign target and rollback values.
	faculty, prevFaculty *model.Faculty
	room, prevRoom       *model.Room
	slot, prevSlot       *model.TimeSlot
}

func reassign(l *model.Lesson, field Field) *Move {
	return &Move{kind: moveReassign, field: field, a: l}
}

// ReassignFaculty builds a move setting the lesson's faculty.
func ReassignFaculty(l *model.Lesson, f *model.Faculty) *Move {
	m := reassign(l, FieldFaculty)
	m.faculty = f
	return m
}

// ReassignRoom builds a move setting the lesson's room.
func ReassignRoom(l *model.Lesson, r *model.Room) *Move {
	m := reassign(l, FieldRoom)
	m.room = r
	return m
}

// ReassignSlot builds a move setting the lesson's time slot.
func ReassignSlot(l *model.Lesson, s *model.TimeSlot) *Move {
	m := reassign(l, FieldSlot)
	m.slot = s
	return m
}

// Swap builds a move exchanging one field between two lessons.
func Swap(a, b *model.Lesson, field Field) *Move {
	return &Move{kind: moveSwap, field: field, a: a, b: b}
}

func (m *Move) touched() []*model.Lesson {
	if m.kind == moveSwap {
		return []*model.Lesson{m.a, m.b}
	}
	return []*model.Lesson{m.a}
}

// Apply mutates the working assignment in place.
func (m *Move) Apply() {
	switch m.field {
	case FieldFaculty:
		if m.kind == moveSwap {
			m.a.Faculty, m.b.Faculty = m.b.Faculty, m.a.Faculty
		} else {
			m.prevFaculty, m.a.Faculty = m.a.Faculty, m.faculty
		}
	case FieldRoom:
		if m.kind == moveSwap {
			m.a.Room, m.b.Room = m.b.Room, m.a.Room
		} else {
			m.prevRoom, m.a.Room = m.a.Room, m.room
		}
	case FieldSlot:
		if m.kind == moveSwap {
			m.a.Slot, m.b.Slot = m.b.Slot, m.a.Slot
		} else {
			m.prevSlot, m.a.Slot = m.a.Slot, m.slot
		}
	}
}

// Undo restores the assignment to its pre-Apply state.
func (m *Move) Undo() {
	switch m.field {
	case FieldFaculty:
		if m.kind == moveSwap {
			m.a.Faculty, m.b.Faculty = m.b.Faculty, m.a.Faculty
		} else {
			m.a.Faculty = m.prevFaculty
		}
	case FieldRoom:
		if m.kind == moveSwap {
			m.a.Room, m.b.Room = m.b.Room, m.a.Room
		} else {
			m.a.Room = m.prevRoom
		}
	case FieldSlot:
		if m.kind == moveSwap {
			m.a.Slot, m.b.Slot = m.b.Slot, m.a.Slot
		} else {
			m.a.Slot = m.prevSlot
		}
	}
}

func (m *Move) String() string {
	if m.kind == moveSwap {
		return fmt.Sprintf("swap %v between lessons %v and %v", m.field, m.a.ID, m.b.ID)
	}
	return fmt.Sprintf("reassign %v of lesson %v", m.field, m.a.ID)
}
