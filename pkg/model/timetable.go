package model

// Timetable holds one working assignment: the mutable lesson set plus the
// immutable catalogs it draws values from.
type Timetable struct {
	Lessons []*Lesson

	Faculty []*Faculty
	Rooms   []*Room
	Slots   []*TimeSlot
	Batches []*StudentBatch
	Courses []*Course
}

// Clone deep-copies the lesson set so an independent solver instance can
// mutate its own assignment. Catalog entries are shared, they are never
// mutated during search.
func (t *Timetable) Clone() *Timetable {
	lessons := make([]*Lesson, len(t.Lessons))
	for i, l := range t.Lessons {
		copied := *l
		lessons[i] = &copied
	}
	return &Timetable{
		Lessons: lessons,
		Faculty: t.Faculty,
		Rooms:   t.Rooms,
		Slots:   t.Slots,
		Batches: t.Batches,
		Courses: t.Courses,
	}
}

// CopyAssignmentsFrom overwrites this timetable's assignable fields with those
// of another timetable over the identical lesson set. Lessons are matched by
// position; both sides originate from the same Build call.
func (t *Timetable) CopyAssignmentsFrom(other *Timetable) {
	for i, l := range t.Lessons {
		src := other.Lessons[i]
		l.Faculty, l.Room, l.Slot = src.Faculty, src.Room, src.Slot
	}
}

// RoomByID resolves a room id against the catalog, nil when absent.
func (t *Timetable) RoomByID(id int64) *Room {
	for _, r := range t.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}
