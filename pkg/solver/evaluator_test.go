package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shivambu108/automated-timetable-scheduler/pkg/model"
)

func findSlot(slots []*model.TimeSlot, day model.Day, start, end model.ClockTime) *model.TimeSlot {
	for _, s := range slots {
		if s.Day == day && s.Start == start && s.End == end {
			return s
		}
	}
	panic("no such slot in fixture")
}

// withSecondLectureRoom adds one more lecture room to the single-batch fixture
// so room moves have somewhere to go.
func withSecondLectureRoom(capacity int) catalogs {
	c := smallCatalogs()
	extra := &model.Room{ID: 3, Number: "102", Capacity: capacity, Type: model.LectureRoom}
	c.rooms = append(c.rooms, extra)
	c.batches[0].LectureRoomIDs = append(c.batches[0].LectureRoomIDs, extra.ID)
	return c
}

func TestEvaluatorScore(t *testing.T) {
	t.Run("charges each unassigned field of a lesson", func(t *testing.T) {
		//**Arrange
		tt := buildProblem(smallCatalogs(), nil)
		ev := NewEvaluator(tt)

		//**Act
		score := ev.Score()

		//**Assert: 2 lessons, 3 nil fields each
		assert.Equal(t, int64(60), score.Hard)
	})

	t.Run("scores a clean assignment as feasible", func(t *testing.T) {
		//**Arrange
		tt := buildProblem(smallCatalogs(), nil)
		ev := NewEvaluator(tt)
		assignClean(tt)

		//**Act
		score := ev.Score()

		//**Assert
		assert.Equal(t, int64(0), score.Hard)
		assert.True(t, score.Feasible())
	})

	t.Run("is idempotent", func(t *testing.T) {
		//**Arrange
		tt := buildProblem(smallCatalogs(), nil)
		ev := NewEvaluator(tt)
		assignClean(tt)

		//**Act + Assert
		assert.Equal(t, ev.Score(), ev.Score())
	})

	t.Run("grades capacity overflow in steps of five students", func(t *testing.T) {
		//**Arrange: batch of 40 against a 30-seat room, on two different days
		c := withSecondLectureRoom(30)
		tt := buildProblem(c, nil)
		ev := NewEvaluator(tt)
		assignClean(tt)
		tight := tt.RoomByID(3)

		for _, lesson := range tt.Lessons {
			//**Act
			delta := ev.Delta(ReassignRoom(lesson, tight))

			//**Assert: (40-30)/5 = 2 at weight 5, regardless of the slot
			assert.Equal(t, int64(10), delta.Hard)
		}
	})

	t.Run("detects conflicting assignments and their resolution", func(t *testing.T) {
		//**Arrange: both lessons of the batch piled onto the same Monday slot
		c := withSecondLectureRoom(60)
		tt := buildProblem(c, nil)
		ev := NewEvaluator(tt)
		monday := findSlot(tt.Slots, model.Monday, model.Clock(9, 0), model.Clock(10, 30))
		tuesday := findSlot(tt.Slots, model.Tuesday, model.Clock(9, 0), model.Clock(10, 30))
		f := tt.Faculty[0]
		tt.Lessons[0].Faculty, tt.Lessons[0].Room, tt.Lessons[0].Slot = f, tt.Rooms[0], monday
		tt.Lessons[1].Faculty, tt.Lessons[1].Room, tt.Lessons[1].Slot = f, tt.RoomByID(3), monday

		//**Act
		before := ev.Score()
		move := ReassignSlot(tt.Lessons[1], tuesday)
		delta := ev.Delta(move)
		move.Apply()
		after := ev.Score()

		//**Assert: faculty conflict, batch conflict and same-day course repeat
		assert.Equal(t, int64(30), before.Hard)
		assert.Equal(t, int64(0), after.Hard)
		assert.Equal(t, after, before.Add(delta))
	})

	t.Run("a shared faculty across batches conflicts until moved apart", func(t *testing.T) {
		//**Arrange: two batches, one shared faculty, same Monday slot
		shared := &model.Faculty{ID: 1, Name: "Dr. Rao", MaxHoursPerDay: 4}
		room1 := &model.Room{ID: 1, Number: "101", Capacity: 60, Type: model.LectureRoom}
		room2 := &model.Room{ID: 2, Number: "102", Capacity: 60, Type: model.LectureRoom}
		courseA := &model.Course{ID: 1, Code: "CS101", Name: "Programming", LectureHours: 1,
			EligibleFaculty: []*model.Faculty{shared}}
		courseB := &model.Course{ID: 2, Code: "CS201", Name: "Networks", LectureHours: 1,
			EligibleFaculty: []*model.Faculty{shared}}
		batchA := &model.StudentBatch{ID: 1, Name: "CSE-A", Year: 2022, Strength: 40,
			Courses: []*model.Course{courseA}, LectureRoomIDs: []int64{1}}
		batchB := &model.StudentBatch{ID: 2, Name: "CSE-B", Year: 2022, Strength: 40,
			Courses: []*model.Course{courseB}, LectureRoomIDs: []int64{2}}
		tt, err := model.BuildTimetable(
			[]*model.Faculty{shared},
			[]*model.Room{room1, room2},
			[]*model.Course{courseA, courseB},
			[]*model.StudentBatch{batchA, batchB},
			slotsFor(2022, model.Weekdays...),
			nil,
		)
		assert.NoError(t, err)
		ev := NewEvaluator(tt)
		monday := findSlot(tt.Slots, model.Monday, model.Clock(9, 0), model.Clock(10, 30))
		tuesday := findSlot(tt.Slots, model.Tuesday, model.Clock(9, 0), model.Clock(10, 30))
		tt.Lessons[0].Faculty, tt.Lessons[0].Room, tt.Lessons[0].Slot = shared, room1, monday
		tt.Lessons[1].Faculty, tt.Lessons[1].Room, tt.Lessons[1].Slot = shared, room2, monday

		//**Act
		before := ev.Score()
		move := ReassignSlot(tt.Lessons[1], tuesday)
		delta := ev.Delta(move)
		move.Apply()

		//**Assert
		assert.Greater(t, before.Hard, int64(0))
		assert.Less(t, delta.Hard, int64(0))
		assert.Equal(t, int64(0), ev.Score().Hard)
	})

	t.Run("flags lessons implicated in hard violations", func(t *testing.T) {
		//**Arrange
		tt := buildProblem(smallCatalogs(), nil)
		ev := NewEvaluator(tt)
		assignClean(tt)
		monday := tt.Lessons[0].Slot
		tt.Lessons[1].Slot = monday // collide

		//**Act
		violating := ev.ViolatingLessons()

		//**Assert
		assert.Len(t, violating, 2)
	})
}

// assignClean places the two lecture lessons of the single-batch fixture on
// Monday and Tuesday mornings: a zero-hard assignment.
func assignClean(tt *model.Timetable) {
	days := []model.Day{model.Monday, model.Tuesday}
	for i, lesson := range tt.Lessons {
		lesson.Faculty = tt.Faculty[0]
		lesson.Room = tt.Rooms[0]
		lesson.Slot = findSlot(tt.Slots, days[i], model.Clock(9, 0), model.Clock(10, 30))
	}
}
