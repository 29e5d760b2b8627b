package solver

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/shivambu108/automated-timetable-scheduler/pkg/model"
)

// recordingLogger captures warnings for assertions.
type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, v ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

// slotsFor filters the default catalog down to the menu of one enrollment
// year restricted to the given days.
func slotsFor(year int, days ...model.Day) []*model.TimeSlot {
	return lo.Filter(model.DefaultTimeSlots(), func(s *model.TimeSlot, _ int) bool {
		return lo.Contains(days, s.Day) && model.SlotAllowedForYear(year, s)
	})
}

type catalogs struct {
	faculty []*model.Faculty
	rooms   []*model.Room
	courses []*model.Course
	batches []*model.StudentBatch
	slots   []*model.TimeSlot
}

// smallCatalogs is a feasible single-batch problem: one lecture course, two
// faculty, one lecture room and one lab, the 2022 menu over the whole week.
func smallCatalogs() catalogs {
	f1 := &model.Faculty{ID: 1, Name: "Dr. Rao", MaxHoursPerDay: 4}
	f2 := &model.Faculty{ID: 2, Name: "Dr. Iyer", MaxHoursPerDay: 4}

	lectureRoom := &model.Room{ID: 1, Number: "101", Capacity: 60, Type: model.LectureRoom}
	labRoom := &model.Room{ID: 2, Number: "L1", Capacity: 60, Type: model.ComputerLab}

	course := &model.Course{
		ID: 1, Code: "CS101", Name: "Programming", Kind: model.KindRegular,
		LectureHours: 2, Credits: 4,
		EligibleFaculty: []*model.Faculty{f1, f2},
	}

	batch := &model.StudentBatch{
		ID: 1, Name: "CSE-A", Year: 2022, Strength: 40,
		Courses:          []*model.Course{course},
		LectureRoomIDs:   []int64{1},
		PracticalRoomIDs: []int64{2},
	}

	return catalogs{
		faculty: []*model.Faculty{f1, f2},
		rooms:   []*model.Room{lectureRoom, labRoom},
		courses: []*model.Course{course},
		batches: []*model.StudentBatch{batch},
		slots:   slotsFor(2022, model.Weekdays...),
	}
}

// labCatalogs extends the small problem with a lab course so every lesson
// type and group constraint participates.
func labCatalogs() catalogs {
	c := smallCatalogs()

	labCourse := &model.Course{
		ID: 2, Code: "CS102", Name: "Data Structures Lab", Kind: model.KindRegular,
		LectureHours: 1, PracticalHours: 2, Credits: 3,
		EligibleFaculty: []*model.Faculty{c.faculty[1]},
	}
	c.courses = append(c.courses, labCourse)
	c.batches[0].Courses = append(c.batches[0].Courses, labCourse)
	return c
}

func buildProblem(c catalogs, logger model.Logger) *model.Timetable {
	tt, err := model.BuildTimetable(c.faculty, c.rooms, c.courses, c.batches, c.slots, logger)
	if err != nil {
		panic(err)
	}
	return tt
}
