package model

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMissingEssentialData is returned when any of the four input catalogs is
// empty: no solve is attempted.
var ErrMissingEssentialData = errors.New("missing essential data")

// Logger receives builder warnings and solver progress lines. *log.Logger
// satisfies it; nil disables output.
type Logger interface {
	Printf(format string, v ...any)
}

func logf(logger Logger, format string, v ...any) {
	if logger != nil {
		logger.Printf(format, v...)
	}
}

// BuildTimetable expands the validated catalogs into the lesson set the solver
// will assign. Per batch and course it emits lectureHours+theoryHours LECTURE
// lessons and one LAB lesson per started 2-hour practical block; per minor
// course it emits lectureHours batch-independent MINOR lessons. Courses with
// no eligible faculty and batches with empty room pools are skipped with a
// warning. Lesson ids are monotonic and deterministic: the lesson set of a
// given catalog is reproducible.
func BuildTimetable(facultyList []*Faculty, roomList []*Room, courseList []*Course, batchList []*StudentBatch, slotList []*TimeSlot, logger Logger) (*Timetable, error) {
	if len(facultyList) == 0 || len(roomList) == 0 || len(courseList) == 0 || len(batchList) == 0 {
		return nil, fmt.Errorf("cannot build timetable: %w", ErrMissingEssentialData)
	}
	if len(slotList) == 0 {
		return nil, fmt.Errorf("cannot build timetable, no time slots: %w", ErrMissingEssentialData)
	}

	batches := make([]*StudentBatch, len(batchList))
	copy(batches, batchList)
	sort.Slice(batches, func(i, j int) bool { return batches[i].ID < batches[j].ID })

	lessons := []*Lesson{}
	id := int64(1)
	emit := func(course *Course, batch *StudentBatch, lessonType LessonType) {
		lessons = append(lessons, &Lesson{
			ID:     id,
			Course: course,
			Batch:  batch,
			Type:   lessonType,
		})
		id++
	}

	for _, batch := range batches {
		if len(batch.LectureRoomIDs) == 0 {
			logf(logger, "batch %v has no lecture rooms assigned, skipping", batch.Name)
			continue
		}
		for _, course := range batch.Courses {
			if course.Kind == KindMinor {
				continue // minors are batch-independent, emitted below
			}
			if len(course.EligibleFaculty) == 0 {
				logf(logger, "course %v has no eligible faculty, skipping", course.Code)
				continue
			}
			for i := 0; i < course.LectureHours+course.TheoryHours; i++ {
				emit(course, batch, Lecture)
			}
			labLessons := (course.PracticalHours + 1) / 2
			if labLessons > 0 && len(batch.PracticalRoomIDs) == 0 {
				logf(logger, "batch %v has no practical rooms assigned, skipping labs for %v", batch.Name, course.Code)
				continue
			}
			for i := 0; i < labLessons; i++ {
				emit(course, batch, Lab)
			}
		}
	}

	for _, course := range courseList {
		if course.Kind != KindMinor {
			continue
		}
		if len(course.EligibleFaculty) == 0 {
			logf(logger, "minor course %v has no eligible faculty, skipping", course.Code)
			continue
		}
		for i := 0; i < course.LectureHours; i++ {
			emit(course, nil, Minor)
		}
	}

	return &Timetable{
		Lessons: lessons,
		Faculty: facultyList,
		Rooms:   roomList,
		Slots:   slotList,
		Batches: batches,
		Courses: courseList,
	}, nil
}
