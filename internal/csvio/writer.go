package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/shivambu108/automated-timetable-scheduler/pkg/solver"
)

type timetableRow struct {
	Day        string `csv:"day"`
	Start      string `csv:"start"`
	End        string `csv:"end"`
	Batch      string `csv:"batch"`
	CourseCode string `csv:"course_code"`
	CourseName string `csv:"course_name"`
	LessonType string `csv:"lesson_type"`
	Faculty    string `csv:"faculty"`
	Room       string `csv:"room"`
}

// ExportTimetable writes the solved timetable to a CSV file in canonical
// report order.
func ExportTimetable(solution *solver.Solution, path string) error {
	solution.SortForReport()

	rows := make([]*timetableRow, 0, len(solution.Lessons))
	for _, l := range solution.Lessons {
		row := &timetableRow{
			CourseCode: l.Course.Code,
			CourseName: l.Course.Name,
			LessonType: l.Type.String(),
		}
		if l.Batch != nil {
			row.Batch = l.Batch.Name
		}
		if l.Slot != nil {
			row.Day = l.Slot.Day.String()
			row.Start = l.Slot.Start.String()
			row.End = l.Slot.End.String()
		}
		if l.Faculty != nil {
			row.Faculty = l.Faculty.Name
		}
		if l.Room != nil {
			row.Room = l.Room.Number
		}
		rows = append(rows, row)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %v: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("cannot write timetable to %v: %w", path, err)
	}
	return nil
}
