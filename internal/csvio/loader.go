// Package csvio loads the scheduling catalogs from flat CSV files and writes
// the finished timetable back out. Rows that cannot be resolved are skipped
// with a warning; only unreadable files are fatal.
package csvio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"

	"github.com/shivambu108/automated-timetable-scheduler/pkg/model"
)

type facultyRow struct {
	ID               int64  `csv:"id"`
	Name             string `csv:"name"`
	Subjects         string `csv:"subjects"`
	MaxHoursPerDay   int    `csv:"max_hours_per_day"`
	PreferredSlotIDs string `csv:"preferred_slot_ids"`
}

type roomRow struct {
	ID       int64  `csv:"id"`
	Number   string `csv:"number"`
	Capacity int    `csv:"capacity"`
	Type     string `csv:"type"`
}

type courseRow struct {
	ID                 int64  `csv:"id"`
	Code               string `csv:"code"`
	Name               string `csv:"name"`
	Kind               string `csv:"kind"`
	LectureHours       int    `csv:"lecture_hours"`
	TheoryHours        int    `csv:"theory_hours"`
	PracticalHours     int    `csv:"practical_hours"`
	Credits            int    `csv:"credits"`
	EligibleFacultyIDs string `csv:"eligible_faculty_ids"`
	AllowedRoomIDs     string `csv:"allowed_room_ids"`
}

type batchRow struct {
	ID               int64  `csv:"id"`
	Name             string `csv:"name"`
	Year             int    `csv:"year"`
	Strength         int    `csv:"strength"`
	CourseIDs        string `csv:"course_ids"`
	LectureRoomIDs   string `csv:"lecture_room_ids"`
	PracticalRoomIDs string `csv:"practical_room_ids"`
}

// readFiltered returns the file content with comment ("#") and blank lines
// removed, the way the institutional catalog files are annotated.
func readFiltered(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("cannot open %v: %w", file, err)
	}
	defer f.Close()

	var builder strings.Builder
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("cannot read %v: %w", file, err)
	}
	return builder.String(), nil
}

// parseIDList splits a semicolon-separated id list; empty input yields nil.
func parseIDList(value string) ([]int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parts := strings.Split(value, ";")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseList(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return lo.Map(strings.Split(value, ";"), func(s string, _ int) string { return strings.TrimSpace(s) })
}

// LoadFaculty reads and parses the faculty catalog.
func LoadFaculty(file string, logger model.Logger) ([]*model.Faculty, error) {
	content, err := readFiltered(file)
	if err != nil {
		return nil, err
	}
	var rows []*facultyRow
	if err := gocsv.UnmarshalString(content, &rows); err != nil {
		return nil, fmt.Errorf("cannot parse faculty data from %v: %w", file, err)
	}

	facultyList := make([]*model.Faculty, 0, len(rows))
	for _, row := range rows {
		preferred, err := parseIDList(row.PreferredSlotIDs)
		if err != nil {
			warn(logger, "faculty %v: bad preferred slots: %v", row.ID, err)
			continue
		}
		facultyList = append(facultyList, &model.Faculty{
			ID:               row.ID,
			Name:             row.Name,
			Subjects:         parseList(row.Subjects),
			MaxHoursPerDay:   row.MaxHoursPerDay,
			PreferredSlotIDs: preferred,
		})
	}
	return facultyList, nil
}

// LoadRooms reads and parses the room catalog.
func LoadRooms(file string, logger model.Logger) ([]*model.Room, error) {
	content, err := readFiltered(file)
	if err != nil {
		return nil, err
	}
	var rows []*roomRow
	if err := gocsv.UnmarshalString(content, &rows); err != nil {
		return nil, fmt.Errorf("cannot parse room data from %v: %w", file, err)
	}

	rooms := make([]*model.Room, 0, len(rows))
	for _, row := range rows {
		roomType, err := model.ParseRoomType(normalizeRoomType(row.Type))
		if err != nil {
			warn(logger, "room %v: %v", row.ID, err)
			continue
		}
		rooms = append(rooms, &model.Room{
			ID:       row.ID,
			Number:   row.Number,
			Capacity: row.Capacity,
			Type:     roomType,
		})
	}
	return rooms, nil
}

func normalizeRoomType(value string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(value), " ", "_"))
}

// LoadCourses reads and parses the course catalog, resolving eligible faculty
// against the already-loaded faculty list.
func LoadCourses(file string, facultyList []*model.Faculty, logger model.Logger) ([]*model.Course, error) {
	content, err := readFiltered(file)
	if err != nil {
		return nil, err
	}
	var rows []*courseRow
	if err := gocsv.UnmarshalString(content, &rows); err != nil {
		return nil, fmt.Errorf("cannot parse course data from %v: %w", file, err)
	}

	courses := make([]*model.Course, 0, len(rows))
	for _, row := range rows {
		facultyIDs, err := parseIDList(row.EligibleFacultyIDs)
		if err != nil {
			warn(logger, "course %v: bad eligible faculty: %v", row.Code, err)
			continue
		}
		eligible := lo.Filter(facultyList, func(f *model.Faculty, _ int) bool {
			return lo.Contains(facultyIDs, f.ID)
		})
		if len(eligible) < len(facultyIDs) {
			warn(logger, "course %v: %v of %v eligible faculty ids unknown", row.Code, len(facultyIDs)-len(eligible), len(facultyIDs))
		}

		allowedRooms, err := parseIDList(row.AllowedRoomIDs)
		if err != nil {
			warn(logger, "course %v: bad allowed rooms: %v", row.Code, err)
			continue
		}

		kind := model.KindRegular
		if strings.EqualFold(strings.TrimSpace(row.Kind), "minor") {
			kind = model.KindMinor
		}

		courses = append(courses, &model.Course{
			ID:              row.ID,
			Code:            row.Code,
			Name:            row.Name,
			Kind:            kind,
			LectureHours:    row.LectureHours,
			TheoryHours:     row.TheoryHours,
			PracticalHours:  row.PracticalHours,
			Credits:         row.Credits,
			EligibleFaculty: eligible,
			AllowedRoomIDs:  allowedRooms,
		})
	}
	return courses, nil
}

// LoadBatches reads and parses the student-batch catalog, resolving course
// references against the already-loaded course list.
func LoadBatches(file string, courses []*model.Course, logger model.Logger) ([]*model.StudentBatch, error) {
	content, err := readFiltered(file)
	if err != nil {
		return nil, err
	}
	var rows []*batchRow
	if err := gocsv.UnmarshalString(content, &rows); err != nil {
		return nil, fmt.Errorf("cannot parse batch data from %v: %w", file, err)
	}

	batches := make([]*model.StudentBatch, 0, len(rows))
	for _, row := range rows {
		courseIDs, err := parseIDList(row.CourseIDs)
		if err != nil {
			warn(logger, "batch %v: bad course ids: %v", row.Name, err)
			continue
		}
		lectureRooms, err := parseIDList(row.LectureRoomIDs)
		if err != nil {
			warn(logger, "batch %v: bad lecture rooms: %v", row.Name, err)
			continue
		}
		practicalRooms, err := parseIDList(row.PracticalRoomIDs)
		if err != nil {
			warn(logger, "batch %v: bad practical rooms: %v", row.Name, err)
			continue
		}

		batchCourses := lo.Filter(courses, func(c *model.Course, _ int) bool {
			return lo.Contains(courseIDs, c.ID)
		})
		if len(batchCourses) < len(courseIDs) {
			warn(logger, "batch %v: %v of %v course ids unknown", row.Name, len(courseIDs)-len(batchCourses), len(courseIDs))
		}

		batches = append(batches, &model.StudentBatch{
			ID:               row.ID,
			Name:             row.Name,
			Year:             row.Year,
			Strength:         row.Strength,
			Courses:          batchCourses,
			LectureRoomIDs:   lectureRooms,
			PracticalRoomIDs: practicalRooms,
		})
	}
	return batches, nil
}

func warn(logger model.Logger, format string, v ...any) {
	if logger != nil {
		logger.Printf(format, v...)
	}
}
