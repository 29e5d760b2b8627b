package solver

import (
	"github.com/samber/lo"

	"github.com/shivambu108/automated-timetable-scheduler/pkg/model"
)

// DomainProvider yields the legal candidate values of each assignable lesson
// field. Every value a correct solver may ever place on a lesson comes from
// here; the move generator proposes nothing outside it.
type DomainProvider interface {
	Faculty(l *model.Lesson) []*model.Faculty
	Rooms(l *model.Lesson) []*model.Room
	Slots(l *model.Lesson) []*model.TimeSlot
}

type lessonDomain struct {
	faculty []*model.Faculty
	rooms   []*model.Room
	slots   []*model.TimeSlot
}

// catalogDomains precomputes per-lesson candidate pools from the catalogs:
// eligible faculty, the batch room pool matching the lesson type (or the minor
// course's fixed pool), and the batch-year slot menu (or the minor menu).
// Lesson domains are static, they never change during search.
type catalogDomains struct {
	byLesson map[int64]*lessonDomain
}

func NewDomainProvider(tt *model.Timetable) DomainProvider {
	domains := &catalogDomains{byLesson: make(map[int64]*lessonDomain, len(tt.Lessons))}
	for _, l := range tt.Lessons {
		domains.byLesson[l.ID] = buildLessonDomain(tt, l)
	}
	return domains
}

func buildLessonDomain(tt *model.Timetable, l *model.Lesson) *lessonDomain {
	domain := &lessonDomain{faculty: l.Course.EligibleFaculty}

	var roomIDs []int64
	switch l.Type {
	case model.Lab:
		roomIDs = l.Batch.PracticalRoomIDs
	case model.Lecture:
		roomIDs = l.Batch.LectureRoomIDs
	default:
		roomIDs = l.Course.AllowedRoomIDs
	}
	for _, id := range roomIDs {
		if room := tt.RoomByID(id); room != nil {
			domain.rooms = append(domain.rooms, room)
		}
	}

	domain.slots = lo.Filter(tt.Slots, func(s *model.TimeSlot, _ int) bool {
		if l.Type == model.Minor {
			return model.SlotAllowedForMinor(s)
		}
		return model.SlotAllowedForYear(l.Batch.Year, s)
	})
	return domain
}

func (d *catalogDomains) Faculty(l *model.Lesson) []*model.Faculty {
	return d.byLesson[l.ID].faculty
}

func (d *catalogDomains) Rooms(l *model.Lesson) []*model.Room {
	return d.byLesson[l.ID].rooms
}

func (d *catalogDomains) Slots(l *model.Lesson) []*model.TimeSlot {
	return d.byLesson[l.ID].slots
}
