package model

import "github.com/samber/lo"

// StudentBatch is an immutable catalog entry for one cohort of students that
// attends all its lessons together.
type StudentBatch struct {
	ID       int64
	Name     string
	Year     int
	Strength int
	Courses  []*Course

	// Fixed room pools the batch may occupy, by lesson kind.
	LectureRoomIDs   []int64
	PracticalRoomIDs []int64
}

// RequiredLabsPerWeek is the number of weekly lab days the batch must reach:
// one per 2-hour lab session of its lab courses, matching the lesson
// expansion.
func (b *StudentBatch) RequiredLabsPerWeek() int {
	return lo.SumBy(b.Courses, func(c *Course) int {
		if c.IsLab() {
			return (c.PracticalHours + 1) / 2
		}
		return 0
	})
}

// AllowsLectureRoom reports whether the room is in the batch's lecture pool.
func (b *StudentBatch) AllowsLectureRoom(room *Room) bool {
	if room == nil {
		return false
	}
	return lo.Contains(b.LectureRoomIDs, room.ID)
}

// AllowsPracticalRoom reports whether the room is in the batch's lab pool.
func (b *StudentBatch) AllowsPracticalRoom(room *Room) bool {
	if room == nil {
		return false
	}
	return lo.Contains(b.PracticalRoomIDs, room.ID)
}
