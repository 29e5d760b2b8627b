package solver

import (
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/shivambu108/automated-timetable-scheduler/pkg/model"
)

func TestConstruct(t *testing.T) {
	t.Run("always produces a complete assignment", func(t *testing.T) {
		//**Arrange
		tt := buildProblem(labCatalogs(), nil)
		domains := NewDomainProvider(tt)
		ev := NewEvaluator(tt)

		//**Act
		Construct(tt, domains, ev, rand.New(rand.NewSource(3)), nil)

		//**Assert
		for _, lesson := range tt.Lessons {
			assert.True(t, lesson.IsAssigned(), "lesson %v", lesson.ID)
		}
	})

	t.Run("finds a clean placement when one exists", func(t *testing.T) {
		//**Arrange
		tt := buildProblem(labCatalogs(), nil)
		domains := NewDomainProvider(tt)
		ev := NewEvaluator(tt)

		//**Act
		Construct(tt, domains, ev, rand.New(rand.NewSource(3)), nil)

		//**Assert: a handful of lessons against a week of slots fits greedily
		assert.Equal(t, int64(0), ev.Score().Hard)
	})

	t.Run("different seeds diverge", func(t *testing.T) {
		//**Arrange
		first := buildProblem(labCatalogs(), nil)
		second := buildProblem(labCatalogs(), nil)

		//**Act
		Construct(first, NewDomainProvider(first), NewEvaluator(first), rand.New(rand.NewSource(1)), nil)
		Construct(second, NewDomainProvider(second), NewEvaluator(second), rand.New(rand.NewSource(2)), nil)

		//**Assert
		sameEverywhere := true
		for i := range first.Lessons {
			if first.Lessons[i].Slot.ID != second.Lessons[i].Slot.ID ||
				first.Lessons[i].Room.ID != second.Lessons[i].Room.ID {
				sameEverywhere = false
			}
		}
		assert.False(t, sameEverywhere)
	})

	t.Run("warns when lab lessons cannot spread over enough days", func(t *testing.T) {
		//**Arrange: two lab sessions required, lab slots on Monday only
		c := labCatalogs()
		c.courses[1].PracticalHours = 4
		c.slots = lo.Filter(c.slots, func(s *model.TimeSlot, _ int) bool {
			return s.Kind != model.SlotLab || s.Day == model.Monday
		})
		logger := &recordingLogger{}
		tt := buildProblem(c, logger)
		logger.lines = nil

		//**Act
		Construct(tt, NewDomainProvider(tt), NewEvaluator(tt), rand.New(rand.NewSource(5)), logger)

		//**Assert
		assert.NotEmpty(t, logger.lines)
	})

	t.Run("leaves undrawable fields unset on a defective domain", func(t *testing.T) {
		//**Arrange: the batch has no practical rooms resolvable for its lab
		c := labCatalogs()
		c.batches[0].PracticalRoomIDs = []int64{99} // no such room
		tt := buildProblem(c, nil)

		//**Act
		Construct(tt, NewDomainProvider(tt), NewEvaluator(tt), rand.New(rand.NewSource(5)), nil)

		//**Assert
		lab, found := lo.Find(tt.Lessons, func(l *model.Lesson) bool { return l.Type == model.Lab })
		assert.True(t, found)
		assert.Nil(t, lab.Room)
		assert.NotNil(t, lab.Slot)
		assert.False(t, lab.IsAssigned())
	})
}
