package solver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionsFromJSON(t *testing.T) {
	t.Run("reads every field", func(t *testing.T) {
		//**Arrange
		path := filepath.Join(t.TempDir(), "options.json")
		content := `{
			"timeLimitSeconds": 90,
			"instances": 4,
			"seed": 17,
			"lateAcceptanceSize": 200,
			"plateauMoves": 3000,
			"swapProbability": 0.25,
			"biasProbability": 0.6
		}`
		assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

		//**Act
		opts, err := OptionsFromJSON(path)

		//**Assert
		assert.NoError(t, err)
		assert.Equal(t, 90*time.Second, opts.TimeLimit)
		assert.Equal(t, 4, opts.Instances)
		assert.Equal(t, int64(17), opts.Seed)
		assert.Equal(t, 200, opts.LateAcceptanceSize)
		assert.Equal(t, 3000, opts.PlateauMoves)
		assert.Equal(t, 0.25, opts.SwapProbability)
		assert.Equal(t, 0.6, opts.BiasProbability)
	})

	t.Run("absent fields stay zero for defaulting", func(t *testing.T) {
		//**Arrange
		path := filepath.Join(t.TempDir(), "options.json")
		assert.NoError(t, os.WriteFile(path, []byte(`{"instances": 2}`), 0644))

		//**Act
		opts, err := OptionsFromJSON(path)

		//**Assert
		assert.NoError(t, err)
		assert.Equal(t, 2, opts.Instances)
		assert.Zero(t, opts.TimeLimit)
		assert.Zero(t, opts.Seed)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		//**Act
		_, err := OptionsFromJSON(filepath.Join(t.TempDir(), "nope.json"))

		//**Assert
		assert.Error(t, err)
	})

	t.Run("fails on malformed JSON", func(t *testing.T) {
		//**Arrange
		path := filepath.Join(t.TempDir(), "options.json")
		assert.NoError(t, os.WriteFile(path, []byte(`{broken`), 0644))

		//**Act
		_, err := OptionsFromJSON(path)

		//**Assert
		assert.Error(t, err)
	})
}

func TestTermination(t *testing.T) {
	t.Run("stops past the deadline", func(t *testing.T) {
		//**Arrange
		ctrl := newTerminationController(time.Now().Add(-time.Second), 100)

		//**Assert
		assert.True(t, ctrl.shouldStop(Score{Hard: 50}))
	})

	t.Run("keeps searching while infeasible", func(t *testing.T) {
		//**Arrange
		ctrl := newTerminationController(time.Now().Add(time.Hour), 3)
		for i := 0; i < 10; i++ {
			ctrl.recordMove(false)
		}

		//**Assert
		assert.False(t, ctrl.shouldStop(Score{Hard: 10}))
	})

	t.Run("stops on a feasible plateau", func(t *testing.T) {
		//**Arrange
		ctrl := newTerminationController(time.Now().Add(time.Hour), 3)

		//**Act + Assert
		ctrl.recordMove(false)
		ctrl.recordMove(false)
		assert.False(t, ctrl.shouldStop(Score{Hard: 0, Soft: 5}))
		ctrl.recordMove(false)
		assert.True(t, ctrl.shouldStop(Score{Hard: 0, Soft: 5}))
	})

	t.Run("an improvement resets the plateau", func(t *testing.T) {
		//**Arrange
		ctrl := newTerminationController(time.Now().Add(time.Hour), 2)
		ctrl.recordMove(false)
		ctrl.recordMove(false)

		//**Act
		ctrl.recordMove(true)

		//**Assert
		assert.False(t, ctrl.shouldStop(Score{Hard: 0}))
	})
}
