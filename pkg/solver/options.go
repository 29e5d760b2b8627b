package solver

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
)

type optionsFile struct {
	TimeLimitSeconds   int     `mapstructure:"timeLimitSeconds"`
	Instances          int     `mapstructure:"instances"`
	Seed               int64   `mapstructure:"seed"`
	LateAcceptanceSize int     `mapstructure:"lateAcceptanceSize"`
	PlateauMoves       int     `mapstructure:"plateauMoves"`
	SwapProbability    float64 `mapstructure:"swapProbability"`
	BiasProbability    float64 `mapstructure:"biasProbability"`
}

// OptionsFromJSON loads solver options from a JSON file. Absent fields keep
// their zero value and fall back to defaults at solve time.
func OptionsFromJSON(file string) (Options, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Options{}, fmt.Errorf("cannot read options file: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return Options{}, fmt.Errorf("cannot parse options file: %w", err)
	}

	var decoded optionsFile
	if err := mapstructure.Decode(raw, &decoded); err != nil {
		return Options{}, fmt.Errorf("cannot decode options file: %w", err)
	}

	return Options{
		TimeLimit:          time.Duration(decoded.TimeLimitSeconds) * time.Second,
		Instances:          decoded.Instances,
		Seed:               decoded.Seed,
		LateAcceptanceSize: decoded.LateAcceptanceSize,
		PlateauMoves:       decoded.PlateauMoves,
		SwapProbability:    decoded.SwapProbability,
		BiasProbability:    decoded.BiasProbability,
	}, nil
}
