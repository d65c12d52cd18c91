package sync

import (
	"errors"
	"fmt"
	"os"

	"github.com/MikeBiancalana/datespan/internal/dates"
	"gopkg.in/yaml.v3"
)

// Seed is the on-disk shape of an externally supplied range
type Seed struct {
	Start string `yaml:"start"`
	End   string `yaml:"end,omitempty"`
}

// ParseSeed decodes YAML seed data. Blank sides are null; each side accepts
// anything the typed date parser does.
func ParseSeed(data []byte, displayLayout string) (dates.Range, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return dates.Range{}, fmt.Errorf("failed to decode seed: %w", err)
	}

	start, err := parseSide(s.Start, displayLayout)
	if err != nil {
		return dates.Range{}, fmt.Errorf("invalid start: %w", err)
	}
	end, err := parseSide(s.End, displayLayout)
	if err != nil {
		return dates.Range{}, fmt.Errorf("invalid end: %w", err)
	}
	return dates.NewRange(start, end), nil
}

func parseSide(raw, displayLayout string) (dates.Value, error) {
	v, err := dates.Parse(raw, displayLayout)
	if errors.Is(err, dates.ErrEmptyInput) {
		return dates.Value{}, nil
	}
	return v, err
}

// ReadSeed loads a seed file
func ReadSeed(path, displayLayout string) (dates.Range, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dates.Range{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data, displayLayout)
}

// WriteSeed stores r as a seed file in ISO format
func WriteSeed(path string, r dates.Range) error {
	data, err := yaml.Marshal(Seed{Start: r.Start.String(), End: r.End.String()})
	if err != nil {
		return fmt.Errorf("failed to encode seed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write seed file: %w", err)
	}
	return nil
}
