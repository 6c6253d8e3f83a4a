package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// --- Wire format ---

const selectionVersion = 1

// selectionDTO is what the save dialog writes. Unset values are omitted.
type selectionDTO struct {
	Version int       `yaml:"version"`
	SavedAt time.Time `yaml:"saved_at"`
	Format  string    `yaml:"format"`
	Time    string    `yaml:"time,omitempty"`
	Range   []string  `yaml:"range,omitempty"`
}

func (m *model) selection(now time.Time) selectionDTO {
	return selectionDTO{
		Version: selectionVersion,
		SavedAt: now.UTC().Truncate(time.Second),
		Format:  m.cfg.Format,
		Time:    m.timeField.Value().String(),
		Range:   m.rangeField.Value().Pair(),
	}
}

// SaveSelection writes the current picker values to path as YAML.
func SaveSelection(m *model, path string) error {
	data, err := yaml.Marshal(m.selection(time.Now()))
	if err != nil {
		return fmt.Errorf("encode selection: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write selection: %w", err)
	}
	return nil
}

// LoadSelection reads a file written by SaveSelection.
func LoadSelection(path string) (selectionDTO, error) {
	var dto selectionDTO
	data, err := os.ReadFile(path)
	if err != nil {
		return dto, err
	}
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return dto, fmt.Errorf("decode selection: %w", err)
	}
	if dto.Version != selectionVersion {
		return dto, fmt.Errorf("selection version %d not supported (want %d)", dto.Version, selectionVersion)
	}
	return dto, nil
}
