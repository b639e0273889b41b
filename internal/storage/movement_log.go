package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"stockkeeper/internal/models"
)

type movementFile struct {
	Movements []models.Movement `json:"movements"`
}

// MovementLog persists the stock movement history as a JSON snapshot file,
// with the same overwrite semantics as Store.
type MovementLog struct {
	path string
}

// NewMovementLog creates a movement log for the given file path.
func NewMovementLog(path string) *MovementLog {
	return &MovementLog{path: path}
}

// Path returns the movement file path.
func (l *MovementLog) Path() string {
	return l.path
}

// Load reads the full movement history; a missing or empty file yields an
// empty history.
func (l *MovementLog) Load() ([]models.Movement, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Movement{}, nil
		}
		return nil, fmt.Errorf("failed to read movement file: %w", err)
	}
	if len(data) == 0 {
		return []models.Movement{}, nil
	}

	var file movementFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse movement file %s: %w", l.path, err)
	}
	if file.Movements == nil {
		return []models.Movement{}, nil
	}
	return file.Movements, nil
}

// Save rewrites the whole movement file.
func (l *MovementLog) Save(movements []models.Movement) error {
	if movements == nil {
		movements = []models.Movement{}
	}
	data, err := json.MarshalIndent(movementFile{Movements: movements}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode movements: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write movement file: %w", err)
	}
	return nil
}
