package repo

import (
	"stockkeeper/internal/models"
)

// MovementRepository records the stock adjustment history.
type MovementRepository interface {
	Log(sku string, delta int, note string) error
	GetBySKU(sku string, mf MovementFilter) ([]models.Movement, int, error)
	All() []models.Movement
	Replace(movements []models.Movement)
}
