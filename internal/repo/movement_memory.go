package repo

import (
	"time"

	"stockkeeper/internal/models"
)

type InMemoryMovementRepository struct {
	movements []models.Movement
}

func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{
		movements: []models.Movement{},
	}
}

// Log appends a new inventory movement.
func (r *InMemoryMovementRepository) Log(sku string, delta int, note string) error {
	movement := models.Movement{
		SKU:       sku,
		Delta:     delta,
		Note:      note,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	r.movements = append(r.movements, movement)
	return nil
}

// GetBySKU returns all movements for a specific product, optionally filtered
// by date range and paginated.
func (r *InMemoryMovementRepository) GetBySKU(sku string, mf MovementFilter) ([]models.Movement, int, error) {
	var filtered []models.Movement
	for _, m := range r.movements {
		if m.SKU == sku {
			if (mf.Since != nil && m.CreatedAt < mf.Since.Format(time.RFC3339)) ||
				(mf.Until != nil && m.CreatedAt > mf.Until.Format(time.RFC3339)) {
				continue
			}
			filtered = append(filtered, m)
		}
	}

	if mf.Offset != nil && *mf.Offset > len(filtered) {
		return nil, 0, nil
	}

	start := 0
	if mf.Offset != nil {
		start = clamp(*mf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if mf.Limit != nil && *mf.Limit > 0 {
		end = clamp(start+*mf.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

// All returns the full movement history in insertion order.
func (r *InMemoryMovementRepository) All() []models.Movement {
	out := make([]models.Movement, len(r.movements))
	copy(out, r.movements)
	return out
}

// Replace swaps the whole history, e.g. when loading a snapshot from disk.
func (r *InMemoryMovementRepository) Replace(movements []models.Movement) {
	r.movements = make([]models.Movement, len(movements))
	copy(r.movements, movements)
}
