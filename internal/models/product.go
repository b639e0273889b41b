package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultReorderLevel is applied when a product is created without an
// explicit reorder threshold.
const DefaultReorderLevel = 10

// Product represents a product entity in the inventory system.
type Product struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
	Description  string  `json:"description"`
	ReorderLevel int     `json:"reorder_level"`
	Supplier     string  `json:"supplier"`
	CreatedAt    string  `json:"created_at,omitempty"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

var (
	ErrEmptyName            = errors.New("product name cannot be empty")
	ErrEmptyCategory        = errors.New("category cannot be empty")
	ErrNegativePrice        = errors.New("price cannot be negative")
	ErrNegativeQuantity     = errors.New("quantity cannot be negative")
	ErrNegativeReorderLevel = errors.New("reorder level cannot be negative")
)

// Validate checks the product invariants: non-empty name and category,
// non-negative price, quantity and reorder level.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(p.Category) == "" {
		return ErrEmptyCategory
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if p.ReorderLevel < 0 {
		return ErrNegativeReorderLevel
	}
	return nil
}

// IsLowStock reports whether the product is at or below its reorder level.
func (p Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// TotalValue returns the stock value of this product (price times quantity).
func (p Product) TotalValue() float64 {
	return p.Price * float64(p.Quantity)
}

// Touch bumps the updated_at timestamp.
func (p *Product) Touch() {
	p.UpdatedAt = time.Now().Format(time.RFC3339)
}

// NewSKU generates a short uppercase product key from a random UUID.
func NewSKU() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
