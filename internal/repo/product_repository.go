package repo

import (
	"errors"

	"stockkeeper/internal/models"
)

// ProductRepository defines the interface for product data operations.
// Products are keyed by SKU; the key is unique across the collection.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetBySKU(sku string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(sku string) error
	AdjustQuantity(sku string, delta int) (models.Product, error)
	Filter(pf ProductFilter) ([]models.Product, int, error)
	Replace(products []models.Product)
	Clear()
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateSKU is returned when creating a product whose SKU already exists.
var ErrDuplicateSKU = errors.New("product with this SKU already exists")

// ErrInvalidQuantityChange is returned when an adjustment would make the
// quantity negative.
var ErrInvalidQuantityChange = errors.New("insufficient stock for quantity change")
