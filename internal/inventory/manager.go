// Package inventory holds the in-memory product collection and persists a
// full snapshot to disk after every mutation.
package inventory

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"stockkeeper/internal/models"
	"stockkeeper/internal/repo"
	"stockkeeper/internal/storage"
)

// ErrInsufficientStock is returned when a stock removal exceeds the quantity
// on hand.
var ErrInsufficientStock = repo.ErrInvalidQuantityChange

// ErrNonPositiveQuantity is returned when a stock adjustment amount is zero
// or negative.
var ErrNonPositiveQuantity = errors.New("quantity must be positive")

// Manager applies inventory operations to the in-memory collection and
// rewrites the snapshot files after each change. Operations are synchronous
// and single-threaded; a failed persist rolls the in-memory change back.
type Manager struct {
	products  repo.ProductRepository
	movements repo.MovementRepository
	store     *storage.Store
	log       *storage.MovementLog
}

// NewManager loads the product collection and movement history from disk.
func NewManager(store *storage.Store, movementLog *storage.MovementLog) (*Manager, error) {
	m := &Manager{
		products:  repo.NewInMemoryProductRepository(),
		movements: repo.NewInMemoryMovementRepository(),
		store:     store,
		log:       movementLog,
	}

	products, err := store.Load()
	if err != nil {
		return nil, err
	}
	m.products.Replace(products)

	if movementLog != nil {
		movements, err := movementLog.Load()
		if err != nil {
			return nil, err
		}
		m.movements.Replace(movements)
	}

	return m, nil
}

// ProductInput carries the fields for a new product. SKU is optional and
// generated when empty; ReorderLevel defaults when nil.
type ProductInput struct {
	SKU          string
	Name         string
	Category     string
	Price        float64
	Quantity     int
	Description  string
	ReorderLevel *int
	Supplier     string
}

// ProductUpdate carries optional field changes; nil fields keep the current
// value.
type ProductUpdate struct {
	Name         *string
	Category     *string
	Price        *float64
	Quantity     *int
	Description  *string
	ReorderLevel *int
	Supplier     *string
}

// AddProduct validates and adds a new product, generating a SKU when none is
// supplied. Adding a duplicate SKU fails and leaves the collection unchanged.
func (m *Manager) AddProduct(in ProductInput) (models.Product, error) {
	reorderLevel := models.DefaultReorderLevel
	if in.ReorderLevel != nil {
		reorderLevel = *in.ReorderLevel
	}

	now := time.Now().Format(time.RFC3339)
	product := models.Product{
		SKU:          strings.TrimSpace(in.SKU),
		Name:         in.Name,
		Category:     in.Category,
		Price:        in.Price,
		Quantity:     in.Quantity,
		Description:  in.Description,
		ReorderLevel: reorderLevel,
		Supplier:     in.Supplier,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if product.SKU == "" {
		product.SKU = models.NewSKU()
	}
	if err := product.Validate(); err != nil {
		return models.Product{}, err
	}

	created, err := m.products.Create(product)
	if err != nil {
		return models.Product{}, err
	}
	if err := m.persistProducts(); err != nil {
		_ = m.products.Delete(created.SKU)
		return models.Product{}, err
	}
	return created, nil
}

// UpdateProduct applies the supplied field changes to an existing product.
func (m *Manager) UpdateProduct(sku string, changes ProductUpdate) (models.Product, error) {
	product, err := m.products.GetBySKU(sku)
	if err != nil {
		return models.Product{}, err
	}
	prior := product

	if changes.Name != nil {
		product.Name = *changes.Name
	}
	if changes.Category != nil {
		product.Category = *changes.Category
	}
	if changes.Price != nil {
		product.Price = *changes.Price
	}
	if changes.Quantity != nil {
		product.Quantity = *changes.Quantity
	}
	if changes.Description != nil {
		product.Description = *changes.Description
	}
	if changes.ReorderLevel != nil {
		product.ReorderLevel = *changes.ReorderLevel
	}
	if changes.Supplier != nil {
		product.Supplier = *changes.Supplier
	}
	if err := product.Validate(); err != nil {
		return models.Product{}, err
	}
	product.Touch()

	updated, err := m.products.Update(product)
	if err != nil {
		return models.Product{}, err
	}
	if err := m.persistProducts(); err != nil {
		_, _ = m.products.Update(prior)
		return models.Product{}, err
	}
	return updated, nil
}

// DeleteProduct removes a product by SKU.
func (m *Manager) DeleteProduct(sku string) error {
	prior, err := m.products.GetBySKU(sku)
	if err != nil {
		return err
	}
	if err := m.products.Delete(sku); err != nil {
		return err
	}
	if err := m.persistProducts(); err != nil {
		_, _ = m.products.Create(prior)
		return err
	}
	return nil
}

// Product returns a single product by SKU.
func (m *Manager) Product(sku string) (models.Product, error) {
	return m.products.GetBySKU(sku)
}

// Products returns the whole collection sorted by SKU.
func (m *Manager) Products() ([]models.Product, error) {
	return m.products.GetAll()
}

// AddStock increases the quantity on hand and logs a movement.
func (m *Manager) AddStock(sku string, quantity int) (models.Product, error) {
	if quantity <= 0 {
		return models.Product{}, ErrNonPositiveQuantity
	}
	return m.adjustStock(sku, quantity, "stock received")
}

// RemoveStock decreases the quantity on hand and logs a movement. It fails
// with ErrInsufficientStock when the amount exceeds the quantity on hand;
// the quantity is unchanged on failure.
func (m *Manager) RemoveStock(sku string, quantity int) (models.Product, error) {
	if quantity <= 0 {
		return models.Product{}, ErrNonPositiveQuantity
	}
	return m.adjustStock(sku, -quantity, "stock removed")
}

func (m *Manager) adjustStock(sku string, delta int, note string) (models.Product, error) {
	product, err := m.products.AdjustQuantity(sku, delta)
	if err != nil {
		return models.Product{}, err
	}
	product.Touch()
	if product, err = m.products.Update(product); err != nil {
		return models.Product{}, err
	}

	priorMovements := m.movements.All()
	if err := m.movements.Log(sku, delta, note); err != nil {
		return models.Product{}, err
	}

	if err := m.persistAll(); err != nil {
		_, _ = m.products.AdjustQuantity(sku, -delta)
		m.movements.Replace(priorMovements)
		return models.Product{}, err
	}

	if product.IsLowStock() {
		log.Printf("⚠️ ALERT: Product %s (%s) is at or below reorder level! Qty=%d, Reorder=%d",
			product.SKU, product.Name, product.Quantity, product.ReorderLevel)
	}
	return product, nil
}

// SearchByName returns products whose name contains the query,
// case-insensitively.
func (m *Manager) SearchByName(query string) ([]models.Product, error) {
	results, _, err := m.products.Filter(repo.ProductFilter{Name: query})
	return results, err
}

// SearchByCategory returns products in the given category (case-insensitive
// exact match).
func (m *Manager) SearchByCategory(category string) ([]models.Product, error) {
	results, _, err := m.products.Filter(repo.ProductFilter{Category: category})
	return results, err
}

// SearchBySupplier returns products whose supplier contains the query,
// case-insensitively.
func (m *Manager) SearchBySupplier(supplier string) ([]models.Product, error) {
	results, _, err := m.products.Filter(repo.ProductFilter{Supplier: supplier})
	return results, err
}

// Filter applies a combined product filter with paging.
func (m *Manager) Filter(pf repo.ProductFilter) ([]models.Product, int, error) {
	return m.products.Filter(pf)
}

// LowStock returns exactly the products with quantity at or below their
// reorder level.
func (m *Manager) LowStock() ([]models.Product, error) {
	products, err := m.products.GetAll()
	if err != nil {
		return nil, err
	}
	var low []models.Product
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

// OutOfStock returns the products with zero quantity.
func (m *Manager) OutOfStock() ([]models.Product, error) {
	products, err := m.products.GetAll()
	if err != nil {
		return nil, err
	}
	var out []models.Product
	for _, p := range products {
		if p.Quantity == 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

// Categories returns the sorted unique category names.
func (m *Manager) Categories() ([]string, error) {
	products, err := m.products.GetAll()
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var categories []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

// Movements returns the stock adjustment history for a product.
func (m *Manager) Movements(sku string, mf repo.MovementFilter) ([]models.Movement, int, error) {
	if _, err := m.products.GetBySKU(sku); err != nil {
		return nil, 0, err
	}
	return m.movements.GetBySKU(sku, mf)
}

// Backup copies the current data file and returns the backup path.
func (m *Manager) Backup() (string, error) {
	return m.store.Backup()
}

// Clear removes every product and the movement history, then persists the
// empty snapshots.
func (m *Manager) Clear() error {
	priorProducts, err := m.products.GetAll()
	if err != nil {
		return err
	}
	priorMovements := m.movements.All()

	m.products.Clear()
	m.movements.Replace(nil)

	if err := m.persistAll(); err != nil {
		m.products.Replace(priorProducts)
		m.movements.Replace(priorMovements)
		return err
	}
	return nil
}

func (m *Manager) persistProducts() error {
	products, err := m.products.GetAll()
	if err != nil {
		return err
	}
	if err := m.store.Save(products); err != nil {
		return fmt.Errorf("could not persist inventory: %w", err)
	}
	return nil
}

func (m *Manager) persistAll() error {
	if err := m.persistProducts(); err != nil {
		return err
	}
	if m.log == nil {
		return nil
	}
	if err := m.log.Save(m.movements.All()); err != nil {
		return fmt.Errorf("could not persist movements: %w", err)
	}
	return nil
}
