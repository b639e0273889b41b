package repo

import (
	"sort"
	"strings"

	"stockkeeper/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
	}
}

func matchesFilter(p models.Product, pf ProductFilter) bool {
	if pf.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(pf.Name)) {
		return false
	}
	if pf.Category != "" && !strings.EqualFold(p.Category, pf.Category) {
		return false
	}
	if pf.Supplier != "" && !strings.Contains(strings.ToLower(p.Supplier), strings.ToLower(pf.Supplier)) {
		return false
	}
	if pf.MinPrice != nil && p.Price < *pf.MinPrice {
		return false
	}
	if pf.MaxPrice != nil && p.Price > *pf.MaxPrice {
		return false
	}
	if pf.MinQty != nil && p.Quantity < *pf.MinQty {
		return false
	}
	if pf.MaxQty != nil && p.Quantity > *pf.MaxQty {
		return false
	}
	return true
}

// Filter returns the products matching pf plus the total match count before
// paging is applied.
func (r *InMemoryProductRepository) Filter(pf ProductFilter) ([]models.Product, int, error) {
	var filtered []models.Product

	for _, p := range r.products {
		if matchesFilter(p, pf) {
			filtered = append(filtered, p)
		}
	}

	// If offset is greater than the number of filtered products, return empty slice
	if pf.Offset != nil && *pf.Offset > len(filtered) {
		return []models.Product{}, 0, nil
	}

	start := 0
	if pf.Offset != nil {
		start = clamp(*pf.Offset, 0, len(filtered))
	}

	end := len(filtered)
	if pf.Limit != nil && *pf.Limit > 0 {
		end = clamp(start+*pf.Limit, start, len(filtered))
	}

	return filtered[start:end], len(filtered), nil
}

// Create adds a new product to the repository. The SKU must not collide with
// an existing product.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	for _, p := range r.products {
		if p.SKU == product.SKU {
			return models.Product{}, ErrDuplicateSKU
		}
	}
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products sorted by SKU for deterministic listings.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

// GetBySKU retrieves a product by its SKU.
func (r *InMemoryProductRepository) GetBySKU(sku string) (models.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	for i, p := range r.products {
		if p.SKU == product.SKU {
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its SKU.
func (r *InMemoryProductRepository) Delete(sku string) error {
	for i, p := range r.products {
		if p.SKU == sku {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// AdjustQuantity applies a signed stock delta. The resulting quantity must
// not go negative.
func (r *InMemoryProductRepository) AdjustQuantity(sku string, delta int) (models.Product, error) {
	for i, p := range r.products {
		if p.SKU == sku {
			if p.Quantity+delta < 0 {
				return models.Product{}, ErrInvalidQuantityChange
			}
			p.Quantity += delta
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Replace swaps the whole collection, e.g. when loading a snapshot from disk.
func (r *InMemoryProductRepository) Replace(products []models.Product) {
	r.products = make([]models.Product, len(products))
	copy(r.products, products)
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
