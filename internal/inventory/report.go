package inventory

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"stockkeeper/internal/models"
	"stockkeeper/internal/repo"
)

// CategoryValue is the total stock value of one category.
type CategoryValue struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// Report aggregates the state of the whole inventory.
type Report struct {
	GeneratedAt     string           `json:"generated_at"`
	ProductCount    int              `json:"product_count"`
	TotalUnits      int              `json:"total_units"`
	TotalValue      float64          `json:"total_value"`
	ValueByCategory []CategoryValue  `json:"value_by_category"`
	LowStock        []models.Product `json:"low_stock"`
	OutOfStock      []models.Product `json:"out_of_stock"`
}

// TotalValue returns the value of all stock on hand.
func (m *Manager) TotalValue() (float64, error) {
	products, err := m.products.GetAll()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, p := range products {
		total += p.TotalValue()
	}
	return total, nil
}

// TotalStock returns the total quantity of all items on hand.
func (m *Manager) TotalStock() (int, error) {
	products, err := m.products.GetAll()
	if err != nil {
		return 0, err
	}
	var total int
	for _, p := range products {
		total += p.Quantity
	}
	return total, nil
}

// ValueByCategory returns the stock value grouped by category.
func (m *Manager) ValueByCategory() (map[string]float64, error) {
	products, err := m.products.GetAll()
	if err != nil {
		return nil, err
	}
	values := map[string]float64{}
	for _, p := range products {
		values[p.Category] += p.TotalValue()
	}
	return values, nil
}

// Report builds the full inventory report.
func (m *Manager) Report() (Report, error) {
	products, err := m.products.GetAll()
	if err != nil {
		return Report{}, err
	}

	r := Report{
		GeneratedAt:  time.Now().Format("2006-01-02 15:04:05"),
		ProductCount: len(products),
	}

	byCategory := map[string]float64{}
	for _, p := range products {
		r.TotalUnits += p.Quantity
		r.TotalValue += p.TotalValue()
		byCategory[p.Category] += p.TotalValue()
		if p.IsLowStock() {
			r.LowStock = append(r.LowStock, p)
		}
		if p.Quantity == 0 {
			r.OutOfStock = append(r.OutOfStock, p)
		}
	}

	for category, value := range byCategory {
		r.ValueByCategory = append(r.ValueByCategory, CategoryValue{Category: category, Value: value})
	}
	sort.Slice(r.ValueByCategory, func(i, j int) bool {
		return r.ValueByCategory[i].Category < r.ValueByCategory[j].Category
	})

	return r, nil
}

// Render formats the report as plain text.
func (r Report) Render() string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "INVENTORY REPORT")
	fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Total Products: %d\n", r.ProductCount)
	fmt.Fprintf(&b, "Total Stock Count: %d units\n", r.TotalUnits)
	fmt.Fprintf(&b, "Total Inventory Value: $%.2f\n", r.TotalValue)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "--- Value by Category ---")
	for _, cv := range r.ValueByCategory {
		fmt.Fprintf(&b, "  %s: $%.2f\n", cv.Category, cv.Value)
	}

	if len(r.LowStock) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "--- Low Stock Alert ---")
		fmt.Fprintf(&b, "  %d product(s) at or below reorder level:\n", len(r.LowStock))
		for _, p := range r.LowStock {
			fmt.Fprintf(&b, "    - %s (SKU: %s): %d units (reorder at %d)\n",
				p.Name, p.SKU, p.Quantity, p.ReorderLevel)
		}
	}

	if len(r.OutOfStock) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, "--- Out of Stock ---")
		fmt.Fprintf(&b, "  %d product(s) out of stock:\n", len(r.OutOfStock))
		for _, p := range r.OutOfStock {
			fmt.Fprintf(&b, "    - %s (SKU: %s)\n", p.Name, p.SKU)
		}
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)
	return b.String()
}

// MostMovedProduct names the product with the largest movement count.
type MostMovedProduct struct {
	Name          string `json:"name"`
	MovementCount int    `json:"movement_count"`
}

// Metrics is a compact dashboard summary of the inventory.
type Metrics struct {
	TotalProducts    int              `json:"total_products"`
	TotalMovements   int              `json:"total_movements"`
	LowStockCount    int              `json:"low_stock_count"`
	MostMovedProduct MostMovedProduct `json:"most_moved_product"`
}

// Metrics computes the dashboard summary.
func (m *Manager) Metrics() (Metrics, error) {
	metrics := Metrics{}

	products, err := m.products.GetAll()
	if err != nil {
		return metrics, err
	}
	metrics.TotalProducts = len(products)

	for _, product := range products {
		_, count, err := m.movements.GetBySKU(product.SKU, repo.MovementFilter{})
		if err != nil {
			return metrics, err
		}
		metrics.TotalMovements += count
		if count > metrics.MostMovedProduct.MovementCount {
			metrics.MostMovedProduct.Name = product.Name
			metrics.MostMovedProduct.MovementCount = count
		}
	}

	for _, product := range products {
		if product.IsLowStock() {
			metrics.LowStockCount++
		}
	}

	return metrics, nil
}
