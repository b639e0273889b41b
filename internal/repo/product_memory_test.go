package repo

import (
	"testing"

	"stockkeeper/internal/models"
)

func seedRepo(t *testing.T) *InMemoryProductRepository {
	t.Helper()
	r := NewInMemoryProductRepository()
	products := []models.Product{
		{SKU: "AAA11111", Name: "Laptop", Category: "Electronics", Supplier: "Acme Corp", Price: 1500, Quantity: 4, ReorderLevel: 5},
		{SKU: "BBB22222", Name: "Mouse", Category: "Electronics", Supplier: "Acme Corp", Price: 25, Quantity: 40, ReorderLevel: 10},
		{SKU: "CCC33333", Name: "Desk Lamp", Category: "Furniture", Supplier: "Brightline", Price: 35, Quantity: 0, ReorderLevel: 3},
	}
	for _, p := range products {
		if _, err := r.Create(p); err != nil {
			t.Fatalf("seeding repo: %v", err)
		}
	}
	return r
}

func TestCreate_DuplicateSKU(t *testing.T) {
	r := seedRepo(t)

	_, err := r.Create(models.Product{SKU: "AAA11111", Name: "Another Laptop"})
	if err != ErrDuplicateSKU {
		t.Fatalf("expected ErrDuplicateSKU, got %v", err)
	}

	all, _ := r.GetAll()
	if len(all) != 3 {
		t.Errorf("expected collection unchanged with 3 products, got %d", len(all))
	}
}

func TestGetAll_SortedBySKU(t *testing.T) {
	r := NewInMemoryProductRepository()
	for _, sku := range []string{"ZZZ", "AAA", "MMM"} {
		if _, err := r.Create(models.Product{SKU: sku, Name: sku}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := r.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	want := []string{"AAA", "MMM", "ZZZ"}
	for i, sku := range want {
		if all[i].SKU != sku {
			t.Errorf("position %d: expected %s, got %s", i, sku, all[i].SKU)
		}
	}
}

func TestGetBySKU_NotFound(t *testing.T) {
	r := seedRepo(t)
	if _, err := r.GetBySKU("NOPE"); err != ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAdjustQuantity(t *testing.T) {
	tests := []struct {
		name    string
		sku     string
		delta   int
		wantQty int
		wantErr error
	}{
		{name: "add stock", sku: "AAA11111", delta: 6, wantQty: 10},
		{name: "remove stock", sku: "BBB22222", delta: -10, wantQty: 30},
		{name: "remove exact quantity", sku: "AAA11111", delta: -4, wantQty: 0},
		{name: "would go negative", sku: "AAA11111", delta: -5, wantErr: ErrInvalidQuantityChange},
		{name: "unknown product", sku: "NOPE", delta: 1, wantErr: ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := seedRepo(t)
			p, err := r.AdjustQuantity(tt.sku, tt.delta)
			if err != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && p.Quantity != tt.wantQty {
				t.Errorf("expected quantity %d, got %d", tt.wantQty, p.Quantity)
			}
		})
	}
}

func TestAdjustQuantity_UnchangedOnFailure(t *testing.T) {
	r := seedRepo(t)

	if _, err := r.AdjustQuantity("AAA11111", -100); err != ErrInvalidQuantityChange {
		t.Fatalf("expected ErrInvalidQuantityChange, got %v", err)
	}

	p, _ := r.GetBySKU("AAA11111")
	if p.Quantity != 4 {
		t.Errorf("quantity changed on failed adjustment: got %d, want 4", p.Quantity)
	}
}

func TestDelete(t *testing.T) {
	r := seedRepo(t)

	if err := r.Delete("BBB22222"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.GetBySKU("BBB22222"); err != ErrProductNotFound {
		t.Errorf("expected product gone, got %v", err)
	}
	if err := r.Delete("BBB22222"); err != ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound on second delete, got %v", err)
	}
}

func TestFilter(t *testing.T) {
	r := seedRepo(t)

	two := 2
	one := 1
	cheap := 100.0

	tests := []struct {
		name      string
		filter    ProductFilter
		wantSKUs  []string
		wantTotal int
	}{
		{
			name:      "name substring case-insensitive",
			filter:    ProductFilter{Name: "lap"},
			wantSKUs:  []string{"AAA11111"},
			wantTotal: 1,
		},
		{
			name:      "category exact case-insensitive",
			filter:    ProductFilter{Category: "electronics"},
			wantSKUs:  []string{"AAA11111", "BBB22222"},
			wantTotal: 2,
		},
		{
			name:      "supplier substring",
			filter:    ProductFilter{Supplier: "acme"},
			wantSKUs:  []string{"AAA11111", "BBB22222"},
			wantTotal: 2,
		},
		{
			name:      "max price",
			filter:    ProductFilter{MaxPrice: &cheap},
			wantSKUs:  []string{"BBB22222", "CCC33333"},
			wantTotal: 2,
		},
		{
			name:      "paging",
			filter:    ProductFilter{Offset: &one, Limit: &two},
			wantSKUs:  []string{"BBB22222", "CCC33333"},
			wantTotal: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := r.Filter(tt.filter)
			if err != nil {
				t.Fatalf("Filter: %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("expected total %d, got %d", tt.wantTotal, total)
			}
			if len(got) != len(tt.wantSKUs) {
				t.Fatalf("expected %d results, got %d", len(tt.wantSKUs), len(got))
			}
			for i, sku := range tt.wantSKUs {
				if got[i].SKU != sku {
					t.Errorf("result %d: expected %s, got %s", i, sku, got[i].SKU)
				}
			}
		})
	}
}

func TestFilter_OffsetBeyondMatches(t *testing.T) {
	r := seedRepo(t)
	ten := 10

	got, total, err := r.Filter(ProductFilter{Offset: &ten})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(got) != 0 || total != 0 {
		t.Errorf("expected empty result, got %d products (total %d)", len(got), total)
	}
}
