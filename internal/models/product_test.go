package models

import "testing"

func validProduct() Product {
	return Product{
		SKU:          "AAA11111",
		Name:         "Laptop",
		Category:     "Electronics",
		Price:        1500,
		Quantity:     4,
		ReorderLevel: 5,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Product)
		wantErr error
	}{
		{name: "valid", mutate: func(p *Product) {}},
		{name: "empty name", mutate: func(p *Product) { p.Name = "  " }, wantErr: ErrEmptyName},
		{name: "empty category", mutate: func(p *Product) { p.Category = "" }, wantErr: ErrEmptyCategory},
		{name: "negative price", mutate: func(p *Product) { p.Price = -0.01 }, wantErr: ErrNegativePrice},
		{name: "negative quantity", mutate: func(p *Product) { p.Quantity = -1 }, wantErr: ErrNegativeQuantity},
		{name: "negative reorder level", mutate: func(p *Product) { p.ReorderLevel = -1 }, wantErr: ErrNegativeReorderLevel},
		{name: "zero price is fine", mutate: func(p *Product) { p.Price = 0 }},
		{name: "zero quantity is fine", mutate: func(p *Product) { p.Quantity = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)
			if err := p.Validate(); err != tt.wantErr {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestIsLowStock(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		reorderLevel int
		want         bool
	}{
		{name: "below reorder level", quantity: 3, reorderLevel: 5, want: true},
		{name: "exactly at reorder level", quantity: 5, reorderLevel: 5, want: true},
		{name: "above reorder level", quantity: 6, reorderLevel: 5, want: false},
		{name: "zero stock", quantity: 0, reorderLevel: 0, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Quantity: tt.quantity, ReorderLevel: tt.reorderLevel}
			if got := p.IsLowStock(); got != tt.want {
				t.Errorf("IsLowStock() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalValue(t *testing.T) {
	p := Product{Price: 2.5, Quantity: 4}
	if got := p.TotalValue(); got != 10 {
		t.Errorf("TotalValue() = %v, want 10", got)
	}
}

func TestNewSKU(t *testing.T) {
	sku := NewSKU()
	if len(sku) != 8 {
		t.Errorf("expected 8-character SKU, got %q", sku)
	}
	if NewSKU() == NewSKU() {
		t.Error("two generated SKUs collided")
	}
}
