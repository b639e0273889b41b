package inventory

import (
	"bytes"
	"strings"
	"testing"
)

const sampleCSV = `sku,name,category,price,quantity,reorder_level,supplier,description
AAA11111,Laptop,Electronics,1500,4,5,Acme Corp,15-inch
,Mouse,Electronics,25,40,10,Acme Corp,
`

func TestImportCSV(t *testing.T) {
	m := newTestManager(t)

	result, err := m.ImportCSV(strings.NewReader(sampleCSV), ImportSkip)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if result.Imported != 2 {
		t.Fatalf("expected 2 imported, got %d (errors: %+v)", result.Imported, result.Errors)
	}

	product, err := m.Product("AAA11111")
	if err != nil {
		t.Fatalf("imported product missing: %v", err)
	}
	if product.Name != "Laptop" || product.Quantity != 4 || product.ReorderLevel != 5 {
		t.Errorf("imported fields mismatch: %+v", product)
	}

	products, _ := m.Products()
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	for _, p := range products {
		if p.SKU == "" {
			t.Error("row without SKU did not get one generated")
		}
	}
}

func TestImportCSV_SkipMode(t *testing.T) {
	m := newTestManager(t)
	addTestProduct(t, m, "AAA11111", "Original", 100, 1)

	result, err := m.ImportCSV(strings.NewReader(sampleCSV), ImportSkip)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("expected 1 imported, got %d", result.Imported)
	}
	if len(result.Errors) != 1 || result.Errors[0].Row != 2 {
		t.Errorf("expected a row 2 collision error, got %+v", result.Errors)
	}

	product, _ := m.Product("AAA11111")
	if product.Name != "Original" {
		t.Errorf("skip mode overwrote existing product: %+v", product)
	}
}

func TestImportCSV_UpdateMode(t *testing.T) {
	m := newTestManager(t)
	addTestProduct(t, m, "AAA11111", "Original", 100, 1)

	result, err := m.ImportCSV(strings.NewReader(sampleCSV), ImportUpdate)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("expected 2 imported, got %d (errors: %+v)", result.Imported, result.Errors)
	}

	product, _ := m.Product("AAA11111")
	if product.Name != "Laptop" || product.Price != 1500 {
		t.Errorf("update mode did not overwrite: %+v", product)
	}
}

func TestImportCSV_RowValidation(t *testing.T) {
	m := newTestManager(t)
	csvData := `sku,name,category,price,quantity
AAA11111,Laptop,Electronics,1500,4
BBB22222,,Electronics,10,1
CCC33333,Cable,Accessories,-5,1
`

	result, err := m.ImportCSV(strings.NewReader(csvData), ImportSkip)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("expected 1 imported, got %d", result.Imported)
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 row errors, got %+v", result.Errors)
	}
	if result.Errors[0].Row != 3 || result.Errors[1].Row != 4 {
		t.Errorf("wrong row numbers: %+v", result.Errors)
	}
}

func TestImportCSV_MissingColumn(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.ImportCSV(strings.NewReader("sku,name\nAAA,Laptop\n"), ImportSkip); err == nil {
		t.Fatal("expected an error for missing required columns")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	m := newTestManager(t)
	addTestProduct(t, m, "AAA11111", "Laptop", 1500, 4)
	addTestProduct(t, m, "BBB22222", "Mouse", 25.5, 40)

	var buf bytes.Buffer
	if err := m.ExportCSV(&buf); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	other := newTestManager(t)
	result, err := other.ImportCSV(&buf, ImportSkip)
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if result.Imported != 2 {
		t.Fatalf("expected 2 imported, got %d (errors: %+v)", result.Imported, result.Errors)
	}

	product, err := other.Product("BBB22222")
	if err != nil {
		t.Fatalf("round-tripped product missing: %v", err)
	}
	if product.Name != "Mouse" || product.Price != 25.5 || product.Quantity != 40 || product.Supplier != "Acme Corp" {
		t.Errorf("round-tripped fields mismatch: %+v", product)
	}
}
