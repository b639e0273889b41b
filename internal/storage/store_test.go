package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"stockkeeper/internal/models"
)

func testProducts() []models.Product {
	return []models.Product{
		{
			SKU: "AAA11111", Name: "Laptop", Category: "Electronics",
			Price: 1499.99, Quantity: 4, Description: "15-inch",
			ReorderLevel: 5, Supplier: "Acme Corp",
			CreatedAt: "2026-08-30T10:00:00Z", UpdatedAt: "2026-08-30T10:00:00Z",
		},
		{
			SKU: "BBB22222", Name: "Mouse", Category: "Electronics",
			Price: 25, Quantity: 40, ReorderLevel: 10,
			CreatedAt: "2026-08-30T11:00:00Z", UpdatedAt: "2026-08-30T11:00:00Z",
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "inventory.json"))
	want := testProducts()

	if err := store.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoad_MissingFileStartsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))

	got, err := store.Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty collection, got %d products", len(got))
	}
}

func TestLoad_EmptyFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("expected no error for empty file, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty collection, got %d products", len(got))
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := NewStore(path).Load(); err == nil {
		t.Fatal("expected a parse error for corrupt file")
	}
}

func TestBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	store := NewStore(path)
	if err := store.Save(testProducts()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	backupPath, err := store.Backup()
	if err != nil {
		t.Fatalf("Backup: %v", err)
	}
	if backupPath != path+DefaultBackupSuffix {
		t.Errorf("unexpected backup path %s", backupPath)
	}

	original, _ := os.ReadFile(path)
	copied, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(original) != string(copied) {
		t.Error("backup content differs from original")
	}
}

func TestBackup_NoDataFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := store.Backup(); err == nil {
		t.Fatal("expected an error backing up a missing file")
	}
}

func TestMovementLogRoundTrip(t *testing.T) {
	log := NewMovementLog(filepath.Join(t.TempDir(), "movements.json"))
	want := []models.Movement{
		{SKU: "AAA11111", Delta: 5, Note: "stock received", CreatedAt: "2026-08-30T10:00:00Z"},
		{SKU: "AAA11111", Delta: -2, Note: "stock removed", CreatedAt: "2026-08-30T11:00:00Z"},
	}

	if err := log.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := log.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestMovementLog_MissingFileStartsEmpty(t *testing.T) {
	log := NewMovementLog(filepath.Join(t.TempDir(), "missing.json"))
	got, err := log.Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty history, got %d movements", len(got))
	}
}
