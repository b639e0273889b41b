// Package storage persists the inventory as whole-file JSON snapshots.
// There is no journaling and no partial write: every save rewrites the
// file, and the file is the sole source of truth between runs.
package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"stockkeeper/internal/models"
)

// DefaultBackupSuffix is appended to the data file name when a backup is made.
const DefaultBackupSuffix = ".backup"

type inventoryFile struct {
	Products []models.Product `json:"products"`
}

// Store reads and writes the product collection to a single JSON file.
type Store struct {
	path         string
	backupSuffix string
}

// NewStore creates a store for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path, backupSuffix: DefaultBackupSuffix}
}

// NewStoreWithBackupSuffix creates a store whose backups use a custom suffix.
func NewStoreWithBackupSuffix(path, suffix string) *Store {
	return &Store{path: path, backupSuffix: suffix}
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the data file exists on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the full product collection. A missing or empty file is not an
// error and yields an empty collection; malformed JSON is surfaced.
func (s *Store) Load() ([]models.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Product{}, nil
		}
		return nil, fmt.Errorf("failed to read inventory file: %w", err)
	}
	if len(data) == 0 {
		return []models.Product{}, nil
	}

	var file inventoryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse inventory file %s: %w", s.path, err)
	}
	if file.Products == nil {
		return []models.Product{}, nil
	}
	return file.Products, nil
}

// Save rewrites the whole data file with the given collection.
func (s *Store) Save(products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	data, err := json.MarshalIndent(inventoryFile{Products: products}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write inventory file: %w", err)
	}
	return nil
}

// Backup copies the data file to path+suffix and returns the backup path.
// It fails when there is no data file to copy.
func (s *Store) Backup() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read inventory file for backup: %w", err)
	}
	backupPath := s.path + s.backupSuffix
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return backupPath, nil
}
