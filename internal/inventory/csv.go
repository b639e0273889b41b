package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"stockkeeper/internal/models"
)

// ImportMode controls what happens when an imported row collides with an
// existing SKU.
type ImportMode string

const (
	// ImportSkip leaves existing products untouched and reports the row.
	ImportSkip ImportMode = "skip"
	// ImportUpdate overwrites existing products with the row values.
	ImportUpdate ImportMode = "update"
)

// RowError describes a rejected CSV row.
type RowError struct {
	Row         int    `json:"row"`
	Description string `json:"description"`
}

// ImportResult summarizes a CSV import.
type ImportResult struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors"`
}

var csvColumns = []string{"sku", "name", "category", "price", "quantity", "reorder_level", "supplier", "description"}

type csvRow struct {
	SKU          string
	Name         string
	Category     string
	Price        float64
	Quantity     int
	ReorderLevel int
	Supplier     string
	Description  string
}

func parseCSV(r io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "category", "price", "quantity"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		row := csvRow{
			SKU:          strings.TrimSpace(field(record, "sku")),
			Name:         field(record, "name"),
			Category:     field(record, "category"),
			Price:        parseFloat(field(record, "price")),
			Quantity:     parseInt(field(record, "quantity")),
			ReorderLevel: models.DefaultReorderLevel,
			Supplier:     field(record, "supplier"),
			Description:  field(record, "description"),
		}
		if s := field(record, "reorder_level"); s != "" {
			row.ReorderLevel = parseInt(s)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func nowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}

// ImportCSV reads products from a CSV stream. Rows are validated
// individually; rejected rows are reported with their row number and do not
// abort the import. The snapshot is persisted once at the end.
func (m *Manager) ImportCSV(r io.Reader, mode ImportMode) (ImportResult, error) {
	if mode != ImportUpdate {
		mode = ImportSkip // default
	}

	rows, err := parseCSV(r)
	if err != nil {
		return ImportResult{}, err
	}

	prior, err := m.products.GetAll()
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{}
	for i, row := range rows {
		rowNum := i + 2 // header is row 1

		candidate := models.Product{
			SKU:          row.SKU,
			Name:         row.Name,
			Category:     row.Category,
			Price:        row.Price,
			Quantity:     row.Quantity,
			Description:  row.Description,
			ReorderLevel: row.ReorderLevel,
			Supplier:     row.Supplier,
		}
		if err := candidate.Validate(); err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Description: err.Error()})
			continue
		}

		if row.SKU != "" {
			existing, err := m.products.GetBySKU(row.SKU)
			if err == nil {
				if mode == ImportSkip {
					result.Errors = append(result.Errors, RowError{
						Row:         rowNum,
						Description: fmt.Sprintf("product with SKU '%s' already exists", row.SKU),
					})
					continue
				}
				existing.Name = row.Name
				existing.Category = row.Category
				existing.Price = row.Price
				existing.Quantity = row.Quantity
				existing.ReorderLevel = row.ReorderLevel
				existing.Supplier = row.Supplier
				existing.Description = row.Description
				existing.Touch()
				if _, err := m.products.Update(existing); err != nil {
					result.Errors = append(result.Errors, RowError{
						Row:         rowNum,
						Description: fmt.Sprintf("failed to update '%s'", row.SKU),
					})
					continue
				}
				result.Imported++
				continue
			}
		} else {
			candidate.SKU = models.NewSKU()
		}

		now := nowRFC3339()
		candidate.CreatedAt = now
		candidate.UpdatedAt = now
		if _, err := m.products.Create(candidate); err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Description: err.Error()})
			continue
		}
		result.Imported++
	}

	if err := m.persistProducts(); err != nil {
		m.products.Replace(prior)
		return ImportResult{}, err
	}
	return result, nil
}

// ExportCSV writes the whole collection as CSV, one row per product.
func (m *Manager) ExportCSV(w io.Writer) error {
	products, err := m.products.GetAll()
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range products {
		record := []string{
			p.SKU,
			p.Name,
			p.Category,
			strconv.FormatFloat(p.Price, 'f', -1, 64),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.ReorderLevel),
			p.Supplier,
			p.Description,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
