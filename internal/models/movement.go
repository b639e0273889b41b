package models

// Movement records a single stock adjustment for a product. Positive deltas
// are stock received, negative deltas are stock removed.
type Movement struct {
	SKU       string `json:"sku"`
	Delta     int    `json:"delta"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"created_at"`
}
