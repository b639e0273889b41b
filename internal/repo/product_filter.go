package repo

// ProductFilter narrows a product listing. Nil pointer fields are ignored;
// string fields match case-insensitively.
type ProductFilter struct {
	Name     string // substring match
	Category string // exact match
	Supplier string // substring match
	MinPrice *float64
	MaxPrice *float64
	MinQty   *int
	MaxQty   *int
	Offset   *int
	Limit    *int
}
