package repo

import "strings"

// Sort keys accepted by ProductFilter.SortBy.
const (
	SortByName     = "name"
	SortByStock    = "stock"
	SortByPrice    = "price"
	SortByCategory = "category"
)

type ProductFilter struct {
	// Search matches name or SKU, case-insensitively.
	Search string
	// Category is an exact category name.
	Category string
	SortBy   string
	Desc     bool
	Offset   *int
	Limit    *int
}

func ValidSortField(s string) bool {
	switch s {
	case "", SortByName, SortByStock, SortByPrice, SortByCategory:
		return true
	}
	return false
}

func (f ProductFilter) search() string {
	return strings.ToLower(strings.TrimSpace(f.Search))
}
