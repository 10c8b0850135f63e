package product

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// SortKey enumerates the supported catalog orderings.
type SortKey string

const (
	// SortByName orders lexicographically ascending on display name.
	SortByName SortKey = "name"
	// SortByPriceLow orders ascending on effective (discounted) price.
	SortByPriceLow SortKey = "price-low"
	// SortByPriceHigh orders descending on effective (discounted) price.
	SortByPriceHigh SortKey = "price-high"
	// SortByNewest orders descending on creation timestamp.
	SortByNewest SortKey = "newest"
	// SortByOldest orders ascending on creation timestamp.
	SortByOldest SortKey = "oldest"
)

// Filters narrows a product collection. Nil price bounds and a false InStock
// flag leave the corresponding dimension unconstrained. Price bounds are
// inclusive and compared against the effective price.
type Filters struct {
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	InStock  bool
}

// SearchParams drives one pass of the catalog pipeline.
type SearchParams struct {
	CategoryID string
	SearchTerm string
	Filters    Filters
	SortBy     SortKey
	Page       int
	PageSize   int
}

// SearchResult holds the requested page plus totals over the whole match set.
type SearchResult struct {
	Products   []Product
	Total      int
	Page       int
	TotalPages int
}

// Search applies the catalog filter/sort/paginate pipeline to an in-memory
// product collection: category scope, trimmed case-insensitive term over
// name/description/SKU, inclusive effective-price bounds, stock filter, stable
// sort, then page slicing. The input slice is never mutated and the function
// has no other side effects, so identical parameters always yield identical
// output.
//
// A non-positive PageSize is clamped to 1. A page beyond the last yields an
// empty slice with the totals still populated.
func Search(products []Product, params SearchParams) SearchResult {
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if p.CategoryID != params.CategoryID {
			continue
		}
		matched = append(matched, p)
	}

	if term := strings.TrimSpace(params.SearchTerm); term != "" {
		term = strings.ToLower(term)
		kept := matched[:0]
		for _, p := range matched {
			if containsFold(p.Name, term) ||
				containsFold(p.Description, term) ||
				containsFold(p.SKU, term) {
				kept = append(kept, p)
			}
		}
		matched = kept
	}

	if params.Filters.MinPrice != nil {
		kept := matched[:0]
		for _, p := range matched {
			if p.EffectivePrice().GreaterThanOrEqual(*params.Filters.MinPrice) {
				kept = append(kept, p)
			}
		}
		matched = kept
	}
	if params.Filters.MaxPrice != nil {
		kept := matched[:0]
		for _, p := range matched {
			if p.EffectivePrice().LessThanOrEqual(*params.Filters.MaxPrice) {
				kept = append(kept, p)
			}
		}
		matched = kept
	}
	if params.Filters.InStock {
		kept := matched[:0]
		for _, p := range matched {
			if p.InStock() {
				kept = append(kept, p)
			}
		}
		matched = kept
	}

	sortProducts(matched, params.SortBy)

	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = 1
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}

	total := len(matched)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return SearchResult{
		Products:   matched[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

// sortProducts orders the slice in place. The sort is stable so ties keep
// their original relative order.
func sortProducts(products []Product, key SortKey) {
	var less func(a, b Product) bool
	switch key {
	case SortByPriceLow:
		less = func(a, b Product) bool {
			return a.EffectivePrice().LessThan(b.EffectivePrice())
		}
	case SortByPriceHigh:
		less = func(a, b Product) bool {
			return a.EffectivePrice().GreaterThan(b.EffectivePrice())
		}
	case SortByNewest:
		less = func(a, b Product) bool {
			return a.CreatedAt.After(b.CreatedAt)
		}
	case SortByOldest:
		less = func(a, b Product) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	default:
		less = func(a, b Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	sort.SliceStable(products, func(i, j int) bool {
		return less(products[i], products[j])
	})
}

// containsFold reports whether s contains the already-lowercased term.
func containsFold(s, lowerTerm string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
