package domain

import "sort"

// SortKey selects the comparator used to order a catalog listing.
type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortOldest     SortKey = "oldest"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortRating     SortKey = "rating"
	SortPopularity SortKey = "popularity"
)

// NormalizeSortKey maps an externally supplied token to a valid SortKey.
// Unknown tokens fall back to SortNewest rather than raising an error.
func NormalizeSortKey(raw string) SortKey {
	switch key := SortKey(raw); key {
	case SortNewest, SortOldest, SortPriceAsc, SortPriceDesc, SortRating, SortPopularity:
		return key
	}
	return SortNewest
}

// ApplySort returns a new slice ordered by the given key. The sort is stable:
// ties keep their relative input order. The input slice is never reordered.
func ApplySort(products []Product, key SortKey) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	var less func(a, b Product) bool
	switch key {
	case SortOldest:
		less = func(a, b Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortPriceAsc:
		less = func(a, b Product) bool { return a.EffectivePrice().LessThan(b.EffectivePrice()) }
	case SortPriceDesc:
		less = func(a, b Product) bool { return a.EffectivePrice().GreaterThan(b.EffectivePrice()) }
	case SortRating:
		less = func(a, b Product) bool { return a.Rating > b.Rating }
	case SortPopularity:
		less = func(a, b Product) bool { return a.RatingCount > b.RatingCount }
	default:
		// SortNewest, plus any key that slipped past boundary normalization.
		less = func(a, b Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}
