package domain

import "strings"

// Filter describes the optional constraints applied to a catalog listing.
// All active constraints are conjunctive; a zero-value field imposes no
// restriction on its predicate. MinPrice and MaxPrice are nil when absent so
// that a legitimate zero bound stays expressible.
type Filter struct {
	Category string
	Brand    string
	Search   string
	MinPrice *int64
	MaxPrice *int64

	// InStock restricts to products with stock only when explicitly set.
	// The default listing keeps out-of-stock products visible; the
	// presentation layer flags them instead of hiding them.
	InStock bool
}

// ApplyFilter returns the products satisfying every active constraint,
// preserving the relative order of the survivors. The input slice is never
// modified.
func ApplyFilter(products []Product, f Filter) []Product {
	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Matches reports whether a single product satisfies every active constraint.
// Predicates short-circuit on the first failure.
func (f Filter) Matches(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}

	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}

	// Price bounds are inclusive and compare against the effective price,
	// not the base price.
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := p.EffectivePrice()
		if f.MinPrice != nil && price.CmpKRW(*f.MinPrice) < 0 {
			return false
		}
		if f.MaxPrice != nil && price.CmpKRW(*f.MaxPrice) > 0 {
			return false
		}
	}

	if f.InStock && p.Stock <= 0 {
		return false
	}

	if f.Search != "" {
		term := strings.ToLower(f.Search)
		titleMatch := strings.Contains(strings.ToLower(p.Title), term)
		brandMatch := strings.Contains(strings.ToLower(p.Brand), term)
		if !titleMatch && !brandMatch {
			return false
		}
	}

	return true
}
