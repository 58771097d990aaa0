package domain

// PageResult carries one page of a listing plus the pagination metadata the
// presentation layer depends on.
type PageResult struct {
	Items       []Product
	TotalCount  int
	TotalPages  int
	CurrentPage int
	HasNext     bool
	HasPrev     bool
}

// ApplyPage slices products into the requested 1-based page. Out-of-range
// pages are not corrected: the item list is simply empty while CurrentPage
// still echoes the requested value and the has-next/has-prev flags are
// computed from it. An empty collection yields zero pages and both flags
// false regardless of the requested page.
func ApplyPage(products []Product, page, pageSize int) PageResult {
	totalCount := len(products)

	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	items := []Product{}
	start := (page - 1) * pageSize
	if start >= 0 && start < totalCount {
		end := start + pageSize
		if end > totalCount {
			end = totalCount
		}
		items = append(items, products[start:end]...)
	}

	return PageResult{
		Items:       items,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNext:     page < totalPages,
		HasPrev:     totalPages > 0 && page > 1,
	}
}
