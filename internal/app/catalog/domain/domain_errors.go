package domain

import "errors"

// Domain errors for the catalog read path.
var (
	// ErrProductNotFound is returned when a product ID or slug does not
	// resolve to a catalog record.
	ErrProductNotFound = errors.New("product not found")
)
