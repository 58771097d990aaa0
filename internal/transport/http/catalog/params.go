package catalog

import "strconv"

// Slug inventory windows default to the original sitemap batch size.
const (
	defaultSlugLimit = 1000
	maxSlugLimit     = 10000
)

// Query parameter parsing for the listing path. Malformed values fall back
// to defaults; this path never rejects a request over a bad number.

// parsePage parses a 1-based page number, defaulting to 1. Values below 1
// are treated as absent; out-of-range pages above the total are passed
// through untouched and resolved by the pager.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// parsePageSize parses the caller-supplied page size, defaulting and capping.
func parsePageSize(raw string, def, max int) int {
	size, err := strconv.Atoi(raw)
	if err != nil || size < 1 {
		return def
	}
	if size > max {
		return max
	}
	return size
}

// parseLimit parses a non-negative limit with a default and a cap. Zero is a
// valid explicit limit.
func parseLimit(raw string, def, max int) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// parseOffset parses a non-negative offset, defaulting to 0.
func parseOffset(raw string) int {
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

// parseOptionalInt parses an optional integer parameter, nil when absent or
// malformed.
func parseOptionalInt(raw string) *int64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

// parseBool accepts "true" and "1" as true; everything else is false.
func parseBool(raw string) bool {
	return raw == "true" || raw == "1"
}
