package domain

import "strconv"

// DecodeID extracts the numeric prefix from a combined slug of the form
// "<id>-<humanSlug>". It returns false when the string does not start with a
// digit run immediately followed by a hyphen; callers treat that as an
// unresolvable identifier, not an error.
func DecodeID(combined string) (int64, bool) {
	n := digitPrefixLen(combined)
	if n == 0 || n >= len(combined) || combined[n] != '-' {
		return 0, false
	}
	id, err := strconv.ParseInt(combined[:n], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// SlugPortion strips the "<id>-" prefix and returns the remaining slug, or
// the whole input when the prefix pattern does not match. Display only; the
// slug portion alone does not identify a product.
func SlugPortion(combined string) string {
	n := digitPrefixLen(combined)
	if n == 0 || n+1 >= len(combined) || combined[n] != '-' {
		return combined
	}
	return combined[n+1:]
}

func digitPrefixLen(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
