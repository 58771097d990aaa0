package domain

import (
	"math/big"
)

// Money represents a KRW amount with precise decimal arithmetic using big.Rat.
// Discounted prices can be fractional even though base prices are whole KRW,
// so comparisons go through rational arithmetic instead of floats.
type Money struct {
	rat *big.Rat
}

// NewMoneyKRW creates a Money from a whole KRW amount.
func NewMoneyKRW(amount int64) *Money {
	return &Money{rat: big.NewRat(amount, 1)}
}

// ApplyDiscountPercent returns the amount reduced by the given percentage.
// Percentages outside [0, 100) leave the amount unchanged.
func (m *Money) ApplyDiscountPercent(percent int64) *Money {
	if percent <= 0 || percent >= 100 {
		return m.Copy()
	}
	multiplier := big.NewRat(100-percent, 100)
	return &Money{rat: new(big.Rat).Mul(m.rat, multiplier)}
}

// Cmp compares two Money values, returning -1, 0, or +1.
func (m *Money) Cmp(other *Money) int {
	return m.rat.Cmp(other.rat)
}

// CmpKRW compares against a whole KRW amount, returning -1, 0, or +1.
func (m *Money) CmpKRW(amount int64) int {
	return m.rat.Cmp(big.NewRat(amount, 1))
}

// LessThan returns true if this Money value is less than another.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if this Money value is greater than another.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if this Money value equals another.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation (for display only,
// not calculations).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns a string representation of the money value.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy creates a deep copy of this Money instance.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
