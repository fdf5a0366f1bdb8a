package decimal

// Checks groups the predicate methods used throughout codec and eval to
// branch on a Decimal's form without re-deriving it from Sign/Exponent.
type Checks interface {
	IsFinite() bool
	IsSpecial() bool
	IsNaN() bool
	IsInf() bool
	IsZero() bool
	IsNegative() bool
	IsPositive() bool
}

var _ Checks = (*Decimal)(nil)

// IsSpecial reports whether d is NaN or Infinity.
func (d *Decimal) IsSpecial() bool {
	return d == nil || d.f != formFinite
}
