package decimal

import (
	"fmt"
	"math"
	"math/big"
)

// Rounding defines the rounding modes available when a result's exact
// coefficient carries more digits than the active Context's Precision.
type Rounding int

const (
	// RoundTiesToEven rounds to the nearest value; on an exact tie it
	// rounds to the value with an even final digit. The default.
	RoundTiesToEven Rounding = iota

	// RoundTiesToAway rounds to the nearest value; on an exact tie it
	// rounds away from zero.
	RoundTiesToAway

	// RoundTowardPositive rounds toward positive infinity.
	RoundTowardPositive

	// RoundTowardNegative rounds toward negative infinity.
	RoundTowardNegative

	// RoundTowardZero truncates.
	RoundTowardZero
)

// DefaultRoundingMode is the default rounding mode (RoundTiesToEven).
const DefaultRoundingMode = RoundTiesToEven

// MaxRoundingMode is the highest valid Rounding value; used to validate a
// Context's configured mode.
const MaxRoundingMode = RoundTowardZero

func (r Rounding) String() string {
	switch r {
	case RoundTiesToEven:
		return "RoundTiesToEven"
	case RoundTiesToAway:
		return "RoundTiesToAway"
	case RoundTowardPositive:
		return "RoundTowardPositive"
	case RoundTowardNegative:
		return "RoundTowardNegative"
	case RoundTowardZero:
		return "RoundTowardZero"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

var ten = big.NewInt(10)

// roundRat rounds the exact rational r to precision significant decimal
// digits under mode, returning the unsigned coefficient and the decimal
// exponent of its least-significant digit such that
// |r| ~= coef * 10**lsbExp.
//
// It works the way a guard-digit-plus-sticky-bit rounder works in fixed
// hardware: scale r until its integer part carries precision+1 digits,
// then fold the dropped digit and an "anything nonzero beyond it?" flag
// into the rounding decision, rather than computing the infinite decimal
// expansion.
func roundRat(r *big.Rat, precision Precision, mode Rounding, negative bool) (coef *big.Int, lsbExp int64) {
	num := new(big.Int).Abs(r.Num())
	den := r.Denom() // always positive

	guardDigits := int(precision) + 1
	shift := digitShift(num, den, guardDigits)

	var scaledNum, scaledDen *big.Int
	if shift >= 0 {
		scaledNum = new(big.Int).Mul(num, pow10(int64(shift)))
		scaledDen = den
	} else {
		scaledNum = num
		scaledDen = new(big.Int).Mul(den, pow10(int64(-shift)))
	}

	q, rem := new(big.Int).QuoRem(scaledNum, scaledDen, new(big.Int))
	sticky := rem.Sign() != 0

	// The estimate in digitShift can be off by a digit or two; nudge it
	// back into range rather than re-deriving it exactly.
	for countDigits(q) > guardDigits {
		if new(big.Int).Mod(q, ten).Sign() != 0 {
			sticky = true
		}
		q.Quo(q, ten)
		shift--
	}
	for countDigits(q) < guardDigits {
		rem.Mul(rem, ten)
		digit := new(big.Int).Quo(rem, scaledDen)
		rem.Mod(rem, scaledDen)
		q.Mul(q, ten)
		q.Add(q, digit)
		shift++
	}
	if rem.Sign() != 0 {
		sticky = true
	}

	lastDigit := new(big.Int).Mod(q, ten).Int64()
	coef = new(big.Int).Quo(q, ten)

	roundUp := false
	switch mode {
	case RoundTiesToEven:
		if lastDigit > 5 || (lastDigit == 5 && sticky) {
			roundUp = true
		} else if lastDigit == 5 && !sticky {
			roundUp = new(big.Int).Mod(coef, big.NewInt(2)).Sign() != 0
		}
	case RoundTiesToAway:
		roundUp = lastDigit >= 5
	case RoundTowardPositive:
		roundUp = !negative && (lastDigit > 0 || sticky)
	case RoundTowardNegative:
		roundUp = negative && (lastDigit > 0 || sticky)
	case RoundTowardZero:
		roundUp = false
	}
	if roundUp {
		coef.Add(coef, big.NewInt(1))
	}

	lsbExp = int64(shift)*-1 + 1
	// value ~= q * 10^(-shift); after dropping the guard digit the
	// coefficient's least-significant digit sits one power of ten higher.
	if countDigits(coef) > int(precision) {
		coef.Quo(coef, ten)
		lsbExp++
	}
	return coef, lsbExp
}

// digitShift estimates, via a binary-exponent approximation, the power of
// ten by which num/den must be multiplied so the integer quotient carries
// `digits` decimal digits. The caller corrects any off-by-one error.
func digitShift(num, den *big.Int, digits int) int {
	if num.Sign() == 0 {
		return 0
	}
	f := new(big.Float).SetPrec(64).Quo(new(big.Float).SetInt(num), new(big.Float).SetInt(den))
	exp2 := f.MantExp(nil)
	exp10 := int(math.Floor(float64(exp2-1) * math.Log10(2)))
	return digits - 1 - exp10
}
