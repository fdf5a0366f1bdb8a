// Package decimal implements the arbitrary-precision decimal value that
// package codec and package eval both operate on. It plays the role the
// design calls "the decimal host contract": sign, decimal exponent, and a
// base-10,000,000 limb sequence, plus a handful of arithmetic and
// comparison operations. It is intentionally small; precision, rounding,
// and the arithmetic algorithms here are ambient plumbing, not the focus
// of this module.
package decimal

import (
	"math/big"

	"github.com/trippwill/decx/imath"
)

// Sign identifies the sign of a Decimal. NaN values carry SignNaN rather
// than Positive or Negative.
type Sign int8

const (
	Negative Sign = -1
	Positive Sign = 1
	SignNaN  Sign = 0
)

func (s Sign) String() string {
	switch s {
	case Negative:
		return "-"
	case Positive:
		return "+"
	default:
		return "NaN"
	}
}

// Base is the radix of one mantissa limb, matching the host library's
// internal digit grouping.
const Base int32 = 10_000_000

// MaxExp and MinExp bound the decimal exponent a finite Decimal may carry.
// A byte string decoded to an exponent outside this range collapses to NaN
// (see codec.Decode).
const (
	MaxExp int64 = 9_000_000_000_000_000
	MinExp int64 = -9_000_000_000_000_000
)

type form uint8

const (
	formFinite form = iota
	formInfinite
	formNaN
)

// Decimal is a sign, an (optional) decimal exponent, and an (optional)
// nonempty sequence of base-Base limbs, per the shared decimal view: a
// special value (NaN, ±Infinity) carries only a sign; a finite value
// carries a sign, an exponent, and limbs with limbs[0] in [1, Base) (the
// single exception being the literal zero, represented as limbs{0}).
type Decimal struct {
	f     form
	sign  Sign
	exp   int64
	limbs []int32
}

// NaN returns the quiet NaN decimal. Its sign is SignNaN, not ±1.
func NaN() *Decimal {
	return &Decimal{f: formNaN, sign: SignNaN}
}

// Inf returns signed infinity.
func Inf(sign Sign) *Decimal {
	return &Decimal{f: formInfinite, sign: normSign(sign)}
}

// Zero returns signed zero.
func Zero(sign Sign) *Decimal {
	return &Decimal{f: formFinite, sign: normSign(sign), exp: 0, limbs: []int32{0}}
}

func normSign(s Sign) Sign {
	if s == Negative {
		return Negative
	}
	return Positive
}

// New constructs a finite Decimal from a sign, decimal exponent, and limb
// sequence, exactly as codec.Decode materializes one. Callers must pass
// well-formed limbs (limbs[0] in [1, Base), or the single limb {0} for
// zero); New does not renormalize.
func New(sign Sign, exp int64, limbs []int32) *Decimal {
	if len(limbs) == 0 {
		return Zero(sign)
	}
	out := make([]int32, len(limbs))
	copy(out, limbs)
	return &Decimal{f: formFinite, sign: normSign(sign), exp: exp, limbs: out}
}

// Sign reports the sign of d, or SignNaN if d is NaN.
func (d *Decimal) Sign() Sign {
	if d == nil {
		return SignNaN
	}
	return d.sign
}

// Exponent reports d's decimal exponent. ok is false for NaN and Infinity,
// which have no exponent.
func (d *Decimal) Exponent() (exp int64, ok bool) {
	if d == nil || d.f != formFinite {
		return 0, false
	}
	return d.exp, true
}

// Limbs returns d's mantissa limb sequence, or nil if d is not finite.
// The returned slice must not be mutated by the caller.
func (d *Decimal) Limbs() []int32 {
	if d == nil || d.f != formFinite {
		return nil
	}
	return d.limbs
}

func (d *Decimal) IsFinite() bool { return d != nil && d.f == formFinite }
func (d *Decimal) IsNaN() bool    { return d == nil || d.f == formNaN }
func (d *Decimal) IsInf() bool    { return d != nil && d.f == formInfinite }

func (d *Decimal) IsZero() bool {
	return d.IsFinite() && len(d.limbs) == 1 && d.limbs[0] == 0
}

func (d *Decimal) IsNegative() bool {
	return d != nil && d.f != formNaN && d.sign == Negative
}

func (d *Decimal) IsPositive() bool {
	return d != nil && d.f != formNaN && d.sign == Positive
}

// toRat converts a finite Decimal to an exact signed rational. Callers
// must only call this on finite values.
func (d *Decimal) toRat() *big.Rat {
	mant := limbsToBigInt(d.limbs)
	k := int64(len(d.limbs) - 1)
	effExp := d.exp - 7*k
	r := new(big.Rat).SetInt(mant)
	if effExp != 0 {
		scale := new(big.Rat).SetInt(pow10(imath.Abs(effExp)))
		if effExp > 0 {
			r.Mul(r, scale)
		} else {
			r.Quo(r, scale)
		}
	}
	if d.sign == Negative {
		r.Neg(r)
	}
	return r
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}
