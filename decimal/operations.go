package decimal

import "math/big"

// Operations groups the arithmetic and comparison surface codec and eval
// consume from a Decimal host, per spec.md section 6: plus, minus, times,
// div, mod, pow, sqrt, and the five comparisons.
type Operations interface {
	Plus(*Decimal, *Context) *Decimal
	Minus(*Decimal, *Context) *Decimal
	Times(*Decimal, *Context) *Decimal
	Div(*Decimal, *Context) *Decimal
	Mod(*Decimal, *Context) *Decimal
	Pow(*Decimal, *Context) *Decimal
	Sqrt(*Context) *Decimal
	Eq(*Decimal) bool
	Gt(*Decimal) bool
	Gte(*Decimal) bool
	Lt(*Decimal) bool
	Lte(*Decimal) bool
}

var _ Operations = (*Decimal)(nil)

// Plus returns a+b, rounded per ctx.
func (a *Decimal) Plus(b *Decimal, ctx *Context) *Decimal {
	if a.IsNaN() || b.IsNaN() {
		return NaN()
	}
	if a.IsInf() || b.IsInf() {
		switch {
		case a.IsInf() && b.IsInf():
			if a.sign != b.sign {
				ctx.orBasic().raise(SignalInvalidOperation)
				return NaN()
			}
			return Inf(a.sign)
		case a.IsInf():
			return Inf(a.sign)
		default:
			return Inf(b.sign)
		}
	}
	sum := new(big.Rat).Add(a.toRat(), b.toRat())
	return fromRat(sum, Positive, ctx)
}

// Minus returns a-b, rounded per ctx.
func (a *Decimal) Minus(b *Decimal, ctx *Context) *Decimal {
	return a.Plus(b.Neg(), ctx)
}

// Neg returns -a, unrounded (negation never loses precision).
func (a *Decimal) Neg() *Decimal {
	if a.IsNaN() {
		return NaN()
	}
	flipped := Negative
	if a.sign == Negative {
		flipped = Positive
	}
	if a.IsInf() {
		return Inf(flipped)
	}
	return New(flipped, a.exp, a.limbs)
}

// Abs returns |a|.
func (a *Decimal) Abs() *Decimal {
	if a.IsNegative() {
		return a.Neg()
	}
	return a
}

// Times returns a*b, rounded per ctx.
func (a *Decimal) Times(b *Decimal, ctx *Context) *Decimal {
	if a.IsNaN() || b.IsNaN() {
		return NaN()
	}
	resultSign := Positive
	if (a.sign == Negative) != (b.sign == Negative) {
		resultSign = Negative
	}
	if a.IsInf() || b.IsInf() {
		if a.IsZero() || b.IsZero() {
			ctx.orBasic().raise(SignalInvalidOperation)
			return NaN()
		}
		return Inf(resultSign)
	}
	product := new(big.Rat).Mul(a.toRat(), b.toRat())
	return fromRat(product, resultSign, ctx)
}

// Div returns a/b, rounded per ctx.
func (a *Decimal) Div(b *Decimal, ctx *Context) *Decimal {
	if a.IsNaN() || b.IsNaN() {
		return NaN()
	}
	resultSign := Positive
	if (a.sign == Negative) != (b.sign == Negative) {
		resultSign = Negative
	}
	if b.IsZero() {
		if a.IsZero() {
			ctx.orBasic().raise(SignalInvalidOperation)
			return NaN()
		}
		ctx.orBasic().raise(SignalDivisionByZero)
		return Inf(resultSign)
	}
	if b.IsInf() {
		if a.IsInf() {
			ctx.orBasic().raise(SignalInvalidOperation)
			return NaN()
		}
		return Zero(resultSign)
	}
	if a.IsInf() {
		return Inf(resultSign)
	}
	if a.IsZero() {
		return Zero(resultSign)
	}
	quotient := new(big.Rat).Quo(a.toRat(), b.toRat())
	return fromRat(quotient, resultSign, ctx)
}

// Mod returns the remainder of a/b with the sign of a, in the style of
// decimal.js's `%` operator (truncated division, not floored).
func (a *Decimal) Mod(b *Decimal, ctx *Context) *Decimal {
	if a.IsNaN() || b.IsNaN() || a.IsInf() || b.IsZero() {
		ctx.orBasic().raise(SignalInvalidOperation)
		return NaN()
	}
	if b.IsInf() {
		return a
	}
	quotient := new(big.Rat).Quo(a.toRat(), b.toRat())
	truncated := new(big.Int).Quo(quotient.Num(), quotient.Denom())
	scaledDivisor := new(big.Rat).Mul(b.toRat(), new(big.Rat).SetInt(truncated))
	remainder := new(big.Rat).Sub(a.toRat(), scaledDivisor)
	return fromRat(remainder, a.sign, ctx)
}

// Pow returns a**b, rounded per ctx. Integer exponents are computed
// exactly via repeated rational squaring; non-integer exponents fall back
// to float64 math.Pow, since real exponentiation of an arbitrary-precision
// base is outside this module's scope (see DESIGN.md).
func (a *Decimal) Pow(b *Decimal, ctx *Context) *Decimal {
	if a.IsNaN() || b.IsNaN() {
		return NaN()
	}
	if n, ok := b.asInt64(); ok {
		return a.powInt(n, ctx)
	}
	af, _ := a.Float64()
	bf, _ := b.Float64()
	result, err := NewFromFloat64(mathPow(af, bf))
	if err != nil || !result.IsFinite() {
		return result
	}
	return fromRat(result.toRat(), result.sign, ctx)
}

func (a *Decimal) powInt(n int64, ctx *Context) *Decimal {
	if n == 0 {
		return New(Positive, 0, []int32{1})
	}
	negExp := n < 0
	if negExp {
		n = -n
	}
	base := a.toRat()
	acc := new(big.Rat).SetInt64(1)
	b := new(big.Rat).Set(base)
	for n > 0 {
		if n&1 == 1 {
			acc.Mul(acc, b)
		}
		b.Mul(b, b)
		n >>= 1
	}
	if negExp {
		if acc.Sign() == 0 {
			ctx.orBasic().raise(SignalDivisionByZero)
			return Inf(Positive)
		}
		acc.Inv(acc)
	}
	return fromRat(acc, Positive, ctx)
}

// Sqrt returns the square root of a, rounded per ctx. Negative operands
// are invalid (this module never produces complex results).
func (a *Decimal) Sqrt(ctx *Context) *Decimal {
	if a.IsNaN() || a.IsNegative() {
		ctx.orBasic().raise(SignalInvalidOperation)
		return NaN()
	}
	if a.IsInf() {
		return Inf(Positive)
	}
	if a.IsZero() {
		return Zero(Positive)
	}

	prec := uint(ctx.orBasic().Precision)*4 + 64
	// Feed big.Float the exact numerator/denominator rather than a
	// float64-rounded seed, so Sqrt operates at full requested precision
	// instead of float64's ~53 bits.
	num := new(big.Float).SetPrec(prec).SetInt(a.toRat().Num())
	den := new(big.Float).SetPrec(prec).SetInt(a.toRat().Denom())
	exact := new(big.Float).SetPrec(prec).Quo(num, den)
	root := new(big.Float).SetPrec(prec).Sqrt(exact)

	rat, _ := root.Rat(nil)
	return fromRat(rat, Positive, ctx)
}

// Eq reports whether a and b compare equal. Two NaNs compare equal here
// (matching spec.md's decode-time NaN handling), even though IEEE 754
// ordinarily treats NaN as unordered; callers that need IEEE ordering
// should check IsNaN first.
func (a *Decimal) Eq(b *Decimal) bool {
	if a.IsNaN() && b.IsNaN() {
		return true
	}
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a.cmp(b) == 0
}

func (a *Decimal) Gt(b *Decimal) bool  { return !a.IsNaN() && !b.IsNaN() && a.cmp(b) > 0 }
func (a *Decimal) Gte(b *Decimal) bool { return !a.IsNaN() && !b.IsNaN() && a.cmp(b) >= 0 }
func (a *Decimal) Lt(b *Decimal) bool  { return !a.IsNaN() && !b.IsNaN() && a.cmp(b) < 0 }
func (a *Decimal) Lte(b *Decimal) bool { return !a.IsNaN() && !b.IsNaN() && a.cmp(b) <= 0 }

func (a *Decimal) cmp(b *Decimal) int {
	switch {
	case a.IsInf() && b.IsInf():
		return int(a.sign) - int(b.sign)
	case a.IsInf():
		return int(a.sign)
	case b.IsInf():
		return -int(b.sign)
	default:
		return a.toRat().Cmp(b.toRat())
	}
}

// asInt64 reports whether a is a finite integer value and returns it.
func (a *Decimal) asInt64() (int64, bool) {
	if !a.IsFinite() {
		return 0, false
	}
	r := a.toRat()
	if !r.IsInt() {
		return 0, false
	}
	if !r.Num().IsInt64() {
		return 0, false
	}
	return r.Num().Int64(), true
}

// Float64 converts a to the nearest float64, for operations (like
// non-integer Pow) that this module explicitly does not carry to full
// decimal precision.
func (a *Decimal) Float64() (float64, bool) {
	if !a.IsFinite() {
		if a.IsInf() {
			if a.sign == Negative {
				return negInf, true
			}
			return posInf, true
		}
		return 0, false
	}
	f, _ := a.toRat().Float64()
	return f, true
}
