package decimal

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NewFromInt64 constructs a finite Decimal from a signed integer.
func NewFromInt64(v int64) *Decimal {
	sign := Positive
	if v < 0 {
		sign = Negative
		v = -v
	}
	c := new(big.Int).SetInt64(v)
	limbs := bigIntToLimbs(c)
	exp := int64(7 * ((countDigits(c)+6)/7 - 1))
	return New(sign, exp, limbs)
}

// NewFromFloat64 constructs a Decimal from a float64 via the shortest
// base-10 string that parses back to the same float64 (strconv's 'g'
// format with precision -1), not the exact binary value.
func NewFromFloat64(v float64) (*Decimal, error) {
	if v != v { // NaN
		return NaN(), nil
	}
	if v > maxFloat64Finite || v < -maxFloat64Finite {
		sign := Positive
		if v < 0 {
			sign = Negative
		}
		return Inf(sign), nil
	}
	return NewFromString(strconv.FormatFloat(v, 'g', -1, 64))
}

const maxFloat64Finite = 1.7976931348623157e+308

// NewFromString parses a decimal literal, matching the host library's
// Parse contract: leading sign, optional fractional part, optional
// exponent suffix, and the special strings "nan"/"inf"/"infinity"
// (case-insensitively, each optionally signed).
func NewFromString(s string) (*Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, newConversionError(s)
	}

	lower := strings.ToLower(s)
	switch lower {
	case "nan", "+nan", "-nan":
		return NaN(), nil
	case "inf", "+inf", "infinity", "+infinity":
		return Inf(Positive), nil
	case "-inf", "-infinity":
		return Inf(Negative), nil
	}

	sign := Positive
	switch s[0] {
	case '-':
		sign = Negative
		s = s[1:]
	case '+':
		s = s[1:]
	}

	mantissa, exp10, ok := splitExponent(s)
	if !ok {
		return nil, newConversionError(s)
	}

	intPart, fracPart, ok := splitPoint(mantissa)
	if !ok {
		return nil, newConversionError(s)
	}

	digits := intPart + fracPart
	if digits == "" {
		return nil, newConversionError(s)
	}
	coef, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, newConversionError(s)
	}
	if coef.Sign() == 0 {
		return Zero(sign), nil
	}

	exp := exp10 - int64(len(fracPart))
	limbs := bigIntToLimbs(coef)
	numLimbs := int64((countDigits(coef) + 6) / 7)
	exp += 7 * (numLimbs - 1)
	return New(sign, exp, limbs), nil
}

func splitExponent(s string) (mantissa string, exp int64, ok bool) {
	for i, c := range s {
		if c == 'e' || c == 'E' {
			e, err := strconv.ParseInt(s[i+1:], 10, 64)
			if err != nil {
				return "", 0, false
			}
			return s[:i], e, true
		}
	}
	return s, 0, true
}

func splitPoint(s string) (intPart, fracPart string, ok bool) {
	parts := strings.SplitN(s, ".", 2)
	switch len(parts) {
	case 1:
		return trimLeadingZeros(parts[0]), "", allDigits(parts[0])
	case 2:
		return trimLeadingZeros(parts[0]), parts[1], allDigits(parts[0]) && allDigits(parts[1])
	default:
		return "", "", false
	}
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

func newConversionError(s string) error {
	return &ConversionError{Input: s}
}

// ConversionError reports that NewFromString could not parse its input.
type ConversionError struct {
	Input string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("decimal: cannot parse %q", e.Input)
}

// String renders d in plain decimal notation.
func (d *Decimal) String() string {
	switch {
	case d.IsNaN():
		return "NaN"
	case d.IsInf():
		if d.sign == Negative {
			return "-Infinity"
		}
		return "Infinity"
	case d.IsZero():
		if d.sign == Negative {
			return "-0"
		}
		return "0"
	}

	r := new(big.Rat).Abs(d.toRat())
	frac := 0
	if effExp := d.exp - 7*int64(len(d.limbs)-1); effExp < 0 {
		frac = int(-effExp)
	}
	s := r.FloatString(frac)
	if frac > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if d.sign == Negative {
		return "-" + s
	}
	return s
}

// Format renders d for a given locale, using golang.org/x/text/number the
// way the teacher's currency package formats FixedPoint values.
func (d *Decimal) Format(tag language.Tag) string {
	if !d.IsFinite() {
		return d.String()
	}
	f, _ := d.toRat().Float64()
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(f))
}
