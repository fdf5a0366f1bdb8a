// Package codec implements the self-describing, length-minimizing binary
// encoding for decimal.Decimal values: a one-byte encoding for NaN, the
// infinities, and small signed integers, and a general encoding with a
// variable-length exponent field and a run-length-compressed base-10,000,000
// mantissa, per spec.md section 4.
package codec

import (
	"math/big"

	"github.com/trippwill/decx/decimal"
	"github.com/trippwill/decx/imath"
)

// radix is the source base for the mantissa's base-256 conversion: one
// "digit" per limb value, plus two reserved sentinel values that can never
// collide with a real limb.
const radix = int64(decimal.Base) + 2

const (
	zerosSignifier = int64(decimal.Base)
	ninesSignifier = int64(decimal.Base) + 1
)

// Reserved single-byte patterns for special values.
const (
	byteNaN     byte = 0b01000000
	bytePosInf  byte = 0b01111111
	byteNegInf  byte = 0b11111111
	signBit     byte = 0x80
	expSignBit  byte = 0x40
	vMask       byte = 0x3F
	maxShortExp int64 = 30
)

// Encode produces the minimal byte string for d, per spec.md section 4.2.
func Encode(d *decimal.Decimal) []byte {
	switch {
	case d.IsNaN():
		return []byte{byteNaN}
	case d.IsInf():
		if d.IsNegative() {
			return []byte{byteNegInf}
		}
		return []byte{bytePosInf}
	}

	sign := d.Sign()
	limbs := d.Limbs()
	exp, _ := d.Exponent()

	if d.IsZero() {
		return []byte{smallIntByte(sign, 0)}
	}

	if len(limbs) == 1 {
		// A single limb's value is limbs[0] * 10**exp; fold the exponent in
		// so every representation of an integer in [1, 50] takes one byte.
		v, e := int64(limbs[0]), exp
		for e < 0 && v%10 == 0 {
			v /= 10
			e++
		}
		for e > 0 && v <= 50 {
			v *= 10
			e--
		}
		if v <= 50 && e == 0 {
			return []byte{smallIntByte(sign, int32(v))}
		}
	}

	return encodeGeneral(sign, exp, limbs)
}

// smallIntByte encodes a single-byte small integer in [0, 50], per the two
// overlapping sub-tables in spec.md section 4.1.
func smallIntByte(sign decimal.Sign, v int32) byte {
	var b byte
	if v <= 25 {
		b = byte(v) + 38
	} else {
		b = byte(v) + 12 | expSignBit
	}
	if sign == decimal.Negative {
		b |= signBit
	}
	return b
}

func encodeGeneral(sign decimal.Sign, exp int64, limbs []int32) []byte {
	var first byte
	if sign == decimal.Negative {
		first |= signBit
	}

	absExp := imath.Abs(exp)
	if exp < 0 {
		first |= expSignBit
	}

	var expBytes []byte
	switch {
	case absExp == 0:
		// v = 0, no exponent bytes.
	case absExp <= maxShortExp:
		first |= byte(absExp + 7)
	default:
		expBytes = minimalLittleEndianBytes(uint64(absExp))
		first |= byte(len(expBytes))
	}

	out := make([]byte, 0, 1+len(expBytes)+8)
	out = append(out, first)
	out = append(out, expBytes...)
	out = append(out, mantissaBytes(limbs)...)
	return out
}

// Decode reconstructs a decimal.Decimal from a byte string, per spec.md
// section 4.3. An empty byte string decodes to the sentinel nil value
// (spec.md's Open Question resolves decode-of-empty as a sentinel, not an
// error); Decode itself never returns an error, matching "decoding never
// fails (even pathological bytes decode to some decimal or to NaN via the
// range check)".
func Decode(b []byte) *decimal.Decimal {
	if len(b) == 0 {
		return nil
	}

	first := b[0]
	if len(b) == 1 {
		switch first {
		case byteNaN:
			return decimal.NaN()
		case bytePosInf:
			return decimal.Inf(decimal.Positive)
		case byteNegInf:
			return decimal.Inf(decimal.Negative)
		}
		return decodeSmallInt(first)
	}

	sign := decimal.Positive
	if first&signBit != 0 {
		sign = decimal.Negative
	}
	negExp := first&expSignBit != 0
	v := int(first & vMask)

	idx := 1
	var expMag int64
	switch {
	case v == 0:
		expMag = 0
	case v >= 1 && v <= 7:
		n := v
		if idx+n > len(b) {
			n = len(b) - idx
		}
		expMag = littleEndianUint(b[idx : idx+n])
		idx += n
	default:
		expMag = int64(v) - 7
	}
	exp := expMag
	if negExp {
		exp = -exp
	}

	limbs := materializeLimbs(b[idx:])
	if len(limbs) == 0 {
		return decimal.Zero(sign)
	}

	if imath.Clamp(exp, decimal.MinExp, decimal.MaxExp) != exp {
		return decimal.NaN()
	}

	return decimal.New(sign, exp, limbs)
}

func decodeSmallInt(b byte) *decimal.Decimal {
	sign := decimal.Positive
	if b&signBit != 0 {
		sign = decimal.Negative
	}
	flag := b&expSignBit != 0
	v := int(b & vMask)

	var value int
	if flag {
		value = v - 12
	} else {
		value = v - 38
	}
	if value < 0 || value > 50 {
		return decimal.NaN()
	}
	if value == 0 {
		return decimal.Zero(sign)
	}
	return decimal.New(sign, 0, []int32{int32(value)})
}

func minimalLittleEndianBytes(n uint64) []byte {
	var out []byte
	for n > 0 {
		out = append(out, byte(n&0xFF))
		n >>= 8
	}
	return out
}

func littleEndianUint(b []byte) int64 {
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return int64(v)
}

// mantissaBytes builds the run-length-compressed token stream for limbs
// and converts it to base-256, per spec.md section 4.2b-c.
func mantissaBytes(limbs []int32) []byte {
	return tokensToBase256(tokenizeLimbs(limbs))
}

func tokenizeLimbs(limbs []int32) []int64 {
	tokens := make([]int64, 0, len(limbs))
	i := 0
	for i < len(limbs) {
		v := limbs[i]
		if v == 0 || v == decimal.Base-1 {
			j := i
			for j < len(limbs) && limbs[j] == v {
				j++
			}
			runLen := j - i
			if runLen > 2 {
				signifier := zerosSignifier
				if v != 0 {
					signifier = ninesSignifier
				}
				remaining := runLen
				for remaining > 0 {
					chunk := remaining
					if int64(chunk) >= radix-1 {
						chunk = int(radix - 2)
					}
					tokens = append(tokens, signifier, int64(chunk))
					remaining -= chunk
				}
			} else {
				for k := 0; k < runLen; k++ {
					tokens = append(tokens, int64(v))
				}
			}
			i = j
			continue
		}
		tokens = append(tokens, int64(v))
		i++
	}
	return tokens
}

// tokensToBase256 converts a sequence of base-radix digits (most
// significant first) into a minimal big-endian byte string, maintaining a
// little-endian accumulator and multiplying by radix for each digit, per
// spec.md section 4.2c.
func tokensToBase256(tokens []int64) []byte {
	acc := []byte{0}
	for _, t := range tokens {
		carry := uint64(t)
		for i := 0; i < len(acc); i++ {
			cur := uint64(acc[i])*uint64(radix) + carry
			acc[i] = byte(cur & 0xFF)
			carry = cur >> 8
		}
		for carry > 0 {
			acc = append(acc, byte(carry&0xFF))
			carry >>= 8
		}
	}

	out := make([]byte, len(acc))
	for i, bb := range acc {
		out[len(acc)-1-i] = bb
	}
	return out
}

// materializeLimbs reverses tokensToBase256: it reads mantissa bytes as one
// big-endian base-256 integer, peels off base-radix digits least
// significant first (yielding them in reverse mantissa order), then
// expands run-length tokens while walking that list from its top back to
// original (most-significant-first) order, per spec.md section 4.3.
func materializeLimbs(mantissa []byte) []int32 {
	if len(mantissa) == 0 {
		return nil
	}

	acc := new(big.Int)
	for _, b := range mantissa {
		acc.Lsh(acc, 8)
		acc.Or(acc, big.NewInt(int64(b)))
	}

	r := new(big.Int)
	bigRadix := big.NewInt(radix)
	var digits []int64
	for acc.Sign() != 0 {
		acc.QuoRem(acc, bigRadix, r)
		digits = append(digits, r.Int64())
	}
	if len(digits) == 0 {
		digits = []int64{0}
	}

	var limbs []int32
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		switch d {
		case zerosSignifier, ninesSignifier:
			count := int64(0)
			if i > 0 {
				i--
				count = digits[i]
			}
			fill := int32(0)
			if d == ninesSignifier {
				fill = decimal.Base - 1
			}
			for k := int64(0); k < count; k++ {
				limbs = append(limbs, fill)
			}
		default:
			limbs = append(limbs, int32(d))
		}
	}
	return limbs
}
