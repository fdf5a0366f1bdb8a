package decimal

import (
	"fmt"
	"math/big"
	"strconv"
)

// limbsToBigInt concatenates a limb sequence into the single integer it
// represents: the leading limb verbatim, each following limb zero-padded
// to seven digits.
func limbsToBigInt(limbs []int32) *big.Int {
	s := strconv.FormatInt(int64(limbs[0]), 10)
	if len(limbs) > 1 {
		var b []byte
		b = append(b, s...)
		for _, l := range limbs[1:] {
			b = append(b, fmt.Sprintf("%07d", l)...)
		}
		s = string(b)
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(newInternalError(s, "malformed limb sequence"))
	}
	return v
}

// bigIntToLimbs splits a nonnegative integer into base-Base limbs, most
// significant first, with the leading limb holding the 1-7 digit
// remainder and every following limb exactly seven digits. Trailing
// all-zero limbs are dropped (they never change the represented value).
func bigIntToLimbs(c *big.Int) []int32 {
	s := c.String()
	if s == "0" {
		return []int32{0}
	}

	n := len(s)
	firstLen := n % 7
	if firstLen == 0 {
		firstLen = 7
	}

	limbs := make([]int32, 0, (n+6)/7)
	v, _ := strconv.ParseInt(s[:firstLen], 10, 32)
	limbs = append(limbs, int32(v))
	for i := firstLen; i < n; i += 7 {
		v, _ := strconv.ParseInt(s[i:i+7], 10, 32)
		limbs = append(limbs, int32(v))
	}

	for len(limbs) > 1 && limbs[len(limbs)-1] == 0 {
		limbs = limbs[:len(limbs)-1]
	}
	return limbs
}

func countDigits(c *big.Int) int {
	if c.Sign() == 0 {
		return 1
	}
	return len(c.String())
}
