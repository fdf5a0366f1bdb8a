package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroAndSpecialPredicates(t *testing.T) {
	z := Zero(Positive)
	nz := Zero(Negative)
	nan := NaN()
	inf := Inf(Positive)
	ninf := Inf(Negative)

	assert.True(t, z.IsZero())
	assert.True(t, z.IsFinite())
	assert.False(t, z.IsSpecial())
	assert.True(t, nz.IsNegative())
	assert.Equal(t, SignNaN, nan.Sign())
	assert.True(t, nan.IsNaN())
	assert.True(t, inf.IsInf())
	assert.True(t, ninf.IsNegative())
}

func TestNewFromStringRoundTripsLimbs(t *testing.T) {
	tests := []struct {
		input     string
		wantLimbs []int32
		wantExp   int64
		wantSign  Sign
	}{
		{"1", []int32{1}, 0, Positive},
		{"-1", []int32{1}, 0, Negative},
		{"0.1", []int32{1}, -1, Positive},
		{"12345678", []int32{1, 2345678}, 7, Positive},
		{"1e10", []int32{1}, 10, Positive},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := NewFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSign, d.Sign())
			exp, ok := d.Exponent()
			require.True(t, ok)
			assert.Equal(t, tt.wantExp, exp)
			assert.Equal(t, tt.wantLimbs, d.Limbs())
		})
	}
}

func TestNewFromStringSpecials(t *testing.T) {
	nan, err := NewFromString("NaN")
	require.NoError(t, err)
	assert.True(t, nan.IsNaN())

	inf, err := NewFromString("Infinity")
	require.NoError(t, err)
	assert.True(t, inf.IsInf())
	assert.True(t, inf.IsPositive())

	ninf, err := NewFromString("-Infinity")
	require.NoError(t, err)
	assert.True(t, ninf.IsNegative())
}

func TestNewFromStringInvalid(t *testing.T) {
	_, err := NewFromString("not-a-number")
	assert.Error(t, err)
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "-0", "1", "-1", "123.456", "0.0001", "9999999999999999"} {
		d, err := NewFromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, d.String())
	}
}
