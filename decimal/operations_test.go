package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(t *testing.T, s string) *Decimal {
	t.Helper()
	v, err := NewFromString(s)
	require.NoError(t, err)
	return v
}

func TestPlusExact(t *testing.T) {
	ctx := BasicContext()
	sum := d(t, "0.1").Plus(d(t, "0.2"), ctx)
	assert.Equal(t, "0.3", sum.String())
}

func TestTimesAndDiv(t *testing.T) {
	ctx := BasicContext()
	assert.Equal(t, "6", d(t, "2").Times(d(t, "3"), ctx).String())
	assert.Equal(t, "0.5", d(t, "1").Div(d(t, "2"), ctx).String())
}

func TestDivByZero(t *testing.T) {
	ctx := BasicContext()
	result := d(t, "1").Div(d(t, "0"), ctx)
	assert.True(t, result.IsInf())
	assert.NotZero(t, ctx.Signals()&SignalDivisionByZero)
}

func TestZeroDivZeroIsNaN(t *testing.T) {
	ctx := BasicContext()
	result := d(t, "0").Div(d(t, "0"), ctx)
	assert.True(t, result.IsNaN())
}

func TestPowIntegerExact(t *testing.T) {
	ctx := BasicContext()
	assert.Equal(t, "8", d(t, "2").Pow(d(t, "3"), ctx).String())
	assert.Equal(t, "0.125", d(t, "2").Pow(d(t, "-3"), ctx).String())
}

func TestSqrt(t *testing.T) {
	ctx := BasicContext()
	result := d(t, "4").Sqrt(ctx)
	assert.Equal(t, "2", result.String())
}

func TestComparisons(t *testing.T) {
	assert.True(t, d(t, "2").Lt(d(t, "3")))
	assert.True(t, d(t, "3").Gte(d(t, "3")))
	assert.True(t, d(t, "3").Eq(d(t, "3")))
	assert.True(t, NaN().Eq(NaN()))
	assert.False(t, NaN().Gt(d(t, "1")))
}

func TestModTruncated(t *testing.T) {
	ctx := BasicContext()
	assert.Equal(t, "1", d(t, "7").Mod(d(t, "3"), ctx).String())
	assert.Equal(t, "-1", d(t, "-7").Mod(d(t, "3"), ctx).String())
}
