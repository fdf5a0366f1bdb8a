package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trippwill/decx/decimal"
)

func parse(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return v
}

func TestEncodeSpecialsAreSingleByte(t *testing.T) {
	assert.Equal(t, []byte{0x40}, Encode(decimal.NaN()))
	assert.Equal(t, []byte{0x7F}, Encode(decimal.Inf(decimal.Positive)))
	assert.Equal(t, []byte{0xFF}, Encode(decimal.Inf(decimal.Negative)))
}

func TestEncodeSmallIntegersMatchWorkedExamples(t *testing.T) {
	assert.Equal(t, []byte{0x26}, Encode(parse(t, "0")))
	assert.Equal(t, []byte{0xA6}, Encode(parse(t, "-0")))
	assert.Equal(t, []byte{0x27}, Encode(parse(t, "1")))
	assert.Equal(t, []byte{0xA7}, Encode(parse(t, "-1")))
}

func TestEncode50IsOneByteAnd51IsNot(t *testing.T) {
	assert.Equal(t, []byte{0x7E}, Encode(parse(t, "50")))
	assert.Greater(t, len(Encode(parse(t, "51"))), 1)
}

func TestRoundTripSmallIntegers(t *testing.T) {
	for _, s := range []string{"0", "-0", "1", "-1", "25", "26", "50", "-50"} {
		want := parse(t, s)
		got := Decode(Encode(want))
		assert.Equal(t, want.String(), got.String(), "round trip of %s", s)
	}
}

func TestRoundTripGeneralValues(t *testing.T) {
	for _, s := range []string{
		"51", "-51", "123.456", "0.0001", "9999999999999999",
		"1e50", "1e-50", "123456789012345678901234567890",
	} {
		want := parse(t, s)
		got := Decode(Encode(want))
		assert.Equal(t, want.String(), got.String(), "round trip of %s", s)
	}
}

func TestRoundTripSpecials(t *testing.T) {
	assert.True(t, Decode(Encode(decimal.NaN())).IsNaN())
	assert.True(t, Decode(Encode(decimal.Inf(decimal.Positive))).IsInf())
	assert.True(t, Decode(Encode(decimal.Inf(decimal.Negative))).IsNegative())
}

func TestDecodeEmptyIsNilSentinel(t *testing.T) {
	assert.Nil(t, Decode(nil))
	assert.Nil(t, Decode([]byte{}))
}

func TestRunLengthCompressionOfZerosAndNines(t *testing.T) {
	zeros := decimal.New(decimal.Positive, 7*4, []int32{1, 0, 0, 0, 0})
	nines := decimal.New(decimal.Positive, 7*4, []int32{1, decimal.Base - 1, decimal.Base - 1, decimal.Base - 1, decimal.Base - 1})

	zEnc := Encode(zeros)
	nEnc := Encode(nines)

	assert.Equal(t, zeros.Limbs(), Decode(zEnc).Limbs())
	assert.Equal(t, nines.Limbs(), Decode(nEnc).Limbs())
}

func TestRunsOfTwoAreLiteral(t *testing.T) {
	// Exactly two repeated zero limbs must not trigger run-length coding:
	// materialize should still recover exactly two zero limbs.
	v := decimal.New(decimal.Positive, 21, []int32{1, 0, 0})
	got := Decode(Encode(v))
	assert.Equal(t, v.Limbs(), got.Limbs())
}

func TestExponentOutOfRangeDecodesToNaN(t *testing.T) {
	// Construct a general-case byte string whose exponent byte count field
	// (v=7, the max short-count) carries a magnitude larger than MaxExp.
	b := []byte{0x07, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}
	got := Decode(b)
	assert.True(t, got.IsNaN())
}

func TestFuzzRoundTripCorpus(t *testing.T) {
	for _, s := range []string{
		"0", "1", "-1", "2", "100", "1000000", "0.5", "-0.5",
		"3.14159265358979", "-2.71828", "1e100", "1e-100",
		"99999999999999999999999999999999999999",
	} {
		want := parse(t, s)
		got := Decode(Encode(want))
		require.NotNil(t, got)
		assert.Equal(t, want.String(), got.String())
	}
}

func FuzzEncodeDecodeRoundTrip(f *testing.F) {
	for _, s := range []string{"0", "1", "-1", "123.456", "1e20", "-1e-20"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Skip()
		}
		got := Decode(Encode(d))
		if d.IsFinite() {
			require.NotNil(t, got)
			assert.Equal(t, d.String(), got.String())
		}
	})
}

func FuzzDecodeNeverPanics(f *testing.F) {
	f.Add([]byte{0x40})
	f.Add([]byte{0x26})
	f.Add([]byte{0x00, 0x01, 0x02, 0x03})
	f.Fuzz(func(t *testing.T, b []byte) {
		_ = Decode(b)
	})
}
