package rpn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	testCases := []struct {
		src string
		num Number
		ok  bool
	}{
		{"0", Int(0), true},
		{"42", Int(42), true},
		{"007", Int(7), true},
		{"-3", Int(-3), true},
		{"+3", Int(3), true},
		{"9223372036854775807", Int(math.MaxInt64), true},
		{"3.5", Float(3.5), true},
		{".5", Float(0.5), true},
		{"3.", Int(3), true},
		{"3.0", Int(3), true},
		{"1e3", Int(1000), true},
		{"1E3", Int(1000), true},
		{"2.5e-1", Float(0.25), true},
		{"1e-3", Float(0.001), true},
		{"1e20", Float(1e20), true},
		{"1e999", Float(math.Inf(1)), true},
		{"-1e999", Float(math.Inf(-1)), true},
		// not numbers
		{"", Number{}, false},
		{"+", Number{}, false},
		{"-", Number{}, false},
		{"--3", Number{}, false},
		{"abc", Number{}, false},
		{"3a", Number{}, false},
		{"inf", Number{}, false},
		{"nan", Number{}, false},
		{"e", Number{}, false},
		{".", Number{}, false},
		{"1.2.3", Number{}, false},
		{"0x10", Number{}, false},
		{"0x1.8p1", Number{}, false},
		{"1_000", Number{}, false},
		{"~3", Number{}, false},
		{"**", Number{}, false},
		// out of the int64 range
		{"9223372036854775808", Number{}, false},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		num, ok := ParseNumber(tc.src)
		assert.Equal(tc.ok, ok, tc.src)
		if tc.ok {
			assert.Equal(tc.num, num, tc.src)
		}
	}
}

func TestToNumberErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := ToNumber("abc")
	var syntaxErr *SyntaxError
	if assert.ErrorAs(err, &syntaxErr) {
		assert.Equal("abc", syntaxErr.Token)
		assert.Equal("invalid number: abc", err.Error())
	}

	_, err = ToNumber("99999999999999999999")
	assert.True(IsOverflow(err))
	assert.False(IsDomainError(err))

	num, err := ToNumber("12")
	assert.NoError(err)
	assert.Equal(Int(12), num)
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		val float64
		num Number
	}{
		{0, Int(0)},
		{math.Copysign(0, -1), Int(0)},
		{4, Int(4)},
		{-4, Int(-4)},
		{5.5, Float(5.5)},
		{1e300, Float(1e300)},
		{-9223372036854775808, Int(math.MinInt64)},
		{9223372036854775808, Float(9223372036854775808)},
		{math.Inf(1), Float(math.Inf(1))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		num := normalize(tc.val)
		assert.Equal(tc.num, num, "%v", tc.val)
		// normalizing again changes nothing
		assert.Equal(num, normalize(num.Float64()), "%v", tc.val)
	}

	assert.True(math.IsNaN(normalize(math.NaN()).Float64()))
	assert.Equal(RealKind, normalize(math.NaN()).Kind())
}

func TestNumberString(t *testing.T) {
	testCases := []struct {
		num Number
		str string
	}{
		{Int(7), "7"},
		{Int(-42), "-42"},
		{Float(5.5), "5.5"},
		{Float(7), "7.0"},
		{Float(-0.25), "-0.25"},
		{Float(0.002), "0.002"},
		{Float(0.0001), "0.0001"},
		{Float(0.00001), "1e-05"},
		{Float(7.888609052210118e-31), "7.888609052210118e-31"},
		{Float(123456789.5), "123456789.5"},
		{Float(1e16), "1e+16"},
		{Float(1e20), "1e+20"},
		{Float(0), "0.0"},
		{Float(math.Inf(1)), "inf"},
		{Float(math.Inf(-1)), "-inf"},
		{Float(math.NaN()), "nan"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.str, tc.num.String())
	}
}

func TestNumberAccessors(t *testing.T) {
	assert := assert.New(t)

	i, ok := Int(3).Int64()
	assert.True(ok)
	assert.Equal(int64(3), i)
	assert.Equal(3.0, Int(3).Float64())
	assert.Equal(IntegerKind, Int(3).Kind())
	assert.Equal("integer", IntegerKind.String())

	_, ok = Float(3).Int64()
	assert.False(ok)
	assert.False(Float(3).IsInteger())
	assert.Equal("real", RealKind.String())
}

func TestNumberNeg(t *testing.T) {
	assert := assert.New(t)

	n, err := Int(3).neg()
	assert.NoError(err)
	assert.Equal(Int(-3), n)

	n, err = Float(0.5).neg()
	assert.NoError(err)
	assert.Equal(Float(-0.5), n)

	_, err = Int(math.MinInt64).neg()
	assert.True(IsOverflow(err))
}
