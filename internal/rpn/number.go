package rpn

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// NumberKind tells whether a Number holds an exact integer or a real value.
type NumberKind uint8

const (
	IntegerKind NumberKind = iota
	RealKind
)

func (kind NumberKind) String() string {
	switch kind {
	case IntegerKind:
		return "integer"
	case RealKind:
		return "real"
	}
	return ""
}

// Number is a numeric value tagged with its kind. The kind is tracked
// separately from the value: a real 4.0 produced by multiplication stays
// real, which matters to the operators that accept integers only.
type Number struct {
	kind NumberKind
	i    int64
	f    float64
}

// Int creates an integer-kind number.
func Int(v int64) Number {
	return Number{kind: IntegerKind, i: v}
}

// Float creates a real-kind number.
func Float(v float64) Number {
	return Number{kind: RealKind, f: v}
}

// normalize turns f into an integer-kind number when it has no fractional
// part and fits in an int64, and into a real-kind number otherwise.
func normalize(f float64) Number {
	if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
		return Int(int64(f))
	}
	return Float(f)
}

func (n Number) Kind() NumberKind {
	return n.kind
}

func (n Number) IsInteger() bool {
	return n.kind == IntegerKind
}

// Int64 returns the integer value, ok is false for real-kind numbers.
func (n Number) Int64() (v int64, ok bool) {
	return n.i, n.kind == IntegerKind
}

// Float64 returns the value converted to a float64.
func (n Number) Float64() float64 {
	if n.kind == IntegerKind {
		return float64(n.i)
	}
	return n.f
}

func (n Number) isZero() bool {
	if n.kind == IntegerKind {
		return n.i == 0
	}
	return n.f == 0
}

func (n Number) isNegative() bool {
	if n.kind == IntegerKind {
		return n.i < 0
	}
	return n.f < 0
}

func (n Number) neg() (Number, error) {
	if n.kind == RealKind {
		return Float(-n.f), nil
	}
	if n.i == math.MinInt64 {
		return Number{}, newOverflowError(n.String(), "integer overflow: -("+n.String()+")")
	}
	return Int(-n.i), nil
}

func (n Number) String() string {
	if n.kind == IntegerKind {
		return strconv.FormatInt(n.i, 10)
	}
	return formatReal(n.f)
}

// formatReal renders f in its shortest round-trip form. Magnitudes in
// [1e-4, 1e16) are written positionally and always carry a fraction, the
// rest use an exponent.
func formatReal(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

var errNotNumber = errors.New("not a number")

// parseNumber converts a literal into a Number. Literals containing '.', 'e'
// or 'E' are reals and get normalized, everything else must be a decimal
// integer with an optional sign. It returns errNotNumber when s is not a
// literal and an *OverflowError when an integer literal does not fit in an
// int64.
func parseNumber(s string) (Number, error) {
	if strings.ContainsAny(s, ".eE") {
		// ParseFloat also understands hex floats and digit separators, which
		// are not literals here.
		if strings.ContainsAny(s, "xX_pP") {
			return Number{}, errNotNumber
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// Out of range literals still come back as ±Inf or 0.
			var numErr *strconv.NumError
			if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
				return Number{}, errNotNumber
			}
		}
		return normalize(f), nil
	}
	if !isDecimalInteger(s) {
		return Number{}, errNotNumber
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Number{}, newOverflowError(s, "integer literal out of range: "+s)
	}
	return Int(i), nil
}

func isDecimalInteger(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseNumber reports whether s is a numeric literal and returns its value.
// It never fails: anything that is not a representable number, including
// integers outside the int64 range, gives ok == false.
func ParseNumber(s string) (n Number, ok bool) {
	n, err := parseNumber(s)
	return n, err == nil
}

// ToNumber is the strict form of ParseNumber. A token that is not a number
// yields a *SyntaxError naming it; an out of range integer yields an
// *OverflowError.
func ToNumber(s string) (Number, error) {
	n, err := parseNumber(s)
	if errors.Is(err, errNotNumber) {
		return Number{}, newSyntaxError(s, "invalid number: "+s)
	}
	return n, err
}
