package rpn

import (
	"fmt"
	"math"
)

// binaryFn applies an operator to its left and right operands
type binaryFn func(lhs, rhs Number) (Number, error)

// Operators lists the symbols understood by the evaluator.
var Operators = []string{"+", "-", "*", "/", "//", "%", "**"}

// operatorTable builds the symbol table of an evaluator. Exponents whose
// magnitude reaches maxPower are not computed.
func operatorTable(maxPower float64) map[string]binaryFn {
	return map[string]binaryFn{
		"+":  add,
		"-":  sub,
		"*":  mul,
		"/":  div,
		"//": floorDiv,
		"%":  mod,
		"**": pow(maxPower),
	}
}

func add(lhs, rhs Number) (Number, error) {
	if lhs.IsInteger() && rhs.IsInteger() {
		if sum, ok := addInt(lhs.i, rhs.i); ok {
			return Int(sum), nil
		}
		return Number{}, overflow("+", lhs, rhs)
	}
	return Float(lhs.Float64() + rhs.Float64()), nil
}

func sub(lhs, rhs Number) (Number, error) {
	if lhs.IsInteger() && rhs.IsInteger() {
		if diff, ok := subInt(lhs.i, rhs.i); ok {
			return Int(diff), nil
		}
		return Number{}, overflow("-", lhs, rhs)
	}
	return Float(lhs.Float64() - rhs.Float64()), nil
}

func mul(lhs, rhs Number) (Number, error) {
	if lhs.IsInteger() && rhs.IsInteger() {
		if prod, ok := mulInt(lhs.i, rhs.i); ok {
			return Int(prod), nil
		}
		return Number{}, overflow("*", lhs, rhs)
	}
	return Float(lhs.Float64() * rhs.Float64()), nil
}

func div(lhs, rhs Number) (Number, error) {
	if rhs.isZero() {
		return Number{}, newZeroDivisionError("/", "float division by zero")
	}
	return normalize(lhs.Float64() / rhs.Float64()), nil
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(lhs, rhs Number) (Number, error) {
	if !lhs.IsInteger() || !rhs.IsInteger() {
		return Number{}, newTypeError("//", "// works only with integers")
	}
	if rhs.i == 0 {
		return Number{}, newZeroDivisionError("//", "integer division by zero")
	}
	if lhs.i == math.MinInt64 && rhs.i == -1 {
		return Number{}, overflow("//", lhs, rhs)
	}
	q := lhs.i / rhs.i
	if lhs.i%rhs.i != 0 && (lhs.i < 0) != (rhs.i < 0) {
		q--
	}
	return Int(q), nil
}

// mod returns a remainder with the sign of the divisor, matching floorDiv.
func mod(lhs, rhs Number) (Number, error) {
	if !lhs.IsInteger() || !rhs.IsInteger() {
		return Number{}, newTypeError("%", "% works only with integers")
	}
	if rhs.i == 0 {
		return Number{}, newZeroDivisionError("%", "integer modulo by zero")
	}
	r := lhs.i % rhs.i
	if r != 0 && (r < 0) != (rhs.i < 0) {
		r += rhs.i
	}
	return Int(r), nil
}

// pow returns the exponentiation operator. An exponent whose magnitude is
// not below maxPower yields +Inf whatever its sign.
func pow(maxPower float64) binaryFn {
	return func(base, exp Number) (Number, error) {
		if !(math.Abs(exp.Float64()) < maxPower) {
			return Float(math.Inf(1)), nil
		}
		if base.isZero() && exp.isNegative() {
			return Number{}, newZeroDivisionError("**", "zero cannot be raised to a negative power")
		}
		if base.IsInteger() && exp.IsInteger() && exp.i >= 0 {
			if p, ok := powInt(base.i, exp.i); ok {
				return Int(p), nil
			}
			return Number{}, overflow("**", base, exp)
		}
		return normalize(math.Pow(base.Float64(), exp.Float64())), nil
	}
}

func overflow(op string, lhs, rhs Number) error {
	expr := fmt.Sprintf("%v %v %s", lhs, rhs, op)
	return newOverflowError(expr, "integer overflow: "+expr)
}

func addInt(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

func subInt(a, b int64) (int64, bool) {
	d := a - b
	if (b > 0 && d > a) || (b < 0 && d < a) {
		return 0, false
	}
	return d, true
}

func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// powInt computes base**exp by squaring. exp must not be negative.
func powInt(base, exp int64) (int64, bool) {
	result := int64(1)
	var ok bool
	for exp > 0 {
		if exp&1 == 1 {
			if result, ok = mulInt(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, ok = mulInt(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}
