package rpn

import "errors"

// Error is implemented by every error the calculator reports for malformed
// or ill-typed input. Kind names the category of the error.
type Error interface {
	error
	Kind() string
}

// SyntaxError is returned for a malformed token stream: unknown tokens,
// missing operands, misused parentheses, a line that does not reduce to one
// value, or an invalid literal after a sign marker.
type SyntaxError struct {
	Token   string
	message string
}

func newSyntaxError(token, message string) error {
	return &SyntaxError{token, message}
}

func (err *SyntaxError) Error() string {
	return err.message
}

func (err *SyntaxError) Kind() string {
	return "SyntaxError"
}

// ZeroDivisionError is returned when a division, floor division or modulo
// has a zero right operand.
type ZeroDivisionError struct {
	Op      string
	message string
}

func newZeroDivisionError(op, message string) error {
	return &ZeroDivisionError{op, message}
}

func (err *ZeroDivisionError) Error() string {
	return err.message
}

func (err *ZeroDivisionError) Kind() string {
	return "ZeroDivisionError"
}

// TypeError is returned when an integer-only operator gets a real operand.
type TypeError struct {
	Op      string
	message string
}

func newTypeError(op, message string) error {
	return &TypeError{op, message}
}

func (err *TypeError) Error() string {
	return err.message
}

func (err *TypeError) Kind() string {
	return "TypeError"
}

// OverflowError means a value could not be represented as an int64. It is
// not a calculator Error: it reports a limit of the machine, not a mistake
// in the input.
type OverflowError struct {
	Expr    string
	message string
}

func newOverflowError(expr, message string) error {
	return &OverflowError{expr, message}
}

func (err *OverflowError) Error() string {
	return err.message
}

// IsDomainError reports whether err, or an error it wraps, is a calculator
// Error.
func IsDomainError(err error) bool {
	var calcErr Error
	return errors.As(err, &calcErr)
}

// IsOverflow reports whether err, or an error it wraps, is an
// *OverflowError.
func IsOverflow(err error) bool {
	var overflowErr *OverflowError
	return errors.As(err, &overflowErr)
}
