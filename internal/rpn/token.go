package rpn

import "fmt"

// Token is one whitespace-delimited unit of an input line. Lexeme holds the
// canonical text: fragments written with a sign marker are replaced by the
// decimal form of their signed value, so "~3" becomes "-3".
type Token struct {
	Lexeme string
	// Col is the 1-based column of the first rune of the fragment.
	Col int

	// num carries the value of a sign-resolved fragment so the evaluator
	// does not have to parse Lexeme back.
	num      Number
	resolved bool
}

// NewToken creates a token that the evaluator will interpret from its
// lexeme.
func NewToken(lexeme string, col int) *Token {
	return &Token{Lexeme: lexeme, Col: col}
}

func newNumberToken(n Number, col int) *Token {
	return &Token{Lexeme: n.String(), Col: col, num: n, resolved: true}
}

// Number returns the value of a sign-resolved token.
func (t *Token) Number() (Number, bool) {
	return t.num, t.resolved
}

func (t *Token) String() string {
	return fmt.Sprintf("%s@%d", t.Lexeme, t.Col)
}

const (
	openParen  = "("
	closeParen = ")"
)

const (
	negateMarker   = '~'
	positiveMarker = '$'
)
