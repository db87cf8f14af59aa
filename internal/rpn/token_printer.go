package rpn

import "strings"

// TokenPrinter renders tokens back into a line of canonical text.
type TokenPrinter struct{}

func (printer *TokenPrinter) Print(tokens []*Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Lexeme)
	}
	return b.String()
}
