package rpn

import (
	"errors"
	"unicode"
)

// Scanner splits an input line into tokens and resolves sign markers
type Scanner struct {
	start   int
	current int
	source  []rune
	tokens  []*Token
	scanned bool
}

// NewScanner creates a new scanner over a single input line
func NewScanner(source string) *Scanner {
	scanner := new(Scanner)
	scanner.start = 0
	scanner.current = 0
	scanner.source = []rune(source)
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// Tokenize scans line and returns its tokens in input order.
func Tokenize(line string) ([]*Token, error) {
	return NewScanner(line).Scan()
}

// Scan reads the whole line and returns the tokens found. It does not check
// that the tokens form a valid expression; it fails only when a fragment
// with a sign marker is not followed by a number.
func (scanner *Scanner) Scan() ([]*Token, error) {
	if scanner.scanned {
		return scanner.tokens, nil
	}

	for scanner.hasNext() {
		if unicode.IsSpace(scanner.peek()) {
			scanner.advance()
			continue
		}
		scanner.start = scanner.current
		for scanner.hasNext() && !unicode.IsSpace(scanner.peek()) {
			scanner.advance()
		}
		if err := scanner.scanFragment(); err != nil {
			return nil, err
		}
	}
	scanner.scanned = true
	return scanner.tokens, nil
}

func (scanner *Scanner) scanFragment() error {
	fragment := scanner.source[scanner.start:scanner.current]
	switch fragment[0] {
	case negateMarker:
		// every marker in the run flips the sign
		markers := 0
		for markers < len(fragment) && fragment[markers] == negateMarker {
			markers++
		}
		n, err := scanner.signedNumber(fragment[markers:])
		if err != nil {
			return err
		}
		if markers%2 == 1 {
			if n, err = n.neg(); err != nil {
				return err
			}
		}
		scanner.addNumber(n)
	case positiveMarker:
		n, err := scanner.signedNumber(fragment[1:])
		if err != nil {
			return err
		}
		scanner.addNumber(n)
	default:
		scanner.addToken()
	}
	return nil
}

// signedNumber strictly parses the part of the current fragment that follows
// its sign markers. Errors name the whole fragment.
func (scanner *Scanner) signedNumber(rest []rune) (Number, error) {
	n, err := ToNumber(string(rest))
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		lexeme := scanner.lexeme()
		return Number{}, newSyntaxError(lexeme, "invalid number: "+lexeme)
	}
	return n, err
}

// addToken appends the lexeme from `start` to `current` unchanged
func (scanner *Scanner) addToken() {
	tok := NewToken(scanner.lexeme(), scanner.start+1)
	scanner.tokens = append(scanner.tokens, tok)
}

// addNumber appends a sign-resolved number in place of the current fragment
func (scanner *Scanner) addNumber(n Number) {
	tok := newNumberToken(n, scanner.start+1)
	scanner.tokens = append(scanner.tokens, tok)
}

func (scanner *Scanner) lexeme() string {
	return string(scanner.source[scanner.start:scanner.current])
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}
