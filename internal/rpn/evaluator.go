package rpn

import "errors"

// Evaluator reduces a token sequence to a single number. It keeps no state
// between calls and can be shared by several goroutines.
type Evaluator struct {
	maxPower  float64
	operators map[string]binaryFn
}

func NewEvaluator(opts ...Option) *Evaluator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Evaluator{cfg.maxPower, operatorTable(cfg.maxPower)}
}

var defaultEvaluator = NewEvaluator()

// Evaluate runs tokens through an evaluator with the default configuration.
func Evaluate(tokens []*Token) (Number, error) {
	return defaultEvaluator.Evaluate(tokens)
}

// MaxPower returns the exponent magnitude threshold of **.
func (ev *Evaluator) MaxPower() float64 {
	return ev.maxPower
}

// Evaluate consumes tokens in order and returns the value left in the
// outermost scope. The first malformed token aborts the evaluation.
func (ev *Evaluator) Evaluate(tokens []*Token) (Number, error) {
	stack := newScopes()
	for _, tok := range tokens {
		if err := ev.step(stack, tok); err != nil {
			return Number{}, err
		}
	}
	return stack.result()
}

func (ev *Evaluator) step(stack *scopes, tok *Token) error {
	switch tok.Lexeme {
	case openParen:
		stack.open()
		return nil
	case closeParen:
		return stack.close()
	}

	if n, ok := tok.Number(); ok {
		stack.push(n)
		return nil
	}
	n, err := parseNumber(tok.Lexeme)
	if err == nil {
		stack.push(n)
		return nil
	}
	if !errors.Is(err, errNotNumber) {
		return err
	}

	op, ok := ev.operators[tok.Lexeme]
	if !ok {
		return newSyntaxError(tok.Lexeme, "unknown token: "+tok.Lexeme)
	}
	if len(stack.top()) < 2 {
		return newSyntaxError(tok.Lexeme, "not enough operands for "+tok.Lexeme)
	}
	rhs := stack.pop()
	lhs := stack.pop()
	result, err := op(lhs, rhs)
	if err != nil {
		return err
	}
	stack.push(result)
	return nil
}
