package rpn

type mockReporter struct {
	results     []Number
	errors      []error
	hadErr      bool
	hadOverflow bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]Number, 0), make([]error, 0), false, false}
}

func (reporter *mockReporter) Result(n Number) {
	reporter.results = append(reporter.results, n)
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	if _, isOverflow := err.(*OverflowError); isOverflow {
		reporter.hadOverflow = true
	} else {
		reporter.hadErr = true
	}
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
	reporter.hadOverflow = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *mockReporter) HadOverflow() bool {
	return reporter.hadOverflow
}

func lexemes(tokens []*Token) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Lexeme)
	}
	return out
}

func evalString(line string, opts ...Option) (Number, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return Number{}, err
	}
	return NewEvaluator(opts...).Evaluate(tokens)
}
