package rpn

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Banner greets the user of an interactive session.
const Banner = "Welcome to RPN calculator! Enter RPN expressions, " +
	"tokens separated by spaces. " +
	"Parentheses allowed. " +
	"Unary +-($~) must be written with number without space."

// Calculator evaluates input lines one at a time and hands every outcome to
// its reporter.
type Calculator struct {
	evaluator *Evaluator
	output    io.Writer
	reporter  Reporter
	printer   TokenPrinter

	// Echo makes the calculator write the canonical tokens of a line before
	// its result.
	Echo bool
}

func NewCalculator(output io.Writer, reporter Reporter, opts ...Option) *Calculator {
	return &Calculator{
		evaluator: NewEvaluator(opts...),
		output:    output,
		reporter:  reporter,
	}
}

// EvalLine tokenizes and evaluates a single line.
func (c *Calculator) EvalLine(line string) (Number, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return Number{}, err
	}
	return c.evaluator.Evaluate(tokens)
}

// Interpret evaluates line and reports the outcome. Lines that are blank
// once trimmed are ignored and Interpret returns false for them.
func (c *Calculator) Interpret(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	tokens, err := Tokenize(line)
	if err != nil {
		c.reporter.Report(err)
		return true
	}
	if c.Echo {
		fmt.Fprintln(c.output, c.printer.Print(tokens))
	}
	result, err := c.evaluator.Evaluate(tokens)
	if err != nil {
		c.reporter.Report(err)
		return true
	}
	c.reporter.Result(result)
	return true
}

// Run interprets every line of r until EOF. Malformed lines are reported and
// skipped; only a read error is returned.
func (c *Calculator) Run(r io.Reader) error {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanLines)
	for s.Scan() {
		c.Interpret(s.Text())
	}
	return s.Err()
}
