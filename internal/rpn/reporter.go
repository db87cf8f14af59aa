package rpn

import (
	"errors"
	"fmt"
	"io"
)

// Reporter defines the interface for structure that can display results and
// errors to the user. Evaluation code never prints; it hands what it got to
// a reporter.
type Reporter interface {
	Result(n Number)
	Report(err error)
	Reset()
	HadError() bool
	HadOverflow() bool
}

// SimpleReporter writes one line per result or error to inner writer
type SimpleReporter struct {
	writer      io.Writer
	hadErr      bool
	hadOverflow bool
}

func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer, false, false}
}

func (reporter *SimpleReporter) Result(n Number) {
	fmt.Fprintln(reporter.writer, n)
}

// Report writes err. Overflows are shown as "inf", calculator errors are
// prefixed with their kind.
func (reporter *SimpleReporter) Report(err error) {
	if err == nil {
		return
	}
	var calcErr Error
	switch {
	case IsOverflow(err):
		reporter.hadOverflow = true
		fmt.Fprintln(reporter.writer, "inf")
	case errors.As(err, &calcErr):
		reporter.hadErr = true
		fmt.Fprintf(reporter.writer, "%s: %v\n", calcErr.Kind(), err)
	default:
		reporter.hadErr = true
		fmt.Fprintf(reporter.writer, "error: %v\n", err)
	}
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadOverflow = false
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadOverflow() bool {
	return reporter.hadOverflow
}
