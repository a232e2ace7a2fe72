package framework

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

const filteredOutReason = "excluded by filter parameters"

type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Skipped  []TestResult
}

type TestResult struct {
	TestID     TestID
	Errors     []error
	// Group is true if this is a group or the top-level action, which only has a result of
	// its own if it failed outside of any test.
	Group      bool
	Skipped    bool
	SkipReason string
	Duration   time.Duration
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

type TestID struct {
	Path []string
}

// Plus returns a new TestID for a subtest of this one.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// PrintResults writes a summary of the test run: the number of tests that passed, failed, and
// were skipped, followed by the errors for each failed test.
func PrintResults(out io.Writer, results Results) {
	passed := len(results.Tests) - len(results.Failures) - len(results.Skipped)
	if results.OK() {
		color.New(color.FgGreen).Fprintf(out, "All tests passed")
	} else {
		color.New(color.FgRed, color.Bold).Fprintf(out, "FAILED")
	}
	fmt.Fprintf(out, " (%d passed, %d failed, %d skipped)\n", passed, len(results.Failures), len(results.Skipped))

	if len(results.Failures) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Failed tests:")
	for _, f := range results.Failures {
		color.New(color.FgRed).Fprintf(out, "  %s", testLabel(f.TestID))
		fmt.Fprintf(out, " (%s)\n", f.Duration.Round(time.Millisecond))
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(out, "      %s\n", line)
			}
		}
	}
}

func testLabel(id TestID) string {
	if len(id.Path) == 0 {
		return "(top level)"
	}
	return id.String()
}
