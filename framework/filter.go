package framework

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

func (r RegexFilters) AsFilter(id TestID) bool {
	name := id.String()
	return (!r.MustMatch.IsDefined() || r.MustMatch.AnyMatch(name)) &&
		!r.MustNotMatch.AnyMatch(name)
}

type RegexList struct {
	patterns []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser
func (r *RegexList) Set(value string) error {
	rx, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	r.patterns = append(r.patterns, rx)
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// RerunPattern returns a regex for the -run parameter that selects the failed tests again. A
// group that failed on its own selects every test in it. The second return value is false if
// the top-level action failed, in which case everything has to run again.
func (r Results) RerunPattern() (string, bool) {
	alternatives := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		if len(f.TestID.Path) == 0 {
			return "", false
		}
		a := regexp.QuoteMeta(f.TestID.String())
		if f.Group {
			a += "(/.*)?"
		}
		alternatives = append(alternatives, a)
	}
	return "^(" + strings.Join(alternatives, "|") + ")$", true
}

// OptionList is a set of names given with a repeatable command-line flag.
type OptionList struct {
	names map[string]bool
}

func NewOptionList(names ...string) OptionList {
	var o OptionList
	for _, n := range names {
		_ = o.Set(n)
	}
	return o
}

func (o OptionList) String() string {
	return strings.Join(o.Names(), ",")
}

// Set is called by the command line parser. A comma-separated value adds several names.
func (o *OptionList) Set(value string) error {
	if o.names == nil {
		o.names = make(map[string]bool)
	}
	for _, n := range strings.Split(value, ",") {
		if n = strings.TrimSpace(n); n != "" {
			o.names[n] = true
		}
	}
	return nil
}

func (o OptionList) Has(name string) bool {
	return o.names[name]
}

func (o OptionList) Names() []string {
	ret := make([]string, 0, len(o.names))
	for n := range o.names {
		ret = append(ret, n)
	}
	sort.Strings(ret)
	return ret
}

func PrintFilterDescription(out io.Writer, filters RegexFilters, enabled OptionList, allOptions []string) {
	if filters.MustMatch.IsDefined() || filters.MustNotMatch.IsDefined() {
		fmt.Fprintln(out, "Some tests will be skipped based on the filter criteria for this test run:")
		if filters.MustMatch.IsDefined() {
			fmt.Fprintf(out, "  skip any not matching %s\n", filters.MustMatch)
		}
		if filters.MustNotMatch.IsDefined() {
			fmt.Fprintf(out, "  skip any matching %s\n", filters.MustNotMatch)
		}
		fmt.Fprintln(out)
	}

	var disabled []string
	for _, name := range allOptions {
		if !enabled.Has(name) {
			disabled = append(disabled, name)
		}
	}
	if len(disabled) > 0 {
		fmt.Fprintln(out, "Some tests will be skipped because these optional test groups were not enabled:")
		fmt.Fprintf(out, "  %s\n", strings.Join(disabled, ", "))
		fmt.Fprintln(out)
	}
}
