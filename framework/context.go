package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the framework's equivalent of *testing.T. It satisfies require.TestingT, so the
// assert and require packages can be used with it directly.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Run runs a top-level action. Tests are defined by calling Run or Group on the Context that
// the action receives.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action, false)
	return env.results
}

func (c *Context) run(action func(*Context), record bool) {
	startTime := time.Now()
	defer func() {
		if r := recover(); r != nil && !c.skipped {
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		c.recordResult(record, startTime)
	}()

	action(c)
}

// recordResult adds the outcome of a test to the results. A group or the top-level action is
// only recorded if it failed with errors of its own, since failures of its subtests are already
// recorded.
func (c *Context) recordResult(record bool, startTime time.Time) {
	if !record && len(c.errors) == 0 {
		return
	}
	result := TestResult{
		TestID:     c.id,
		Errors:     c.errors,
		Group:      !record,
		Skipped:    c.skipped,
		SkipReason: c.skipReason,
		Duration:   time.Since(startTime),
	}
	c.env.results.Tests = append(c.env.results.Tests, result)
	switch {
	case c.skipped:
		c.env.results.Skipped = append(c.env.results.Skipped, result)
	case c.failed:
		c.env.results.Failures = append(c.env.results.Failures, result)
	}
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a test. The test is subject to the filter, and is reported to the TestLogger and
// included in the Results.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Plus(name)

	if c.env.filter != nil && !c.env.filter(id) {
		result := TestResult{TestID: id, Skipped: true, SkipReason: filteredOutReason}
		c.env.results.Tests = append(c.env.results.Tests, result)
		c.env.results.Skipped = append(c.env.results.Skipped, result)
		c.env.testLogger.TestSkipped(id, filteredOutReason)
		return
	}

	c.env.testLogger.TestStarted(id)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action, true)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
	if c1.failed {
		c.failed = true
	}
}

// Group runs a set of related tests under a common name. A group is not itself a test: it is
// not subject to the filter and does not produce a result of its own.
func (c *Context) Group(name string, action func(*Context)) {
	c1 := &Context{
		id:  c.id.Plus(name),
		env: c.env,
	}
	c1.run(action, false)
	if c1.failed {
		c.failed = true
	}
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
