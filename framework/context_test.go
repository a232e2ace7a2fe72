package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	kind string
	id   string
	info string
}

type recordingTestLogger struct {
	events []recordedEvent
}

func (r *recordingTestLogger) TestStarted(id TestID) {
	r.events = append(r.events, recordedEvent{"started", id.String(), ""})
}

func (r *recordingTestLogger) TestError(id TestID, err error) {
	r.events = append(r.events, recordedEvent{"error", id.String(), err.Error()})
}

func (r *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	info := "passed"
	if failed {
		info = "failed"
	}
	r.events = append(r.events, recordedEvent{"finished", id.String(), info})
}

func (r *recordingTestLogger) TestSkipped(id TestID, reason string) {
	r.events = append(r.events, recordedEvent{"skipped", id.String(), reason})
}

func TestPassingTest(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {
			assert.True(c, true)
		})
	})
	assert.True(t, results.OK())
	require.Len(t, results.Tests, 1)
	assert.Equal(t, "a", results.Tests[0].TestID.String())
	assert.Equal(t, []recordedEvent{
		{"started", "a", ""},
		{"finished", "a", "passed"},
	}, logger.events)
}

func TestAssertFailureContinuesTest(t *testing.T) {
	reachedEnd := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			assert.Equal(c, 1, 2)
			reachedEnd = true
		})
	})
	assert.True(t, reachedEnd)
	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Len(t, results.Failures[0].Errors, 1)
}

func TestRequireFailureStopsTestButNotSiblings(t *testing.T) {
	reachedEnd, ranSibling := false, false
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			require.Equal(c, 1, 2)
			reachedEnd = true
		})
		c.Run("b", func(c *Context) {
			ranSibling = true
		})
	})
	assert.False(t, reachedEnd)
	assert.True(t, ranSibling)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "a", results.Failures[0].TestID.String())
	assert.Len(t, results.Tests, 2)
}

func TestUnexpectedPanicIsRecordedAsFailure(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			panic(errors.New("sorry"))
		})
	})
	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test: sorry")
}

func TestFailNowWithoutMessage(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.FailNow()
		})
	})
	require.Len(t, results.Failures, 1)
	assert.EqualError(t, results.Failures[0].Errors[0], "test failed with no failure message")
}

func TestSkipWithReason(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.SkipWithReason("not today")
			assert.Fail(c, "should not get here")
		})
	})
	assert.True(t, results.OK())
	require.Len(t, results.Skipped, 1)
	assert.Equal(t, "not today", results.Skipped[0].SkipReason)
	assert.Equal(t, recordedEvent{"skipped", "a", "not today"}, logger.events[len(logger.events)-1])
}

func TestFilterSkipsTest(t *testing.T) {
	ran := false
	filter := func(id TestID) bool { return id.String() != "g/a" }
	logger := &recordingTestLogger{}
	results := Run(filter, logger, func(c *Context) {
		c.Group("g", func(c *Context) {
			c.Run("a", func(c *Context) { ran = true })
		})
	})
	assert.False(t, ran)
	require.Len(t, results.Skipped, 1)
	assert.Equal(t, []recordedEvent{{"skipped", "g/a", filteredOutReason}}, logger.events)
}

func TestGroupIsNotFilteredOrReported(t *testing.T) {
	var ids []string
	filter := func(id TestID) bool { return id.String() == "g/b" }
	results := Run(filter, nil, func(c *Context) {
		c.Group("g", func(c *Context) {
			c.Run("a", func(c *Context) { ids = append(ids, c.ID().String()) })
			c.Run("b", func(c *Context) { ids = append(ids, c.ID().String()) })
		})
	})
	assert.Equal(t, []string{"g/b"}, ids)
	assert.Len(t, results.Tests, 2)
}

func TestFailureInGroupIsRecorded(t *testing.T) {
	ranSibling := false
	results := Run(nil, nil, func(c *Context) {
		c.Group("g", func(c *Context) {
			require.Fail(c, "setup failed")
		})
		c.Group("h", func(c *Context) {
			c.Run("a", func(c *Context) { ranSibling = true })
		})
	})
	assert.True(t, ranSibling)
	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "g", results.Failures[0].TestID.String())
	assert.True(t, results.Failures[0].Group)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "setup failed")
}

func TestPanicInGroupIsRecorded(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Group("g", func(c *Context) {
			var m map[string]int
			m["x"] = 1
		})
	})
	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test")
}

func TestFailureInTopLevelActionIsRecorded(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Errorf("could not start")
	})
	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Len(t, results.Failures[0].TestID.Path, 0)
	assert.EqualError(t, results.Failures[0].Errors[0], "could not start")
}

func TestFailureOfTestInGroupIsRecordedOnlyOnce(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Group("g", func(c *Context) {
			c.Run("a", func(c *Context) { require.Fail(c, "oops") })
		})
	})
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "g/a", results.Failures[0].TestID.String())
	assert.False(t, results.Failures[0].Group)
	assert.Len(t, results.Tests, 1)
}

func TestDebugOutputIsPassedToLogger(t *testing.T) {
	var output CapturedOutput
	logger := &capturingOutputLogger{output: &output}
	Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Debug("hello %s", "world")
		})
	})
	require.Len(t, output, 1)
	assert.Equal(t, "hello world", output[0].Message)
}

type capturingOutputLogger struct {
	nullTestLogger
	output *CapturedOutput
}

func (l *capturingOutputLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	*l.output = debugOutput
}

func TestSubtestIDsDoNotShareStorage(t *testing.T) {
	var ids []TestID
	Run(nil, nil, func(c *Context) {
		c.Group("g", func(c *Context) {
			c.Run("a", func(c *Context) { ids = append(ids, c.ID()) })
			c.Run("b", func(c *Context) { ids = append(ids, c.ID()) })
		})
	})
	require.Len(t, ids, 2)
	assert.Equal(t, "g/a", ids[0].String())
	assert.Equal(t, "g/b", ids[1].String())
}
