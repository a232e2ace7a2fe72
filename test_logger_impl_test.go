package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/todoitems/api-contract-tests/framework"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestConsoleTestLogger(t *testing.T) {
	color.NoColor = true
	id := framework.TestID{Path: []string{"GET", "get item 1 by id"}}
	debugOutput := framework.CapturedOutput{
		{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), Message: ">> GET /api/TodoItems/1"},
	}

	t.Run("failure with debug output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &ConsoleTestLogger{Out: &buf, DebugOutputOnFailure: true}
		logger.TestStarted(id)
		logger.TestError(id, errors.New("first\nsecond"))
		logger.TestFinished(id, true, debugOutput)

		assert.Equal(t,
			"[GET/get item 1 by id]\n"+
				"  first\n"+
				"  second\n"+
				"  FAILED: GET/get item 1 by id\n"+
				"    DEBUG [2024-01-02 03:04:05.000] >> GET /api/TodoItems/1\n",
			buf.String())
	})

	t.Run("success hides debug output by default", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &ConsoleTestLogger{Out: &buf, DebugOutputOnFailure: true}
		logger.TestFinished(id, false, debugOutput)
		assert.Equal(t, "", buf.String())
	})

	t.Run("skipped", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &ConsoleTestLogger{Out: &buf}
		logger.TestSkipped(id, "optional test group \"validation\" was not enabled")
		assert.Equal(t, "  SKIPPED: GET/get item 1 by id (optional test group \"validation\" was not enabled)\n", buf.String())
	})
}
