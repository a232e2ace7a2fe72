package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/todoitems/api-contract-tests/client"
	"github.com/todoitems/api-contract-tests/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseParams(t *testing.T, args ...string) (commandParams, error) {
	var p commandParams
	var errOut bytes.Buffer
	err := p.parse(append([]string{"contract-tests"}, args...), &errOut)
	return p, err
}

func writeConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParamsDefaults(t *testing.T) {
	p, err := parseParams(t)
	require.NoError(t, err)

	assert.Equal(t, client.DefaultBaseURL, p.serviceURL)
	assert.Equal(t, client.DefaultRequestTimeout, p.requestTimeout)
	assert.Equal(t, defaultWaitTimeout, p.waitTimeout)
	assert.False(t, p.lenientCleanup)
	assert.False(t, p.filters.MustMatch.IsDefined())
	assert.Len(t, p.options.Names(), 0)
}

func TestParamsFromCommandLine(t *testing.T) {
	p, err := parseParams(t,
		"-url", "http://localhost:8000/",
		"-run", "GET",
		"-skip", "999",
		"-enable", "validation",
		"-timeout", "3s",
		"-lenient-cleanup",
		"-debug",
	)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", p.serviceURL)
	assert.True(t, p.filters.MustMatch.AnyMatch("GET/get item 1 by id"))
	assert.True(t, p.filters.MustNotMatch.AnyMatch("DELETE/delete non-existent item 999"))
	assert.True(t, p.options.Has("validation"))
	assert.Equal(t, 3*time.Second, p.requestTimeout)
	assert.True(t, p.lenientCleanup)
	assert.True(t, p.debug)
	assert.False(t, p.debugAll)
}

func TestParamsRejectsInvalidRegex(t *testing.T) {
	_, err := parseParams(t, "-run", "(")
	assert.Error(t, err)
}

func TestParamsRejectsExtraArguments(t *testing.T) {
	_, err := parseParams(t, "GET")
	assert.Error(t, err)
}

func TestParamsFromConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
url: http://todo.example:9000
run: ["POST"]
enable: [validation]
timeout: 2s
wait: 30s
lenientCleanup: true
debugAll: true
`)
	p, err := parseParams(t, "-config", path)
	require.NoError(t, err)

	assert.Equal(t, "http://todo.example:9000", p.serviceURL)
	assert.True(t, p.filters.MustMatch.AnyMatch("POST/create item 4"))
	assert.False(t, p.filters.MustMatch.AnyMatch("GET/get all when empty"))
	assert.True(t, p.options.Has("validation"))
	assert.Equal(t, 2*time.Second, p.requestTimeout)
	assert.Equal(t, 30*time.Second, p.waitTimeout)
	assert.True(t, p.lenientCleanup)
	assert.True(t, p.debugAll)
}

func TestCommandLineOverridesConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
url: http://todo.example:9000
run: ["POST"]
timeout: 2s
`)
	p, err := parseParams(t, "-config", path, "-url", "http://other:1234", "-run", "PUT")
	require.NoError(t, err)

	assert.Equal(t, "http://other:1234", p.serviceURL)
	assert.True(t, p.filters.MustMatch.AnyMatch("PUT/update item 2"))
	assert.False(t, p.filters.MustMatch.AnyMatch("POST/create item 4"))
	assert.Equal(t, 2*time.Second, p.requestTimeout)
}

func TestParamsRejectsMissingOrMalformedConfigFile(t *testing.T) {
	_, err := parseParams(t, "-config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	path := writeConfigFile(t, "timeout: [not a duration\n")
	_, err = parseParams(t, "-config", path)
	assert.Error(t, err)
}

func TestRerunCommand(t *testing.T) {
	p, err := parseParams(t, "-url", "http://localhost:5089", "-enable", "validation", "-lenient-cleanup")
	require.NoError(t, err)

	results := framework.Results{Failures: []framework.TestResult{
		{TestID: framework.TestID{Path: []string{"GET", "get item 1 by id"}}},
		{TestID: framework.TestID{Path: []string{"DELETE", "delete non-existent item 999"}}},
	}}
	cmd := p.rerunCommand("./contract-tests", results)

	assert.Equal(t,
		`./contract-tests -url http://localhost:5089 -enable validation -lenient-cleanup `+
			`-run '^(GET/get item 1 by id|DELETE/delete non-existent item 999)$'`,
		cmd)
}

func TestRerunCommandIncludesNonDefaultTimeout(t *testing.T) {
	p, err := parseParams(t, "-timeout", "500ms")
	require.NoError(t, err)

	results := framework.Results{Failures: []framework.TestResult{
		{TestID: framework.TestID{Path: []string{"GET", "get all when empty"}}},
	}}
	cmd := p.rerunCommand("tests", results)
	assert.Contains(t, cmd, "-timeout 500ms")
}

func TestRerunCommandAfterTopLevelFailureRunsEverything(t *testing.T) {
	p, err := parseParams(t)
	require.NoError(t, err)

	results := framework.Results{Failures: []framework.TestResult{
		{TestID: framework.TestID{Path: []string{"GET", "get all when empty"}}},
		{Group: true},
	}}
	cmd := p.rerunCommand("tests", results)
	assert.Equal(t, "tests -url "+client.DefaultBaseURL, cmd)
}
