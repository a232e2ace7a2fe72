package todotests

import (
	"fmt"
	"net/http"

	"github.com/todoitems/api-contract-tests/client"
	"github.com/todoitems/api-contract-tests/framework"
	"github.com/todoitems/api-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// OptionValidation enables the scenarios that check how the service rejects invalid items.
// The service's validation rules are not settled, so these do not run by default.
const OptionValidation = "validation"

// AllOptions lists every optional scenario group.
var AllOptions = []string{
	OptionValidation,
}

// SuiteConfig contains settings that affect how the scenarios run.
type SuiteConfig struct {
	// Options is the set of optional scenario groups that are enabled.
	Options framework.OptionList

	// LenientCleanup makes the fixture continue with the scenario if it cannot list the
	// existing items, instead of failing the scenario.
	LenientCleanup bool
}

type environment struct {
	client *client.TodoItemsClient
	config SuiteConfig
}

// T represents a test or group of tests in the TodoItems suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner. To make test assertions, use the assert and require packages,
// passing the *T as if it were a *testing.T.
//
// Every test created with Run starts by deleting all items in the service, so a test always
// begins with an empty collection. Requests made through T's methods are written to the test's
// debug log.
type T struct {
	context *framework.Context
	env     *environment
	client  *client.TodoItemsClient
}

func newTestScope(context *framework.Context, env *environment) *T {
	return &T{
		context: context,
		env:     env,
		client:  env.client.WithLogger(context.DebugLogger()),
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Group runs a set of related tests under a common name, without resetting the service.
func (t *T) Group(name string, action func(*T)) {
	t.context.Group(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// Run runs a test. The service is reset to an empty collection before the action is called.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		t1 := newTestScope(c, t.env)
		resetService(t1)
		action(t1)
	})
}

// RunOptional is the same as Run, except that the test is skipped without touching the
// service if the specified option was not enabled.
func (t *T) RunOptional(option, name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		if !t.env.config.Options.Has(option) {
			c.SkipWithReason(fmt.Sprintf("optional test group %q was not enabled", option))
		}
		t1 := newTestScope(c, t.env)
		resetService(t1)
		action(t1)
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// ListItems gets the whole collection. The test fails and exits if the request could not be
// made at all; the status is not checked.
func (t *T) ListItems() client.Response {
	resp, err := t.client.ListItems()
	require.NoError(t, err)
	return resp
}

// GetItem gets a single item. The status is not checked.
func (t *T) GetItem(id int) client.Response {
	resp, err := t.client.GetItem(id)
	require.NoError(t, err)
	return resp
}

// CreateItem posts a new item. The status is not checked.
func (t *T) CreateItem(body interface{}) client.Response {
	resp, err := t.client.CreateItem(body)
	require.NoError(t, err)
	return resp
}

// UpdateItem puts new values for an item. The status is not checked.
func (t *T) UpdateItem(id int, body interface{}) client.Response {
	resp, err := t.client.UpdateItem(id, body)
	require.NoError(t, err)
	return resp
}

// DeleteItem deletes an item. The status is not checked.
func (t *T) DeleteItem(id int) client.Response {
	resp, err := t.client.DeleteItem(id)
	require.NoError(t, err)
	return resp
}

// RequireStatus fails the test and exits if the response did not have the expected status.
func (t *T) RequireStatus(resp client.Response, status int) {
	require.Equal(t, status, resp.StatusCode, "unexpected status; full response was %s", resp)
}

// RequireSuccess fails the test and exits if the status was not a 2xx status.
func (t *T) RequireSuccess(resp client.Response) {
	require.True(t, resp.IsSuccessful(), "expected a successful response but got %s", resp)
}

// RequireItemBody decodes the response body as a single item. The test fails and exits if the
// body is empty or is not a valid item.
func (t *T) RequireItemBody(resp client.Response) servicedef.TodoItem {
	require.NotEmpty(t, resp.Body, "response body should not be empty")
	item, err := resp.DecodeItem()
	require.NoError(t, err)
	return item
}

// RequireItemsBody decodes the response body as a list of items. The test fails and exits if
// the body is empty or is not a JSON array of items.
func (t *T) RequireItemsBody(resp client.Response) []servicedef.TodoItem {
	require.NotEmpty(t, resp.Body, "response body should not be empty")
	items, err := resp.DecodeItems()
	require.NoError(t, err)
	return items
}

// RequireErrorBody decodes the response body as a problem-details error.
func (t *T) RequireErrorBody(resp client.Response) servicedef.ErrorResponse {
	require.NotEmpty(t, resp.Body, "error response body should not be empty")
	e, err := resp.DecodeError()
	require.NoError(t, err)
	return e
}

// RequireNotFoundProblem verifies that the response is a 404 with the standard problem-details
// body for a missing resource.
func (t *T) RequireNotFoundProblem(resp client.Response) {
	t.RequireStatus(resp, http.StatusNotFound)
	e := t.RequireErrorBody(resp)
	assert.Equal(t, http.StatusNotFound, e.Status, "incorrect status in error body %s", e)
	assert.Equal(t, servicedef.NotFoundTitle, e.Title, "incorrect title in error body %s", e)
	assert.Equal(t, servicedef.NotFoundType, e.Type, "incorrect type in error body %s", e)
}

// SeedItem creates an item with an explicit ID, failing the test and exiting if the service
// does not respond with 201.
func (t *T) SeedItem(item servicedef.TodoItem) {
	t.Debug("Seeding item %d", item.ID)
	resp := t.CreateItem(servicedef.ItemParamsFrom(item))
	t.RequireStatus(resp, http.StatusCreated)
}

// EnsureItem makes sure that an item with the item's ID exists, creating it from the given
// values if a GET for that ID returns 404. An existing item is left as it is.
func (t *T) EnsureItem(item servicedef.TodoItem) {
	resp := t.GetItem(item.ID)
	if resp.StatusCode == http.StatusNotFound {
		t.SeedItem(item)
	}
}

// AssertItemEquals checks that every field of an item has the expected value.
func AssertItemEquals(t *T, expected, actual servicedef.TodoItem) {
	assert.Equal(t, expected.ID, actual.ID, "incorrect id")
	assert.Equal(t, expected.Name, actual.Name, "incorrect name for item %d", expected.ID)
	assert.Equal(t, expected.IsComplete, actual.IsComplete, "incorrect isComplete for item %d", expected.ID)
}

func findItem(items []servicedef.TodoItem, id int) (servicedef.TodoItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return servicedef.TodoItem{}, false
}

func maxItemID(items []servicedef.TodoItem) int {
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max
}
