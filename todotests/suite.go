package todotests

import (
	"github.com/todoitems/api-contract-tests/client"
	"github.com/todoitems/api-contract-tests/framework"
)

// RunTestSuite runs every scenario, one at a time, against the service that serviceClient
// points to.
func RunTestSuite(
	serviceClient *client.TodoItemsClient,
	config SuiteConfig,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	env := &environment{
		client: serviceClient,
		config: config,
	}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, env)

		t.Group("GET", DoGetTests)
		t.Group("POST", DoPostTests)
		t.Group("PUT", DoPutTests)
		t.Group("DELETE", DoDeleteTests)
	})
}
