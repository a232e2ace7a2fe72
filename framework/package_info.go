// Package framework contains the low-level implementation of test harness infrastructure
// that is not specific to the TodoItems domain.
//
// The general model is:
//
// 1. The test harness runs as an ordinary program rather than under "go test", because the
// thing being tested is a separate service that the harness talks to over HTTP.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. Assertions from testify's assert and require packages work with it.
//
// 3. Every test has its own debug log. The output is kept in memory and handed to the
// TestLogger when the test finishes, so that it can be shown only for failed tests.
//
// The domain-specific code that knows what is being tested is responsible for making the
// requests to the service and for providing a domain-specific test API on top of the context.
package framework
