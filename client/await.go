package client

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/todoitems/api-contract-tests/servicedef"
)

const awaitPollInterval = time.Millisecond * 100

// AwaitService polls the collection resource of the service until it responds, so that a test
// run started at the same time as the service does not fail just because the service was still
// starting. It returns an error if the service responds with anything other than 200, or if
// it has not responded by the deadline.
func AwaitService(baseURL string, timeout time.Duration, output io.Writer) error {
	url := baseURL + servicedef.TodoItemsPath
	fmt.Fprintf(output, "Connecting to service at %s", baseURL)

	httpClient := &http.Client{Timeout: awaitPollInterval * 10}
	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := httpClient.Get(url)
		if err == nil {
			fmt.Fprintln(output)
			_ = resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("service returned status code %d for %s", resp.StatusCode, url)
			}
			fmt.Fprintln(output, "Service is responding")
			return nil
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(awaitPollInterval)
	}
}
