package todotests

import (
	"fmt"

	"github.com/todoitems/api-contract-tests/servicedef"

	"github.com/stretchr/testify/require"
)

// resetService deletes every item in the service. Failures to delete individual items are
// logged and otherwise ignored. A failure to list the items fails the test, unless the suite
// was configured with LenientCleanup.
func resetService(t *T) {
	resp, err := t.client.ListItems()
	if err == nil && !resp.IsSuccessful() {
		err = fmt.Errorf("unexpected response %s", resp)
	}
	if err == nil {
		var items []servicedef.TodoItem
		if items, err = resp.DecodeItems(); err == nil {
			deleteAll(t, items)
			return
		}
	}
	if t.env.config.LenientCleanup {
		t.Debug("Could not list items before test, continuing anyway: %s", err)
		return
	}
	require.FailNow(t, "could not reset the service before the test", "listing items failed: %s", err)
}

func deleteAll(t *T, items []servicedef.TodoItem) {
	if len(items) > 0 {
		t.Debug("Deleting %d existing item(s) before test", len(items))
	}
	for _, item := range items {
		resp, err := t.client.DeleteItem(item.ID)
		switch {
		case err != nil:
			t.Debug("Ignoring error from deleting item %d: %s", item.ID, err)
		case !resp.IsSuccessful():
			t.Debug("Ignoring %s from deleting item %d", resp, item.ID)
		}
	}
}
