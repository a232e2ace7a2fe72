package todotests

import (
	"fmt"
	"net/http"

	"github.com/todoitems/api-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
)

func DoDeleteTests(t *T) {
	existing := servicedef.TodoItem{ID: 1, Name: "Test Item 1", IsComplete: false}

	t.Run(fmt.Sprintf("delete item %d", existing.ID), func(t *T) {
		t.EnsureItem(existing)

		resp := t.DeleteItem(existing.ID)
		assert.True(t, resp.IsSuccessful(), "expected a successful response but got %s", resp)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run(fmt.Sprintf("deleted item %d is gone", existing.ID), func(t *T) {
		t.EnsureItem(existing)

		resp := t.DeleteItem(existing.ID)
		t.RequireStatus(resp, http.StatusNoContent)

		resp = t.GetItem(existing.ID)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "item should not exist after being deleted")
	})

	t.Run("delete non-existent item 999", func(t *T) {
		resp := t.DeleteItem(999)
		assert.False(t, resp.IsSuccessful())
		t.RequireNotFoundProblem(resp)
	})
}
