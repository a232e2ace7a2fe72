package todotests

import (
	"fmt"
	"net/http"

	"github.com/todoitems/api-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoGetTests(t *T) {
	for _, expected := range []servicedef.TodoItem{
		{ID: 1, Name: "learning english", IsComplete: true},
		{ID: 2, Name: "AI website creation", IsComplete: true},
	} {
		expected := expected

		t.Run(fmt.Sprintf("list all contains item %d", expected.ID), func(t *T) {
			for _, item := range servicedef.CompleteTestData {
				resp := t.CreateItem(servicedef.ItemParamsFrom(item))
				t.RequireSuccess(resp)
			}

			resp := t.ListItems()
			t.RequireSuccess(resp)
			t.RequireStatus(resp, http.StatusOK)
			items := t.RequireItemsBody(resp)
			assert.GreaterOrEqual(t, len(items), len(servicedef.CompleteTestData))

			actual, found := findItem(items, expected.ID)
			require.True(t, found, "item %d was not in the list", expected.ID)
			AssertItemEquals(t, expected, actual)
		})

		t.Run(fmt.Sprintf("get item %d by id", expected.ID), func(t *T) {
			t.EnsureItem(expected)

			resp := t.GetItem(expected.ID)
			t.RequireSuccess(resp)
			t.RequireStatus(resp, http.StatusOK)
			AssertItemEquals(t, expected, t.RequireItemBody(resp))
		})
	}

	t.Run("get non-existent item 999", func(t *T) {
		resp := t.GetItem(999)
		assert.False(t, resp.IsSuccessful())
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("get non-existent item 999 returns problem details", func(t *T) {
		t.RequireNotFoundProblem(t.GetItem(999))
	})

	t.Run("get all when empty", func(t *T) {
		resp := t.ListItems()
		t.RequireSuccess(resp)
		t.RequireStatus(resp, http.StatusOK)
		assert.Len(t, t.RequireItemsBody(resp), 0)
	})
}
