package todotests

import (
	"fmt"
	"net/http"

	"github.com/todoitems/api-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
)

func DoPutTests(t *T) {
	updated := servicedef.TodoItem{ID: 2, Name: "learning english2", IsComplete: true}
	original := servicedef.TodoItem{ID: updated.ID, Name: "Original Name", IsComplete: false}

	t.Run(fmt.Sprintf("update item %d", updated.ID), func(t *T) {
		t.EnsureItem(original)

		resp := t.UpdateItem(updated.ID, servicedef.ItemParamsFrom(updated))
		t.RequireSuccess(resp)
		t.RequireStatus(resp, http.StatusNoContent)
		assert.Empty(t, resp.Body, "204 response should not have a body")
	})

	t.Run(fmt.Sprintf("update item %d is visible", updated.ID), func(t *T) {
		t.EnsureItem(original)

		resp := t.UpdateItem(updated.ID, servicedef.ItemParamsFrom(updated))
		t.RequireStatus(resp, http.StatusNoContent)

		resp = t.GetItem(updated.ID)
		t.RequireStatus(resp, http.StatusOK)
		AssertItemEquals(t, updated, t.RequireItemBody(resp))
	})

	for _, p := range []struct {
		id   int
		name string
	}{
		{999, "Non-existent Item"},
		{888, "Missing Item"},
		{777, "Not Found Item"},
	} {
		p := p
		t.Run(fmt.Sprintf("update non-existent item %d", p.id), func(t *T) {
			resp := t.UpdateItem(p.id, servicedef.ItemParams(p.id, p.name, true))
			assert.False(t, resp.IsSuccessful())
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		})

		t.Run(fmt.Sprintf("update non-existent item %d returns problem details", p.id), func(t *T) {
			t.RequireNotFoundProblem(t.UpdateItem(p.id, servicedef.ItemParams(p.id, p.name, true)))
		})
	}

	t.Group("invalid data", func(t *T) {
		t.RunOptional(OptionValidation, "null name", func(t *T) {
			base := servicedef.TodoItem{ID: 301, Name: "Base Item"}
			t.SeedItem(base)

			body := ldvalue.ObjectBuild().
				Set("id", ldvalue.Int(base.ID)).
				Set("name", ldvalue.Null()).
				Build()
			resp := t.UpdateItem(base.ID, body)
			t.RequireStatus(resp, http.StatusBadRequest)
		})
	})
}
