package todotests

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/todoitems/api-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoPostTests(t *T) {
	for _, newItem := range []servicedef.TodoItem{
		{ID: 4, Name: "Swimming", IsComplete: false},
		{ID: 5, Name: "Reading", IsComplete: true},
	} {
		newItem := newItem
		t.Run(fmt.Sprintf("create item %d", newItem.ID), func(t *T) {
			resp := t.ListItems()
			t.RequireSuccess(resp)
			_, exists := findItem(t.RequireItemsBody(resp), newItem.ID)
			require.False(t, exists, "ID %d already exists, cannot create duplicate TodoItem", newItem.ID)

			resp = t.CreateItem(servicedef.ItemParamsFrom(newItem))
			t.RequireStatus(resp, http.StatusCreated)
			AssertItemEquals(t, newItem, t.RequireItemBody(resp))
		})
	}

	t.Run("create without id allocates a greater id", func(t *T) {
		resp := t.ListItems()
		t.RequireSuccess(resp)
		maxID := maxItemID(t.RequireItemsBody(resp))

		resp = t.CreateItem(servicedef.NewTodoItem{Name: "aaa", IsComplete: true})
		t.RequireStatus(resp, http.StatusCreated)
		created := t.RequireItemBody(resp)
		assert.Equal(t, "aaa", created.Name)
		assert.True(t, created.IsComplete)
		assert.Greater(t, created.ID, maxID, "new id should be greater than any existing id")
	})

	t.Run("create without id after existing items allocates a greater id", func(t *T) {
		for _, item := range servicedef.CompleteTestData {
			t.SeedItem(item)
		}
		resp := t.ListItems()
		t.RequireSuccess(resp)
		maxID := maxItemID(t.RequireItemsBody(resp))

		resp = t.CreateItem(servicedef.NewTodoItem{Name: "aaa", IsComplete: true})
		t.RequireStatus(resp, http.StatusCreated)
		assert.Greater(t, t.RequireItemBody(resp).ID, maxID, "new id should be greater than any existing id")
	})

	t.Run("created item is retrievable by id", func(t *T) {
		item := servicedef.TodoItem{ID: 10, Name: "Cooking", IsComplete: false}
		t.SeedItem(item)

		resp := t.GetItem(item.ID)
		t.RequireStatus(resp, http.StatusOK)
		AssertItemEquals(t, item, t.RequireItemBody(resp))
	})

	t.Group("invalid data", doPostValidationTests)
}

func doPostValidationTests(t *T) {
	requireBadRequest := func(t *T, body interface{}) {
		resp := t.CreateItem(body)
		t.RequireStatus(resp, http.StatusBadRequest)
	}

	t.RunOptional(OptionValidation, "missing name field", func(t *T) {
		requireBadRequest(t, ldvalue.ObjectBuild().Set("id", ldvalue.Int(200)).Build())
	})

	for _, p := range []struct {
		id   int
		name string
	}{
		{-1, "Invalid Item"},
		{-100, "Negative Item"},
		{0, "Zero Item"},
	} {
		p := p
		t.RunOptional(OptionValidation, fmt.Sprintf("invalid id %d", p.id), func(t *T) {
			requireBadRequest(t, servicedef.ItemParams(p.id, p.name, false))
		})
	}

	for _, p := range []struct {
		id          int
		name        string
		description string
	}{
		{201, "", "empty name"},
		{202, strings.Repeat("A", 1000), "1000-character name"},
	} {
		p := p
		t.RunOptional(OptionValidation, "invalid name: "+p.description, func(t *T) {
			requireBadRequest(t, servicedef.ItemParams(p.id, p.name, false))
		})
	}
}
