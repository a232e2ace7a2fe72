package servicedef

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// TodoItemsPath is the path of the collection resource, relative to the service base URL.
const TodoItemsPath = "/api/TodoItems"

// TodoItem is the JSON representation of an item as returned by the service.
type TodoItem struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	IsComplete bool   `json:"isComplete"`
}

// NewTodoItem is a request body for creating or updating an item.
//
// If ID is not defined, the "id" property is left out of the JSON object entirely, so that
// the service has to allocate one itself.
type NewTodoItem struct {
	ID         ldvalue.OptionalInt
	Name       string
	IsComplete bool
}

// ItemParams returns a NewTodoItem with an explicit ID.
func ItemParams(id int, name string, isComplete bool) NewTodoItem {
	return NewTodoItem{ID: ldvalue.NewOptionalInt(id), Name: name, IsComplete: isComplete}
}

// ItemParamsFrom converts a TodoItem into a request body with the same ID.
func ItemParamsFrom(item TodoItem) NewTodoItem {
	return ItemParams(item.ID, item.Name, item.IsComplete)
}

func (p NewTodoItem) AsValue() ldvalue.Value {
	b := ldvalue.ObjectBuild()
	if p.ID.IsDefined() {
		b = b.Set("id", ldvalue.Int(p.ID.IntValue()))
	}
	return b.Set("name", ldvalue.String(p.Name)).
		Set("isComplete", ldvalue.Bool(p.IsComplete)).
		Build()
}

func (p NewTodoItem) MarshalJSON() ([]byte, error) {
	return p.AsValue().MarshalJSON()
}

// CompleteTestData is the fixed set of items that the list scenarios seed the service with.
var CompleteTestData = []TodoItem{
	{ID: 1, Name: "learning english", IsComplete: true},
	{ID: 2, Name: "AI website creation", IsComplete: true},
	{ID: 3, Name: "Swimming", IsComplete: false},
	{ID: 4, Name: "Reading", IsComplete: true},
}
