package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/todoitems/api-contract-tests/servicedef"
)

// Response is a complete HTTP response from the service.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

var errEmptyBody = errors.New("response body was empty")

// IsSuccessful is true for any 2xx status.
func (r Response) IsSuccessful() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r Response) String() string {
	if len(r.Body) == 0 {
		return fmt.Sprintf("HTTP %d (no body)", r.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", r.StatusCode, string(r.Body))
}

// DecodeItem parses the body as a single TodoItem.
func (r Response) DecodeItem() (servicedef.TodoItem, error) {
	var item servicedef.TodoItem
	err := r.decode(&item)
	return item, err
}

// DecodeItems parses the body as an array of TodoItems. A JSON null is an error, since the
// service is expected to return [] for an empty collection.
func (r Response) DecodeItems() ([]servicedef.TodoItem, error) {
	var items []servicedef.TodoItem
	if err := r.decode(&items); err != nil {
		return nil, err
	}
	if items == nil {
		return nil, errors.New("response body was null instead of an array")
	}
	return items, nil
}

// DecodeError parses the body as a problem-details ErrorResponse.
func (r Response) DecodeError() (servicedef.ErrorResponse, error) {
	var e servicedef.ErrorResponse
	err := r.decode(&e)
	return e, err
}

func (r Response) decode(target interface{}) error {
	if len(r.Body) == 0 {
		return errEmptyBody
	}
	if err := json.Unmarshal(r.Body, target); err != nil {
		return fmt.Errorf("malformed JSON in response body (%s): %w", string(r.Body), err)
	}
	return nil
}
