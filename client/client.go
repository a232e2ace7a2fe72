package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/todoitems/api-contract-tests/framework"
	"github.com/todoitems/api-contract-tests/servicedef"
)

const (
	DefaultBaseURL        = "http://127.0.0.1:5089"
	DefaultRequestTimeout = time.Second * 10

	acceptText = "text/plain"
	acceptAny  = "*/*"
)

// TodoItemsClient makes requests to the TodoItems service. It does not interpret the status
// of a response; deciding whether a response is what was expected is up to the tests.
type TodoItemsClient struct {
	baseURL    string
	httpClient *http.Client
	logger     framework.Logger
}

// NewTodoItemsClient creates a client for the service at baseURL. A zero timeout means
// DefaultRequestTimeout.
func NewTodoItemsClient(baseURL string, timeout time.Duration, logger framework.Logger) *TodoItemsClient {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &TodoItemsClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// WithLogger returns a copy of the client that logs requests to the specified logger. The copy
// shares the underlying HTTP client.
func (c *TodoItemsClient) WithLogger(logger framework.Logger) *TodoItemsClient {
	c1 := *c
	if logger == nil {
		logger = framework.NullLogger()
	}
	c1.logger = logger
	return &c1
}

// ListItems sends GET /api/TodoItems.
func (c *TodoItemsClient) ListItems() (Response, error) {
	return c.do("GET", servicedef.TodoItemsPath, acceptText, nil)
}

// GetItem sends GET /api/TodoItems/{id}.
func (c *TodoItemsClient) GetItem(id int) (Response, error) {
	return c.do("GET", itemPath(id), acceptText, nil)
}

// CreateItem sends POST /api/TodoItems. The body can be anything that encoding/json can
// marshal, so that tests can send deliberately malformed items.
func (c *TodoItemsClient) CreateItem(body interface{}) (Response, error) {
	return c.do("POST", servicedef.TodoItemsPath, acceptText, body)
}

// UpdateItem sends PUT /api/TodoItems/{id}.
func (c *TodoItemsClient) UpdateItem(id int, body interface{}) (Response, error) {
	return c.do("PUT", itemPath(id), acceptAny, body)
}

// DeleteItem sends DELETE /api/TodoItems/{id}.
func (c *TodoItemsClient) DeleteItem(id int) (Response, error) {
	return c.do("DELETE", itemPath(id), acceptAny, nil)
}

func itemPath(id int) string {
	return servicedef.TodoItemsPath + "/" + strconv.Itoa(id)
}

func (c *TodoItemsClient) do(method, path, accept string, body interface{}) (Response, error) {
	url := c.baseURL + path
	var bodyReader io.Reader
	var data []byte
	if body != nil {
		var err error
		if data, err = json.Marshal(body); err != nil {
			return Response{}, fmt.Errorf("could not serialize request body: %w", err)
		}
		bodyReader = bytes.NewBuffer(data)
	}
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Accept", accept)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		c.logger.Printf(">> %s %s %s", method, url, string(data))
	} else {
		c.logger.Printf(">> %s %s", method, url)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("<< error: %s", err)
		return Response{}, fmt.Errorf("%s %s failed: %w", method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Printf("<< error reading body: %s", err)
		return Response{}, fmt.Errorf("error reading response body from %s %s: %w", method, url, err)
	}
	c.logger.Printf("<< %d %s", resp.StatusCode, string(respBody))
	return Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}
