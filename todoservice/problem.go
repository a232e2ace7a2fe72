package todoservice

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/todoitems/api-contract-tests/servicedef"
)

const (
	contentTypeJSON    = "application/json; charset=utf-8"
	contentTypeProblem = "application/problem+json; charset=utf-8"
	maxJSONBodyBytes   = 1 << 20
)

var (
	errEmptyBody     = errors.New("a non-empty request body is required")
	errMalformedBody = errors.New("the JSON value could not be converted")
)

// problem is the wire shape of an error response. It is a superset of
// servicedef.ErrorResponse.
type problem struct {
	servicedef.ErrorResponse
	Errors map[string][]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeProblem(w http.ResponseWriter, status int, problemType, title string, errs map[string][]string) {
	w.Header().Set("Content-Type", contentTypeProblem)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(problem{
		ErrorResponse: servicedef.ErrorResponse{
			Type:    problemType,
			Title:   title,
			Status:  status,
			TraceID: newTraceID(),
		},
		Errors: errs,
	})
}

func writeNotFound(w http.ResponseWriter) {
	writeProblem(w, http.StatusNotFound, servicedef.NotFoundType, servicedef.NotFoundTitle, nil)
}

func writeValidationProblem(w http.ResponseWriter, field, message string) {
	writeProblem(w, http.StatusBadRequest, servicedef.BadRequestType, servicedef.BadRequestTitle,
		map[string][]string{field: {message}})
}

// newTraceID returns an ID in W3C traceparent form: version, 16-byte trace ID, 8-byte span ID,
// flags.
func newTraceID() string {
	trace, span := uuid.New(), uuid.New()
	return "00-" + hex.EncodeToString(trace[:]) + "-" + hex.EncodeToString(span[:8]) + "-00"
}

func decodeJSON(r *http.Request, target interface{}) error {
	if r.Body == nil {
		return errEmptyBody
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes))
	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return errMalformedBody
	}
	return nil
}
