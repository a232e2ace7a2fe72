package servicedef

import "fmt"

// Problem types and titles used by the service in its problem-details error bodies.
const (
	BadRequestType  = "https://tools.ietf.org/html/rfc7231#section-6.5.1"
	NotFoundType    = "https://tools.ietf.org/html/rfc7231#section-6.5.4"
	ConflictType    = "https://tools.ietf.org/html/rfc7231#section-6.5.8"
	NotFoundTitle   = "Not Found"
	ConflictTitle   = "Conflict"
	BadRequestTitle = "One or more validation errors occurred."
)

// ErrorResponse is an RFC7807-style problem-details body.
type ErrorResponse struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Status  int    `json:"status"`
	TraceID string `json:"traceId"`
}

func (e ErrorResponse) String() string {
	return fmt.Sprintf("%d %s (%s, trace %s)", e.Status, e.Title, e.Type, e.TraceID)
}
