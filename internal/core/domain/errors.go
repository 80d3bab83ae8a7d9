package domain

import "fmt"

// Stable problem titles surfaced to callers. Handlers and clients match
// on these, so they must not change between releases.
const (
	DefaultTitle            = "API Error Occurred"
	TitleValidationError    = "Validation Error"
	TitleNotFound           = "Resource Not Found"
	TitleRateLimitExceeded  = "Rate Limit Exceeded"
	TitleServiceUnavailable = "Service Unavailable"
	TitleInternalError      = "Internal Server Error"
)

// Error is the structured, transport-agnostic error produced by the core.
// StatusCode uses conventional HTTP codes purely as a classification code.
// It is the only error type that crosses the gateway boundary; immutable
// once built.
type Error struct {
	Title      string
	Detail     string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%d): %s: %v", e.Title, e.StatusCode, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s (%d): %s", e.Title, e.StatusCode, e.Detail)
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an error with an explicit title and status code.
func NewError(title, detail string, statusCode int, cause error) *Error {
	if title == "" {
		title = DefaultTitle
	}
	return &Error{Title: title, Detail: detail, StatusCode: statusCode, Cause: cause}
}

// BadRequest builds a 400 validation error.
func BadRequest(detail string) *Error {
	return &Error{Title: TitleValidationError, Detail: detail, StatusCode: 400}
}

// NotFound builds a 404 error for a missing resource.
func NotFound(detail string) *Error {
	return &Error{Title: TitleNotFound, Detail: detail, StatusCode: 404}
}

// RateLimitExceeded builds a 429 error.
func RateLimitExceeded(detail string, cause error) *Error {
	return &Error{Title: TitleRateLimitExceeded, Detail: detail, StatusCode: 429, Cause: cause}
}

// ServiceUnavailable builds a 503 error.
func ServiceUnavailable(detail string, cause error) *Error {
	return &Error{Title: TitleServiceUnavailable, Detail: detail, StatusCode: 503, Cause: cause}
}

// InternalError builds a 500 error.
func InternalError(detail string, cause error) *Error {
	return &Error{Title: TitleInternalError, Detail: detail, StatusCode: 500, Cause: cause}
}
