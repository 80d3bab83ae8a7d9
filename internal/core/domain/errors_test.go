package domain

import (
	"errors"
	"testing"
)

func TestErrorFactories(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantTitle  string
		wantStatus int
	}{
		{"bad request", BadRequest("page: must be at least 1"), TitleValidationError, 400},
		{"not found", NotFound("Cannot find a Post with id 999"), TitleNotFound, 404},
		{"rate limited", RateLimitExceeded("API rate limit exceeded.", nil), TitleRateLimitExceeded, 429},
		{"unavailable", ServiceUnavailable("Service temporarily unavailable.", nil), TitleServiceUnavailable, 503},
		{"internal", InternalError("An unexpected error occurred.", nil), TitleInternalError, 500},
	}

	for _, tt := range tests {
		if tt.err.Title != tt.wantTitle {
			t.Errorf("%s: title = %q, want %q", tt.name, tt.err.Title, tt.wantTitle)
		}
		if tt.err.StatusCode != tt.wantStatus {
			t.Errorf("%s: status = %d, want %d", tt.name, tt.err.StatusCode, tt.wantStatus)
		}
	}
}

func TestNewError_DefaultTitle(t *testing.T) {
	err := NewError("", "upstream rejected the request", 422, nil)
	if err.Title != DefaultTitle {
		t.Errorf("expected default title, got %q", err.Title)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := ServiceUnavailable("Service temporarily unavailable.", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}
