package upstream

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    FailureClass
	}{
		{"transport failure", Outcome{Err: errors.New("connection refused")}, ClassRetryableTransient},
		{"timeout", Outcome{Err: errors.New("context deadline exceeded")}, ClassRetryableTransient},
		{"200 ok", Outcome{Status: 200, Body: []byte(`[]`)}, ClassSuccess},
		{"204 no content", Outcome{Status: 204}, ClassSuccess},
		{"404 not found", Outcome{Status: 404}, ClassNotFound},
		{"429 rate limited", Outcome{Status: 429}, ClassRateLimited},
		{"400 bad request", Outcome{Status: 400}, ClassClientError},
		{"403 forbidden", Outcome{Status: 403}, ClassClientError},
		{"500 internal", Outcome{Status: 500}, ClassRetryableTransient},
		{"502 bad gateway", Outcome{Status: 502}, ClassRetryableTransient},
		{"503 unavailable", Outcome{Status: 503}, ClassRetryableTransient},
		{"504 gateway timeout", Outcome{Status: 504}, ClassRetryableTransient},
		{"501 not implemented", Outcome{Status: 501}, ClassFatal},
		{"302 redirect", Outcome{Status: 302}, ClassFatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.outcome); got != tt.want {
				t.Errorf("Classify(%+v) = %v, want %v", tt.outcome, got, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	o := Outcome{Status: 503}
	first := Classify(o)
	for i := 0; i < 5; i++ {
		if got := Classify(o); got != first {
			t.Fatalf("classification not deterministic: %v vs %v", got, first)
		}
	}
}

func TestFailureClass_Retryable(t *testing.T) {
	retryable := map[FailureClass]bool{
		ClassSuccess:            false,
		ClassRetryableTransient: true,
		ClassRateLimited:        true,
		ClassNotFound:           false,
		ClassClientError:        false,
		ClassFatal:              false,
	}

	for class, want := range retryable {
		if got := class.Retryable(); got != want {
			t.Errorf("%v.Retryable() = %v, want %v", class, got, want)
		}
	}
}
