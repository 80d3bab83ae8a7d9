// Package upstream implements the resilient gateway to the external
// posts provider: a timeout-bounded transport, deterministic failure
// classification, and the circuit-breaker-gated, retry-driven call loop
// behind the four read operations.
package upstream

// Outcome is the raw result of one transport attempt: either a
// transport-level failure (Err set) or an HTTP status with its body.
// An outcome lives only until it is classified.
type Outcome struct {
	Status int
	Body   []byte
	Err    error
}

// FailureClass buckets an outcome for retry and error-mapping decisions.
type FailureClass int

const (
	ClassSuccess FailureClass = iota
	ClassRetryableTransient
	ClassRateLimited
	ClassNotFound
	ClassClientError
	ClassFatal
)

func (c FailureClass) String() string {
	switch c {
	case ClassSuccess:
		return "success"
	case ClassRetryableTransient:
		return "retryable_transient"
	case ClassRateLimited:
		return "rate_limited"
	case ClassNotFound:
		return "not_found"
	case ClassClientError:
		return "client_error"
	case ClassFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Retryable reports whether another attempt may help.
func (c FailureClass) Retryable() bool {
	return c == ClassRetryableTransient || c == ClassRateLimited
}

// Responsive reports whether the upstream answered the call, regardless
// of whether the answer was what the caller wanted. The circuit breaker
// counts responsive outcomes as successes.
func (c FailureClass) Responsive() bool {
	switch c {
	case ClassSuccess, ClassNotFound, ClassClientError, ClassRateLimited:
		return true
	default:
		return false
	}
}
