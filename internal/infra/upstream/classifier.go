package upstream

import "net/http"

// Classify assigns a failure class to a transport outcome. This is the
// single source of truth for what is worth retrying; no other component
// re-derives it.
//
// Transport failures (refused connections, timeouts, DNS, TLS) and the
// retryable server statuses 500/502/503/504 are transient. 429 is kept
// distinct because it carries a retry-after hint. 404 is a terminal
// domain condition, other 4xx are terminal client errors, and anything
// else (unexpected 3xx, 501, ...) is fatal.
func Classify(o Outcome) FailureClass {
	if o.Err != nil {
		return ClassRetryableTransient
	}

	switch o.Status {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return ClassRetryableTransient
	case http.StatusTooManyRequests:
		return ClassRateLimited
	case http.StatusNotFound:
		return ClassNotFound
	}

	switch {
	case o.Status >= 200 && o.Status < 300:
		return ClassSuccess
	case o.Status >= 400 && o.Status < 500:
		return ClassClientError
	default:
		return ClassFatal
	}
}
