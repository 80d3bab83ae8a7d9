package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/vietddude/audition/internal/core/config"
	"github.com/vietddude/audition/internal/core/domain"
)

// Problem is the RFC 7807 payload rendered for every failure.
type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// ProblemWriter renders domain errors as problem+json responses. For the
// rate-limited case it attaches this service's advertised rate-limit
// headers; they are policy values, never read from the upstream.
type ProblemWriter struct {
	retryAfterSeconds int
	limit             int

	now func() time.Time // for testing
}

// NewProblemWriter creates a writer with the configured policy values.
func NewProblemWriter(cfg config.RateLimitConfig) *ProblemWriter {
	return &ProblemWriter{
		retryAfterSeconds: cfg.RetryAfterSeconds,
		limit:             cfg.Limit,
		now:               time.Now,
	}
}

// Write renders a domain error. Status codes outside the HTTP range
// collapse to 500 so a bad classification can never produce an
// unwritable response.
func (p *ProblemWriter) Write(w http.ResponseWriter, derr *domain.Error) {
	status := derr.StatusCode
	if status < 100 || status > 599 {
		status = http.StatusInternalServerError
	}

	if status == http.StatusTooManyRequests {
		reset := p.now().Add(time.Duration(p.retryAfterSeconds) * time.Second).Unix()
		w.Header().Set("Retry-After", strconv.Itoa(p.retryAfterSeconds))
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(p.limit))
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset, 10))
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Problem{
		Type:   "about:blank",
		Title:  derr.Title,
		Status: status,
		Detail: derr.Detail,
	})
}
