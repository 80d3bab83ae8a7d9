// Package resilience provides the retry and circuit-breaking building
// blocks for upstream calls.
package resilience

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned when the circuit breaker is open and
// rejecting calls.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is the breaker's position in the Closed/Open/HalfOpen machine.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig defines circuit breaker behavior.
type BreakerConfig struct {
	// FailureThreshold is the number of consecutive failures that trips
	// Closed to Open.
	FailureThreshold int

	// Cooldown is how long Open rejects calls before admitting trials.
	Cooldown time.Duration

	// HalfOpenMaxCalls bounds concurrent trial calls while HalfOpen; the
	// same number of consecutive trial successes closes the breaker.
	HalfOpenMaxCalls int

	// OnStateChange, if set, is invoked (under the breaker lock) on every
	// transition. Keep it cheap.
	OnStateChange func(from, to State)
}

// Breaker is a circuit breaker shared by all callers of one upstream
// dependency. It is created once at startup, injected where needed, and
// lives for the process lifetime.
//
// The transition policy is deterministic: Closed counts consecutive
// failures and trips to Open at FailureThreshold; Open rejects until
// Cooldown has elapsed, then the next admitted call moves it to HalfOpen;
// HalfOpen admits at most HalfOpenMaxCalls trials, reopening on any trial
// failure and closing after HalfOpenMaxCalls consecutive successes.
//
// All state lives behind one mutex; Allow and Record are each a short
// critical section, so no lock is ever held across a network call.
type Breaker struct {
	mu sync.Mutex

	cfg       BreakerConfig
	state     State
	failures  int // consecutive failures while Closed
	successes int // consecutive trial successes while HalfOpen
	inflight  int // admitted trials while HalfOpen
	openedAt  time.Time

	now func() time.Time // for testing
}

// NewBreaker creates a breaker in the Closed state.
func NewBreaker(cfg BreakerConfig) *Breaker {
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = 1
	}
	if cfg.HalfOpenMaxCalls < 1 {
		cfg.HalfOpenMaxCalls = 1
	}
	return &Breaker{
		cfg: cfg,
		now: time.Now,
	}
}

// Allow reports whether a call may proceed. It performs the Open to
// HalfOpen transition once the cooldown has elapsed; a true result while
// HalfOpen consumes one trial slot.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return true
	case StateOpen:
		if b.now().Sub(b.openedAt) < b.cfg.Cooldown {
			return false
		}
		b.transition(StateHalfOpen)
		b.inflight = 1 // this caller takes the first trial slot
		return true
	default: // StateHalfOpen
		if b.inflight >= b.cfg.HalfOpenMaxCalls {
			return false
		}
		b.inflight++
		return true
	}
}

// Record reports the result of a call previously admitted by Allow.
// Success means the upstream answered; terminal 4xx responses count as
// success because the upstream is responsive.
func (b *Breaker) Record(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		if success {
			b.failures = 0
			return
		}
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.transition(StateOpen)
			b.openedAt = b.now()
		}
	case StateHalfOpen:
		if b.inflight > 0 {
			b.inflight--
		}
		if !success {
			b.transition(StateOpen)
			b.openedAt = b.now()
			return
		}
		b.successes++
		if b.successes >= b.cfg.HalfOpenMaxCalls {
			b.transition(StateClosed)
		}
	case StateOpen:
		// Late result from a call admitted before the trip; nothing to do.
	}
}

// State returns the current breaker state.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) transition(to State) {
	from := b.state
	b.state = to
	b.failures = 0
	b.successes = 0
	b.inflight = 0
	if b.cfg.OnStateChange != nil && from != to {
		b.cfg.OnStateChange(from, to)
	}
}
