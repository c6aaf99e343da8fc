package gateway

import (
	"errors"
	"sync"
	"time"
)

type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

var ErrCircuitOpen = errors.New("circuit breaker is open")

type BreakerSettings struct {
	Name             string
	MinCalls         int
	FailureThreshold float64
	OpenWait         time.Duration
	HalfOpenMaxCalls int
}

// CircuitBreaker is an explicit CLOSED/OPEN/HALF_OPEN state machine with a
// rolling outcome window. State is shared by every caller of the client.
type CircuitBreaker struct {
	settings BreakerSettings
	now      func() time.Time

	mu              sync.Mutex
	state           State
	window          []bool // true = failure
	windowIdx       int
	windowFilled    int
	openedAt        time.Time
	halfOpenCalls   int
	halfOpenSuccess int
}

func NewCircuitBreaker(settings BreakerSettings) *CircuitBreaker {
	return &CircuitBreaker{
		settings: settings,
		now:      time.Now,
		window:   make([]bool, settings.MinCalls),
	}
}

func (b *CircuitBreaker) Name() string {
	return b.settings.Name
}

func (b *CircuitBreaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentState()
}

// Execute runs fn unless the circuit is open. While half-open only a bounded
// number of trial calls pass through; the rest short-circuit.
func (b *CircuitBreaker) Execute(fn func() error) error {
	b.mu.Lock()
	switch b.currentState() {
	case StateOpen:
		b.mu.Unlock()
		return ErrCircuitOpen
	case StateHalfOpen:
		if b.halfOpenCalls >= b.settings.HalfOpenMaxCalls {
			b.mu.Unlock()
			return ErrCircuitOpen
		}
		b.halfOpenCalls++
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	b.record(err != nil)
	b.mu.Unlock()

	return err
}

// currentState applies the open -> half-open timer transition. Callers hold mu.
func (b *CircuitBreaker) currentState() State {
	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.settings.OpenWait {
		b.state = StateHalfOpen
		b.halfOpenCalls = 0
		b.halfOpenSuccess = 0
	}
	return b.state
}

func (b *CircuitBreaker) record(failed bool) {
	switch b.state {
	case StateHalfOpen:
		if failed {
			b.trip()
			return
		}
		b.halfOpenSuccess++
		if b.halfOpenSuccess >= b.settings.HalfOpenMaxCalls {
			b.reset()
		}
	case StateClosed:
		b.window[b.windowIdx] = failed
		b.windowIdx = (b.windowIdx + 1) % len(b.window)
		if b.windowFilled < len(b.window) {
			b.windowFilled++
		}
		if b.windowFilled >= b.settings.MinCalls && b.failureRate() > b.settings.FailureThreshold {
			b.trip()
		}
	}
}

func (b *CircuitBreaker) failureRate() float64 {
	failures := 0
	for i := 0; i < b.windowFilled; i++ {
		if b.window[i] {
			failures++
		}
	}
	return float64(failures) / float64(b.windowFilled)
}

func (b *CircuitBreaker) trip() {
	b.state = StateOpen
	b.openedAt = b.now()
	b.clearWindow()
}

func (b *CircuitBreaker) reset() {
	b.state = StateClosed
	b.clearWindow()
}

func (b *CircuitBreaker) clearWindow() {
	for i := range b.window {
		b.window[i] = false
	}
	b.windowIdx = 0
	b.windowFilled = 0
}
