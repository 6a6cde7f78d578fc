package app

import (
	"errors"
	"time"
)

var ErrNegativeDelay = errors.New("debounce delay must not be negative")
var ErrNegativeDelta = errors.New("tick delta must not be negative")

// Debouncer coalesces a burst of values into a single one, released only
// once no new value has been pushed for the configured delay. Time does
// not advance on its own, the caller feeds frame deltas via Tick. This
// keeps the type deterministic and free of timers or goroutines, but also
// means it is not safe for concurrent use.
//
// A zero delay degenerates to "deliver on the next poll".
type Debouncer[T any] struct {
	delay   time.Duration
	pending T
	armed   bool
	elapsed time.Duration
}

func NewDebouncer[T any](delay time.Duration) (*Debouncer[T], error) {
	if delay < 0 {
		return nil, ErrNegativeDelay
	}

	return &Debouncer[T]{delay: delay}, nil
}

// Push records value as the pending one and restarts the quiet period.
// A previously pending, undelivered value is discarded: only the most
// recent value of a burst is ever delivered.
func (d *Debouncer[T]) Push(value T) {
	d.pending = value
	d.armed = true
	d.elapsed = 0
}

// Tick advances the quiet period by delta. A zero delta is a no-op,
// a negative delta is rejected.
func (d *Debouncer[T]) Tick(delta time.Duration) error {
	if delta < 0 {
		return ErrNegativeDelta
	}

	d.elapsed += delta

	return nil
}

// Take returns the pending value and clears it if the quiet period has
// elapsed. Until the next Push, further calls report no value.
func (d *Debouncer[T]) Take() (T, bool) {
	var zero T

	if !d.armed || d.elapsed < d.delay {
		return zero, false
	}

	value := d.pending
	d.pending = zero
	d.armed = false

	return value, true
}

// Peek is the non destructive variant of Take. It returns a copy of the
// pending value so the caller can not modify the held state.
func (d *Debouncer[T]) Peek() (T, bool) {
	var zero T

	if !d.armed || d.elapsed < d.delay {
		return zero, false
	}

	return d.pending, true
}
