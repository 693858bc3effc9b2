// Package debounce provides the timer primitives behind search-as-you-type:
// a cancellable delayed invocation and a last-query-wins staleness guard.
package debounce

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultDelay matches the reader's keystroke debounce window.
const DefaultDelay = 300 * time.Millisecond

// Debouncer schedules a delayed function call, cancelling any previously
// scheduled one. Safe for concurrent use.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Debouncer with the given delay; a non-positive delay falls
// back to DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Do schedules fn to run after the delay. A pending invocation from an
// earlier Do call is cancelled first, so only the latest fn ever fires.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Session implements "last query wins" for interleaved asynchronous lookups:
// each new query begins a generation, and results carrying a superseded token
// must be discarded instead of overwriting newer ones.
type Session struct {
	seq atomic.Uint64
}

// Token identifies one query generation.
type Token struct {
	session *Session
	seq     uint64
}

// Begin starts a new generation, invalidating all earlier tokens.
func (s *Session) Begin() Token {
	return Token{session: s, seq: s.seq.Add(1)}
}

// Valid reports whether this token still belongs to the latest generation.
func (t Token) Valid() bool {
	return t.session != nil && t.session.seq.Load() == t.seq
}
