package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerOnlyLatestFires(t *testing.T) {
	d := New(20 * time.Millisecond)

	var first, second atomic.Int32
	d.Do(func() { first.Add(1) })
	d.Do(func() { second.Add(1) })

	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(0), first.Load(), "superseded call must not fire")
	assert.Equal(t, int32(1), second.Load())
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := New(20 * time.Millisecond)

	var fired atomic.Int32
	d.Do(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestDebouncerReusableAfterStop(t *testing.T) {
	d := New(10 * time.Millisecond)

	var fired atomic.Int32
	d.Do(func() { fired.Add(1) })
	d.Stop()
	d.Do(func() { fired.Add(1) })

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestNewDefaultsNonPositiveDelay(t *testing.T) {
	assert.Equal(t, DefaultDelay, New(0).delay)
	assert.Equal(t, DefaultDelay, New(-time.Second).delay)
	assert.Equal(t, time.Millisecond, New(time.Millisecond).delay)
}

func TestSessionLastQueryWins(t *testing.T) {
	var s Session

	stale := s.Begin()
	assert.True(t, stale.Valid())

	latest := s.Begin()
	assert.False(t, stale.Valid(), "older generations are invalidated")
	assert.True(t, latest.Valid())
}

func TestZeroTokenIsInvalid(t *testing.T) {
	var tok Token
	assert.False(t, tok.Valid())
}
