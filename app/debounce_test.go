package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type size struct {
	Width, Height uint32
}

func TestNewDebouncerNegativeDelay(t *testing.T) {
	_, err := NewDebouncer[int](-time.Millisecond)
	assert.ErrorIs(t, err, ErrNegativeDelay)
}

func TestTickNegativeDelta(t *testing.T) {
	d, err := NewDebouncer[int](100 * time.Millisecond)
	require.NoError(t, err)

	d.Push(1)
	assert.ErrorIs(t, d.Tick(-time.Millisecond), ErrNegativeDelta)

	// the rejected tick must not have advanced the timer
	require.NoError(t, d.Tick(100*time.Millisecond))
	_, ok := d.Take()
	assert.True(t, ok)
}

func TestTakeBeforeDelay(t *testing.T) {
	d, err := NewDebouncer[int](100 * time.Millisecond)
	require.NoError(t, err)

	d.Push(7)

	_, ok := d.Take()
	assert.False(t, ok, "no tick yet, value must be held back")

	require.NoError(t, d.Tick(99*time.Millisecond))
	_, ok = d.Take()
	assert.False(t, ok)
}

func TestTakeAtExactDelay(t *testing.T) {
	d, err := NewDebouncer[int](100 * time.Millisecond)
	require.NoError(t, err)

	d.Push(7)

	require.NoError(t, d.Tick(60*time.Millisecond))
	require.NoError(t, d.Tick(40*time.Millisecond))

	value, ok := d.Take()
	assert.True(t, ok)
	assert.Equal(t, 7, value)
}

func TestLatestValueWins(t *testing.T) {
	d, err := NewDebouncer[int](100 * time.Millisecond)
	require.NoError(t, err)

	d.Push(1)
	d.Push(2)
	require.NoError(t, d.Tick(100*time.Millisecond))

	value, ok := d.Take()
	assert.True(t, ok)
	assert.Equal(t, 2, value)
}

func TestPushResetsElapsed(t *testing.T) {
	d, err := NewDebouncer[string](100 * time.Millisecond)
	require.NoError(t, err)

	d.Push("a")
	require.NoError(t, d.Tick(50*time.Millisecond))

	// the second push discards "a" and restarts the quiet period
	d.Push("b")

	require.NoError(t, d.Tick(99*time.Millisecond))
	_, ok := d.Take()
	assert.False(t, ok)

	require.NoError(t, d.Tick(time.Millisecond))
	value, ok := d.Take()
	assert.True(t, ok)
	assert.Equal(t, "b", value)
}

func TestAtMostOnceDelivery(t *testing.T) {
	d, err := NewDebouncer[int](100 * time.Millisecond)
	require.NoError(t, err)

	d.Push(3)
	require.NoError(t, d.Tick(200*time.Millisecond))

	_, ok := d.Take()
	require.True(t, ok)

	_, ok = d.Take()
	assert.False(t, ok, "a value is delivered at most once per push")

	// more ticks must not resurrect the delivered value
	require.NoError(t, d.Tick(time.Second))
	_, ok = d.Take()
	assert.False(t, ok)
}

func TestPeekDoesNotConsume(t *testing.T) {
	d, err := NewDebouncer[int](100 * time.Millisecond)
	require.NoError(t, err)

	d.Push(5)
	require.NoError(t, d.Tick(100*time.Millisecond))

	for i := 0; i < 3; i++ {
		value, ok := d.Peek()
		require.True(t, ok)
		assert.Equal(t, 5, value)
	}

	value, ok := d.Take()
	assert.True(t, ok)
	assert.Equal(t, 5, value)

	_, ok = d.Peek()
	assert.False(t, ok)
}

func TestPeekBeforeDelay(t *testing.T) {
	d, err := NewDebouncer[int](100 * time.Millisecond)
	require.NoError(t, err)

	d.Push(5)
	require.NoError(t, d.Tick(50*time.Millisecond))

	_, ok := d.Peek()
	assert.False(t, ok)
}

func TestIdleTicks(t *testing.T) {
	d, err := NewDebouncer[int](100 * time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, d.Tick(0))
	require.NoError(t, d.Tick(time.Hour))

	_, ok := d.Take()
	assert.False(t, ok, "ticks without a push must not produce a value")
}

func TestZeroDelay(t *testing.T) {
	d, err := NewDebouncer[int](0)
	require.NoError(t, err)

	d.Push(9)

	value, ok := d.Take()
	assert.True(t, ok)
	assert.Equal(t, 9, value)
}

func TestZeroDelta(t *testing.T) {
	d, err := NewDebouncer[int](time.Millisecond)
	require.NoError(t, err)

	d.Push(1)
	require.NoError(t, d.Tick(0))

	_, ok := d.Take()
	assert.False(t, ok)
}

func TestResizeScenario(t *testing.T) {
	// delay 100ms: push at t=0, poll at 40ms and 105ms
	d, err := NewDebouncer[size](100 * time.Millisecond)
	require.NoError(t, err)

	d.Push(size{800, 600})

	require.NoError(t, d.Tick(40*time.Millisecond))
	_, ok := d.Take()
	assert.False(t, ok)

	require.NoError(t, d.Tick(65*time.Millisecond))
	value, ok := d.Take()
	assert.True(t, ok)
	assert.Equal(t, size{800, 600}, value)

	_, ok = d.Take()
	assert.False(t, ok)
}

func TestResizeBurstScenario(t *testing.T) {
	// delay 100ms: a second push at t=50ms supersedes the first
	d, err := NewDebouncer[size](100 * time.Millisecond)
	require.NoError(t, err)

	d.Push(size{640, 480})
	require.NoError(t, d.Tick(50*time.Millisecond))

	d.Push(size{1280, 720})
	require.NoError(t, d.Tick(100*time.Millisecond))

	value, ok := d.Take()
	assert.True(t, ok)
	assert.Equal(t, size{1280, 720}, value, "the superseded size must never surface")

	_, ok = d.Take()
	assert.False(t, ok)
}

func TestReusableAfterDelivery(t *testing.T) {
	d, err := NewDebouncer[int](100 * time.Millisecond)
	require.NoError(t, err)

	for round := 1; round <= 3; round++ {
		d.Push(round)
		require.NoError(t, d.Tick(100*time.Millisecond))

		value, ok := d.Take()
		require.True(t, ok)
		assert.Equal(t, round, value)
	}
}
