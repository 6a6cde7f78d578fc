package app

import (
	"sort"
	"time"
)

// number of frame samples kept for the percentile statistics.
const historySize = 500

// Clock tracks per frame timing. Tick must be called exactly once per
// frame; everything else derives from the recorded deltas.
type Clock struct {
	// Delta is the duration of the previous frame.
	Delta time.Duration

	// Total is the time accumulated over all ticks so far.
	Total time.Duration

	FrameCount uint64

	lastTime time.Time
	history  []time.Duration
}

// Tick records the start of a new frame. The first call only arms the
// clock, Delta stays zero.
func (c *Clock) Tick() {
	now := time.Now()

	if c.FrameCount > 0 {
		c.record(now.Sub(c.lastTime))
	}

	c.lastTime = now
	c.FrameCount += 1
}

func (c *Clock) record(delta time.Duration) {
	c.Delta = delta
	c.Total += delta

	c.history = append(c.history, delta)
	if len(c.history) > historySize {
		c.history = c.history[1:]
	}
}

// DeltaSeconds is the previous frame duration in seconds, the unit the
// shaders and the debouncer systems work with.
func (c *Clock) DeltaSeconds() float32 {
	return float32(c.Delta.Seconds())
}

func (c *Clock) TotalSeconds() float32 {
	return float32(c.Total.Seconds())
}

// Average is the mean frame duration over the recorded history.
func (c *Clock) Average() time.Duration {
	if len(c.history) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range c.history {
		total += d
	}

	return total / time.Duration(len(c.history))
}

// Percentile returns the frame duration at the given percentile
// (0 to 1) of the recorded history.
func (c *Clock) Percentile(p float64) time.Duration {
	if len(c.history) == 0 {
		return 0
	}

	sorted := make([]time.Duration, len(c.history))
	copy(sorted, c.history)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}

	return sorted[idx]
}

// History returns the recorded frame durations, oldest first. The
// returned slice is only valid until the next Tick.
func (c *Clock) History() []time.Duration {
	return c.history
}

func (c *Clock) FPS() float64 {
	avg := c.Average()
	if avg == 0 {
		return 0
	}

	return 1.0 / avg.Seconds()
}
