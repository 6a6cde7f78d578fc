package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCanvasResetClears(t *testing.T) {
	c := newCanvas(64, 64)
	c.reset()
	c.label("hello")

	var nonZero bool
	for _, p := range c.img.Pix {
		if p != 0 {
			nonZero = true
			break
		}
	}
	require.True(t, nonZero)

	c.reset()
	for _, p := range c.img.Pix {
		require.Zero(t, p)
	}
}

func TestLabelAdvancesCursor(t *testing.T) {
	c := newCanvas(128, 128)
	c.reset()

	before := c.cursor
	c.label("one")
	c.label("two")

	require.Equal(t, before+2*lineHeight, c.cursor)
}

func TestFrameGraphDrawsBars(t *testing.T) {
	c := newCanvas(256, 256)
	c.reset()

	samples := []time.Duration{
		8 * time.Millisecond,
		16 * time.Millisecond,
		40 * time.Millisecond,
	}

	c.frameGraph(samples, 16*time.Millisecond)

	var nonZero int
	for _, p := range c.img.Pix {
		if p != 0 {
			nonZero++
		}
	}

	require.Greater(t, nonZero, 0)
}

func TestFrameGraphEmptySamples(t *testing.T) {
	c := newCanvas(64, 64)
	c.reset()

	// must not panic or draw anything
	c.frameGraph(nil, 16*time.Millisecond)

	for _, p := range c.img.Pix {
		require.Zero(t, p)
	}
}

func TestTextWidthGrows(t *testing.T) {
	require.Greater(t, textWidth("longer text"), textWidth("short"))
}
