package gpu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oliverbestmann/wgpu-steps/glm"
)

func TestRectangleFromPointsNormalizes(t *testing.T) {
	r := RectangleFromPoints(glm.Vec2f{4, 1}, glm.Vec2f{1, 3})

	require.Equal(t, glm.Vec2f{1, 1}, r.Min)
	require.Equal(t, glm.Vec2f{4, 3}, r.Max)
}

func TestRectangleSize(t *testing.T) {
	r := RectangleFromSize(glm.Vec2u{10, 20}, glm.Vec2u{30, 40})

	require.Equal(t, uint32(30), r.Width())
	require.Equal(t, uint32(40), r.Height())

	x, y, w, h := r.XYWH()
	require.Equal(t, uint32(10), x)
	require.Equal(t, uint32(20), y)
	require.Equal(t, uint32(30), w)
	require.Equal(t, uint32(40), h)
}

func TestRectangleContains(t *testing.T) {
	outer := RectangleFromSize(glm.Vec2u{0, 0}, glm.Vec2u{100, 100})
	inner := RectangleFromSize(glm.Vec2u{10, 10}, glm.Vec2u{50, 50})

	require.True(t, outer.Contains(inner))
	require.False(t, inner.Contains(outer))
}

func TestRectangleUnion(t *testing.T) {
	a := RectangleFromSize(glm.Vec2f{0, 0}, glm.Vec2f{10, 10})
	b := RectangleFromSize(glm.Vec2f{20, 5}, glm.Vec2f{10, 10})

	u := a.Union(b)
	require.Equal(t, glm.Vec2f{0, 0}, u.Min)
	require.Equal(t, glm.Vec2f{30, 15}, u.Max)
}
