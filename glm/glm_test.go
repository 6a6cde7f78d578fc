package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityMat4(t *testing.T) {
	id := IdentityMat4[float32]()
	v := Vec3f{1, 2, 3}

	assert.Equal(t, v, id.TransformVec3(v))
	assert.Equal(t, v, id.ProjectPoint(v))
}

func TestRotationYMat4(t *testing.T) {
	rot := RotationYMat4[float64](math.Pi / 2)

	// a quarter turn about y maps +x onto -z
	got := rot.TransformVec3(Vec3[float64]{1, 0, 0})
	assert.InDelta(t, 0, got[0], 1e-9)
	assert.InDelta(t, 0, got[1], 1e-9)
	assert.InDelta(t, -1, got[2], 1e-9)
}

func TestRotationYMat4FullTurn(t *testing.T) {
	rot := RotationYMat4[float64](2 * math.Pi)

	v := Vec3[float64]{0.5, -0.25, 0.75}
	got := rot.TransformVec3(v)

	assert.InDelta(t, v[0], got[0], 1e-9)
	assert.InDelta(t, v[1], got[1], 1e-9)
	assert.InDelta(t, v[2], got[2], 1e-9)
}

func TestOrthographicMat4(t *testing.T) {
	ortho := OrthographicMat4[float64](-1, 1, -1, 1, -1.5, 1.5)

	// the box center lands at the center of clip space
	center := ortho.ProjectPoint(Vec3[float64]{0, 0, 0})
	assert.InDelta(t, 0, center[0], 1e-9)
	assert.InDelta(t, 0, center[1], 1e-9)
	assert.InDelta(t, 0.5, center[2], 1e-9)

	// near plane maps to z=0, far plane to z=1
	near := ortho.ProjectPoint(Vec3[float64]{0, 0, -1.5})
	assert.InDelta(t, 1, near[2], 1e-9)

	far := ortho.ProjectPoint(Vec3[float64]{0, 0, 1.5})
	assert.InDelta(t, 0, far[2], 1e-9)
}

func TestMat4Mul(t *testing.T) {
	id := IdentityMat4[float32]()
	rot := RotationYMat4[float32](0.7)

	assert.Equal(t, rot, id.Mul(rot))
	assert.Equal(t, rot, rot.Mul(id))
}

func TestVecOps(t *testing.T) {
	a := Vec3f{1, 2, 3}
	b := Vec3f{4, 5, 6}

	assert.Equal(t, Vec3f{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3f{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, Vec3f{2, 4, 6}, a.MulScalar(2))
	assert.Equal(t, Vec4f{1, 2, 3, 1}, a.Extend(1))
}
