package glm

import "math"

// Mat4 is a 4x4 matrix in column major order, matching the memory
// layout wgsl expects for a mat4x4 uniform.
type Mat4[T float] [16]T

func IdentityMat4[T float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func RotationYMat4[T float](angle T) Mat4[T] {
	s := T(math.Sin(float64(angle)))
	c := T(math.Cos(float64(angle)))

	return Mat4[T]{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// OrthographicMat4 builds a right handed orthographic projection that
// maps the given box to wgpu clip space (z in [0, 1]).
func OrthographicMat4[T float](left, right, bottom, top, near, far T) Mat4[T] {
	rcpWidth := 1 / (right - left)
	rcpHeight := 1 / (top - bottom)
	r := 1 / (near - far)

	return Mat4[T]{
		rcpWidth + rcpWidth, 0, 0, 0,
		0, rcpHeight + rcpHeight, 0, 0,
		0, 0, r, 0,
		-(left + right) * rcpWidth, -(top + bottom) * rcpHeight, r * near, 1,
	}
}

func (lhs Mat4[T]) Mul(rhs Mat4[T]) Mat4[T] {
	var res Mat4[T]

	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum T
			for k := 0; k < 4; k++ {
				sum += lhs[k*4+row] * rhs[col*4+k]
			}
			res[col*4+row] = sum
		}
	}

	return res
}

// TransformVec3 applies the matrix to a direction vector, ignoring
// the translation column.
func (lhs Mat4[T]) TransformVec3(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0]*v[0] + lhs[4]*v[1] + lhs[8]*v[2],
		lhs[1]*v[0] + lhs[5]*v[1] + lhs[9]*v[2],
		lhs[2]*v[0] + lhs[6]*v[1] + lhs[10]*v[2],
	}
}

// ProjectPoint applies the matrix to a point and performs the
// perspective divide.
func (lhs Mat4[T]) ProjectPoint(v Vec3[T]) Vec3[T] {
	x := lhs[0]*v[0] + lhs[4]*v[1] + lhs[8]*v[2] + lhs[12]
	y := lhs[1]*v[0] + lhs[5]*v[1] + lhs[9]*v[2] + lhs[13]
	z := lhs[2]*v[0] + lhs[6]*v[1] + lhs[10]*v[2] + lhs[14]
	w := lhs[3]*v[0] + lhs[7]*v[1] + lhs[11]*v[2] + lhs[15]

	if w != 0 && w != 1 {
		rcp := 1 / w
		return Vec3[T]{x * rcp, y * rcp, z * rcp}
	}

	return Vec3[T]{x, y, z}
}

type Mat4f = Mat4[float32]
