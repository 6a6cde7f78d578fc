package gpu

import (
	"math"
	"unsafe"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/wgpu-steps/glm"
)

// Vertex is the layout shared by the triangle examples, one position
// with a color and texture coordinates.
type Vertex struct {
	Position  glm.Vec3f
	Color     glm.Vec3f
	TexCoords glm.Vec2f
}

func VertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         uint64(unsafe.Offsetof(Vertex{}.Position)),
				ShaderLocation: 0,
			},
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         uint64(unsafe.Offsetof(Vertex{}.Color)),
				ShaderLocation: 1,
			},
			{
				Format:         wgpu.VertexFormatFloat32x2,
				Offset:         uint64(unsafe.Offsetof(Vertex{}.TexCoords)),
				ShaderLocation: 2,
			},
		},
	}
}

// TriangleVertices is the canonical triangle with red, green and blue
// corners. Texture coordinates map the triangle onto the upper left
// half of the texture.
func TriangleVertices() []Vertex {
	return []Vertex{
		{
			Position:  glm.Vec3f{0.0, 0.5, 0.0},
			Color:     glm.Vec3f{1.0, 0.0, 0.0},
			TexCoords: glm.Vec2f{0.0, 0.0},
		},
		{
			Position:  glm.Vec3f{-0.5, -0.5, 0.0},
			Color:     glm.Vec3f{0.0, 1.0, 0.0},
			TexCoords: glm.Vec2f{0.0, 1.0},
		},
		{
			Position:  glm.Vec3f{0.5, -0.5, 0.0},
			Color:     glm.Vec3f{0.0, 0.0, 1.0},
			TexCoords: glm.Vec2f{1.0, 1.0},
		},
	}
}

// RotatedTriangle rotates the canonical triangle around the y axis by
// total seconds times pi and projects it with an orthographic camera
// that keeps the triangle within the depth range while it spins.
func RotatedTriangle(total float32) []Vertex {
	rotation := glm.RotationYMat4[float32](total * math.Pi)
	ortho := glm.OrthographicMat4[float32](-1, 1, -1, 1, -1.5, 1.5)

	vertices := TriangleVertices()
	for i := range vertices {
		rotated := rotation.TransformVec3(vertices[i].Position)
		vertices[i].Position = ortho.ProjectPoint(rotated)
	}

	return vertices
}

// DepthVertex only carries a position, used by the fullscreen passes.
type DepthVertex struct {
	Position glm.Vec3f
}

func DepthVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(DepthVertex{})),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Format:         wgpu.VertexFormatFloat32x3,
				Offset:         0,
				ShaderLocation: 0,
			},
		},
	}
}

// FullscreenVertices covers the whole screen with two triangles.
func FullscreenVertices() []DepthVertex {
	return []DepthVertex{
		{Position: glm.Vec3f{-1.0, 1.0, 0.0}},
		{Position: glm.Vec3f{-1.0, -1.0, 0.0}},
		{Position: glm.Vec3f{1.0, -1.0, 0.0}},
		{Position: glm.Vec3f{1.0, -1.0, 0.0}},
		{Position: glm.Vec3f{1.0, 1.0, 0.0}},
		{Position: glm.Vec3f{-1.0, 1.0, 0.0}},
	}
}
