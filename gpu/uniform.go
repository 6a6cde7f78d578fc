package gpu

import (
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/wgpu-steps/glm"
)

// UniformsData is the uniform block shared by the fullscreen shaders.
// Kept 16 byte aligned for the gpu.
type UniformsData struct {
	Resolution  glm.Vec2f
	SrgbSurface float32

	_ float32
}

// Uniforms owns the uniform buffer and its cpu side copy.
type Uniforms struct {
	Data   UniformsData
	Buffer *wgpu.Buffer
}

func NewUniforms(ctx *Context, view *View) *Uniforms {
	width, height := view.Size()

	data := UniformsData{
		Resolution:  glm.Vec2f{float32(width), float32(height)},
		SrgbSurface: boolToFloat(view.IsSrgb()),
	}

	buffer := ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "UniformsBuffer",
		Contents: AsByteSlice(&data),
		Usage:    wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})

	return &Uniforms{Data: data, Buffer: buffer}
}

// UpdateResolution writes a new resolution to the gpu, keeping the
// srgb flag as it was.
func (u *Uniforms) UpdateResolution(ctx *Context, width, height uint32) {
	u.Data.Resolution = glm.Vec2f{float32(width), float32(height)}
	ctx.WriteBuffer(u.Buffer, 0, AsByteSlice(&u.Data))
}

func (u *Uniforms) Release() {
	if u.Buffer != nil {
		u.Buffer.Release()
		u.Buffer = nil
	}
}

func boolToFloat(b bool) float32 {
	if b {
		return 1
	}

	return 0
}
