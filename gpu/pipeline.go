package gpu

import (
	"errors"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var ErrNoVertexShader = errors.New("pipeline builder needs a vertex shader")

type shaderEntry struct {
	module     *wgpu.ShaderModule
	entryPoint string
}

// PipelineBuilder collects the pieces of a render pipeline and fills
// in sensible defaults for everything the caller does not set.
type PipelineBuilder struct {
	device *wgpu.Device

	label            string
	bindGroupLayouts []*wgpu.BindGroupLayout
	vertexShader     *shaderEntry
	fragmentShader   *shaderEntry
	vertexBuffers    []wgpu.VertexBufferLayout
	colorTargets     []wgpu.ColorTargetState
	primitive        *wgpu.PrimitiveState
	depthStencil     *wgpu.DepthStencilState
	multisample      *wgpu.MultisampleState
}

func NewPipelineBuilder(dev *wgpu.Device) *PipelineBuilder {
	return &PipelineBuilder{device: dev}
}

func (b *PipelineBuilder) Label(label string) *PipelineBuilder {
	b.label = label
	return b
}

func (b *PipelineBuilder) BindGroupLayout(layout *wgpu.BindGroupLayout) *PipelineBuilder {
	b.bindGroupLayouts = append(b.bindGroupLayouts, layout)
	return b
}

func (b *PipelineBuilder) VertexShader(shader *wgpu.ShaderModule, entryPoint string) *PipelineBuilder {
	b.vertexShader = &shaderEntry{module: shader, entryPoint: entryPoint}
	return b
}

func (b *PipelineBuilder) FragmentShader(shader *wgpu.ShaderModule, entryPoint string) *PipelineBuilder {
	b.fragmentShader = &shaderEntry{module: shader, entryPoint: entryPoint}
	return b
}

func (b *PipelineBuilder) VertexBufferLayout(layout wgpu.VertexBufferLayout) *PipelineBuilder {
	b.vertexBuffers = append(b.vertexBuffers, layout)
	return b
}

func (b *PipelineBuilder) ColorTarget(target wgpu.ColorTargetState) *PipelineBuilder {
	b.colorTargets = append(b.colorTargets, target)
	return b
}

func (b *PipelineBuilder) PrimitiveState(state wgpu.PrimitiveState) *PipelineBuilder {
	b.primitive = &state
	return b
}

func (b *PipelineBuilder) DepthStencilState(state *wgpu.DepthStencilState) *PipelineBuilder {
	b.depthStencil = state
	return b
}

func (b *PipelineBuilder) MultisampleState(state wgpu.MultisampleState) *PipelineBuilder {
	b.multisample = &state
	return b
}

// DefaultColorTarget adds an opaque color target in the given format.
func (b *PipelineBuilder) DefaultColorTarget(format wgpu.TextureFormat) *PipelineBuilder {
	return b.ColorTarget(wgpu.ColorTargetState{
		Format:    format,
		Blend:     &wgpu.BlendStateReplace,
		WriteMask: wgpu.ColorWriteMaskAll,
	})
}

// AlphaBlendColorTarget adds a color target with standard alpha
// blending, used by the overlay.
func (b *PipelineBuilder) AlphaBlendColorTarget(format wgpu.TextureFormat) *PipelineBuilder {
	return b.ColorTarget(wgpu.ColorTargetState{
		Format:    format,
		Blend:     &wgpu.BlendStateAlphaBlending,
		WriteMask: wgpu.ColorWriteMaskAll,
	})
}

// DefaultDepthStencilState enables depth testing against a
// Depth32Float attachment.
func (b *PipelineBuilder) DefaultDepthStencilState() *PipelineBuilder {
	return b.DepthStencilState(&wgpu.DepthStencilState{
		Format:            wgpu.TextureFormatDepth32Float,
		DepthWriteEnabled: wgpu.OptionalBoolTrue,
		DepthCompare:      wgpu.CompareFunctionLess,
		StencilFront: wgpu.StencilFaceState{
			Compare: wgpu.CompareFunctionAlways,
		},
		StencilBack: wgpu.StencilFaceState{
			Compare: wgpu.CompareFunctionAlways,
		},
	})
}

// DepthStencilDisabled keeps the depth attachment bound but neither
// tests nor writes it.
func (b *PipelineBuilder) DepthStencilDisabled() *PipelineBuilder {
	return b.DepthStencilState(&wgpu.DepthStencilState{
		Format:            wgpu.TextureFormatDepth32Float,
		DepthWriteEnabled: wgpu.OptionalBoolFalse,
		DepthCompare:      wgpu.CompareFunctionAlways,
		StencilFront: wgpu.StencilFaceState{
			Compare: wgpu.CompareFunctionAlways,
		},
		StencilBack: wgpu.StencilFaceState{
			Compare: wgpu.CompareFunctionAlways,
		},
	})
}

func (b *PipelineBuilder) DefaultMultisampleState() *PipelineBuilder {
	return b.MultisampleState(wgpu.MultisampleState{
		Count:                  1,
		Mask:                   0xFFFFFFFF,
		AlphaToCoverageEnabled: false,
	})
}

func (b *PipelineBuilder) DefaultPrimitiveState() *PipelineBuilder {
	return b.PrimitiveState(wgpu.PrimitiveState{
		Topology:  wgpu.PrimitiveTopologyTriangleList,
		FrontFace: wgpu.FrontFaceCCW,
		CullMode:  wgpu.CullModeBack,
	})
}

func (b *PipelineBuilder) Build() (*wgpu.RenderPipeline, error) {
	if b.vertexShader == nil {
		return nil, ErrNoVertexShader
	}

	desc := &wgpu.RenderPipelineDescriptor{
		Label: b.label,
		Vertex: wgpu.VertexState{
			Module:     b.vertexShader.module,
			EntryPoint: b.vertexShader.entryPoint,
			Buffers:    b.vertexBuffers,
		},
		DepthStencil: b.depthStencil,
	}

	if len(b.bindGroupLayouts) > 0 {
		desc.Layout = b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
			Label:            b.label,
			BindGroupLayouts: b.bindGroupLayouts,
		})
	}

	if b.fragmentShader != nil {
		desc.Fragment = &wgpu.FragmentState{
			Module:     b.fragmentShader.module,
			EntryPoint: b.fragmentShader.entryPoint,
			Targets:    b.colorTargets,
		}
	}

	if b.primitive != nil {
		desc.Primitive = *b.primitive
	} else {
		desc.Primitive = wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		}
	}

	if b.multisample != nil {
		desc.Multisample = *b.multisample
	} else {
		desc.Multisample = wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		}
	}

	return b.device.CreateRenderPipeline(desc), nil
}
