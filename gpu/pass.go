package gpu

import (
	"errors"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var ErrNoColorView = errors.New("render pass needs a color attachment")

// PassBuilder begins render passes that always clear their color
// attachment to black, with an optional cleared depth attachment.
type PassBuilder struct {
	encoder *wgpu.CommandEncoder

	label      string
	colorView  *wgpu.TextureView
	depthView  *wgpu.TextureView
	depthClear float32
}

func NewPassBuilder(encoder *wgpu.CommandEncoder) *PassBuilder {
	return &PassBuilder{encoder: encoder}
}

func (b *PassBuilder) Label(label string) *PassBuilder {
	b.label = label
	return b
}

func (b *PassBuilder) ColorView(view *wgpu.TextureView) *PassBuilder {
	b.colorView = view
	return b
}

func (b *PassBuilder) Depth(view *wgpu.TextureView, clearValue float32) *PassBuilder {
	b.depthView = view
	b.depthClear = clearValue
	return b
}

func (b *PassBuilder) Begin() (*wgpu.RenderPassEncoder, error) {
	if b.colorView == nil {
		return nil, ErrNoColorView
	}

	desc := &wgpu.RenderPassDescriptor{
		Label: b.label,
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       b.colorView,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{A: 1},
			},
		},
	}

	if b.depthView != nil {
		desc.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: b.depthClear,
		}
	}

	return b.encoder.BeginRenderPass(desc), nil
}
