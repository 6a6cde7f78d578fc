package ui

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/oliverbestmann/webgpu/wgpu"

	"github.com/oliverbestmann/wgpu-steps/gpu"
)

//go:embed overlay.wgsl
var overlayShaderCode string

// Overlay renders debug panels on top of a frame. Labels and graphs
// are rasterized on the cpu, uploaded once per frame and composited
// with alpha blending.
type Overlay struct {
	ctx *gpu.Context

	pipelineCache *gpu.PipelineCache[overlayPipelineConfig]

	canvas  *canvas
	texture *gpu.Texture
}

func NewOverlay(ctx *gpu.Context) *Overlay {
	return &Overlay{
		ctx:           ctx,
		pipelineCache: gpu.NewPipelineCache[overlayPipelineConfig](ctx),
	}
}

// Begin starts a new overlay frame for the given target size.
func (o *Overlay) Begin(width, height uint32) {
	if o.canvas == nil ||
		o.canvas.img.Bounds().Dx() != int(width) ||
		o.canvas.img.Bounds().Dy() != int(height) {

		o.canvas = newCanvas(int(width), int(height))
	}

	o.canvas.reset()
}

func (o *Overlay) Label(text string) {
	o.canvas.label(text)
}

func (o *Overlay) Labelf(format string, args ...any) {
	o.canvas.label(fmt.Sprintf(format, args...))
}

// FrameGraph plots the frame time samples along the bottom of the
// screen, marking frames over the budget.
func (o *Overlay) FrameGraph(samples []time.Duration, budget time.Duration) {
	o.canvas.frameGraph(samples, budget)
}

// Draw uploads the rasterized overlay and composites it over the
// target texture.
func (o *Overlay) Draw(target *gpu.Texture) error {
	if err := o.upload(); err != nil {
		return fmt.Errorf("upload overlay: %w", err)
	}

	pipeline, err := o.pipelineCache.Get(overlayPipelineConfig{
		TargetFormat: target.Format(),
	})
	if err != nil {
		return fmt.Errorf("overlay pipeline: %w", err)
	}

	bindGroup := o.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Overlay.BindGroup",
		Layout: pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding:     0,
				TextureView: o.texture.View(),
			},
			{
				Binding: 1,
				Sampler: o.texture.Sampler(),
			},
		},
	})

	defer bindGroup.Release()

	encoder := o.ctx.CreateCommandEncoder(nil)
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Overlay.RenderPass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    target.View(),
				LoadOp:  wgpu.LoadOpLoad,
				StoreOp: wgpu.StoreOpStore,
			},
		},
	})

	pass.SetPipeline(pipeline.Pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.Draw(6, 1, 0, 0)
	pass.End()

	cmdBuffer := encoder.Finish(nil)
	defer cmdBuffer.Release()

	o.ctx.Submit(cmdBuffer)

	return nil
}

var overlaySampler = wgpu.SamplerDescriptor{
	Label:         "OverlaySampler",
	AddressModeU:  wgpu.AddressModeClampToEdge,
	AddressModeV:  wgpu.AddressModeClampToEdge,
	AddressModeW:  wgpu.AddressModeClampToEdge,
	MagFilter:     wgpu.FilterModeNearest,
	MinFilter:     wgpu.FilterModeNearest,
	MipmapFilter:  wgpu.MipmapFilterModeNearest,
	LodMaxClamp:   1,
	MaxAnisotropy: 1,
}

func (o *Overlay) upload() error {
	bounds := o.canvas.img.Bounds()
	width, height := uint32(bounds.Dx()), uint32(bounds.Dy())

	if o.texture == nil || o.texture.Width() != width || o.texture.Height() != height {
		if o.texture != nil {
			o.texture.Release()
		}

		o.texture = gpu.NewTexture(o.ctx, gpu.TextureOptions{
			Label:   "OverlayTexture",
			Format:  wgpu.TextureFormatRGBA8UnormSrgb,
			Width:   width,
			Height:  height,
			Usage:   wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
			Sampler: &overlaySampler,
		})
	}

	return o.texture.WritePixels(o.ctx, o.canvas.img.Pix)
}

func (o *Overlay) Release() {
	if o.texture != nil {
		o.texture.Release()
		o.texture = nil
	}
}

type overlayPipelineConfig struct {
	TargetFormat wgpu.TextureFormat
}

func (conf overlayPipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	shader := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "Overlay.Shader",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: overlayShaderCode},
	})

	defer shader.Release()

	return gpu.NewPipelineBuilder(dev).
		Label("Overlay.Pipeline").
		VertexShader(shader, "vs_main").
		FragmentShader(shader, "fs_main").
		AlphaBlendColorTarget(conf.TargetFormat).
		DefaultMultisampleState().
		Build()
}
