package gpu

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	_ "image/png"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// Texture wraps a wgpu.Texture together with its identity view and the
// sampler the examples bind alongside it.
type Texture struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	sampler *wgpu.Sampler

	format wgpu.TextureFormat
	width  uint32
	height uint32
}

type TextureOptions struct {
	Label  string
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32
	Usage  wgpu.TextureUsage

	// Sampler to create for the texture. Nil means no sampler.
	Sampler *wgpu.SamplerDescriptor
}

func NewTexture(ctx *Context, opts TextureOptions) *Texture {
	texture := ctx.CreateTexture(&wgpu.TextureDescriptor{
		Label: opts.Label,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        opts.Format,
		Usage:         opts.Usage,
	})

	t := &Texture{
		texture: texture,
		view:    texture.CreateView(nil),
		format:  opts.Format,
		width:   opts.Width,
		height:  opts.Height,
	}

	if opts.Sampler != nil {
		t.sampler = CachedSampler(ctx.Device, *opts.Sampler)
	}

	return t
}

func (t *Texture) View() *wgpu.TextureView {
	return t.view
}

func (t *Texture) Sampler() *wgpu.Sampler {
	return t.sampler
}

func (t *Texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *Texture) Width() uint32 {
	return t.width
}

func (t *Texture) Height() uint32 {
	return t.height
}

// WritePixels uploads tightly packed rgba pixels covering the whole
// texture.
func (t *Texture) WritePixels(ctx *Context, pixels []byte) error {
	if want := int(t.width) * int(t.height) * 4; len(pixels) != want {
		return fmt.Errorf("pixel data is %d bytes, texture needs %d", len(pixels), want)
	}

	dest := &wgpu.TexelCopyTextureInfo{
		Texture:  t.texture,
		MipLevel: 0,
		Origin:   wgpu.Origin3D{},
		Aspect:   wgpu.TextureAspectAll,
	}

	layout := &wgpu.TexelCopyBufferLayout{
		Offset:       0,
		BytesPerRow:  t.width * 4,
		RowsPerImage: t.height,
	}

	size := &wgpu.Extent3D{
		Width:              t.width,
		Height:             t.height,
		DepthOrArrayLayers: 1,
	}

	ctx.WriteTexture(dest, pixels, layout, size)

	return nil
}

// The sampler is cached, it is not released here.
func (t *Texture) Release() {
	if t.view != nil {
		t.view.Release()
		t.view = nil
	}

	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}

var diffuseSampler = wgpu.SamplerDescriptor{
	Label:         "DiffuseSampler",
	AddressModeU:  wgpu.AddressModeRepeat,
	AddressModeV:  wgpu.AddressModeRepeat,
	AddressModeW:  wgpu.AddressModeRepeat,
	MagFilter:     wgpu.FilterModeLinear,
	MinFilter:     wgpu.FilterModeLinear,
	MipmapFilter:  wgpu.MipmapFilterModeNearest,
	LodMaxClamp:   1,
	MaxAnisotropy: 1,
}

var clampSampler = wgpu.SamplerDescriptor{
	Label:         "ClampSampler",
	AddressModeU:  wgpu.AddressModeClampToEdge,
	AddressModeV:  wgpu.AddressModeClampToEdge,
	AddressModeW:  wgpu.AddressModeClampToEdge,
	MagFilter:     wgpu.FilterModeLinear,
	MinFilter:     wgpu.FilterModeLinear,
	MipmapFilter:  wgpu.MipmapFilterModeNearest,
	LodMaxClamp:   1,
	MaxAnisotropy: 1,
}

// DecodeTexture decodes an encoded image (png by import, more via the
// caller's image decoder imports) and uploads it as an rgba texture.
func DecodeTexture(ctx *Context, buf []byte, label string) (*Texture, error) {
	src, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	return NewTextureFromImage(ctx, src, label)
}

func NewTextureFromImage(ctx *Context, src image.Image, label string) (*Texture, error) {
	rgba := asRGBA(src)

	iw, ih := rgba.Bounds().Dx(), rgba.Bounds().Dy()

	t := NewTexture(ctx, TextureOptions{
		Label:   label,
		Format:  wgpu.TextureFormatRGBA8UnormSrgb,
		Width:   uint32(iw),
		Height:  uint32(ih),
		Usage:   wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
		Sampler: &diffuseSampler,
	})

	if err := t.WritePixels(ctx, rgba.Pix); err != nil {
		t.Release()
		return nil, err
	}

	return t, nil
}

func asRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Stride == rgba.Bounds().Dx()*4 {
		return rgba
	}

	rgba := image.NewRGBA(image.Rect(0, 0, src.Bounds().Dx(), src.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)

	return rgba
}

// NewDepthTexture creates a Depth32Float texture that can be both a
// render attachment and sampled by a depth visualization pass.
func NewDepthTexture(ctx *Context, width, height uint32) *Texture {
	sampler := clampSampler
	sampler.Label = "DepthSampler"

	return NewTexture(ctx, TextureOptions{
		Label:   "DepthTexture",
		Format:  wgpu.TextureFormatDepth32Float,
		Width:   width,
		Height:  height,
		Usage:   wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding,
		Sampler: &sampler,
	})
}

// NewFramebufferTexture creates the offscreen color target the final
// examples render into before the present pass samples it.
func NewFramebufferTexture(ctx *Context, width, height uint32, format wgpu.TextureFormat) *Texture {
	sampler := clampSampler
	sampler.Label = "FramebufferSampler"

	return NewTexture(ctx, TextureOptions{
		Label:   "Framebuffer",
		Format:  format,
		Width:   width,
		Height:  height,
		Usage:   wgpu.TextureUsageRenderAttachment | wgpu.TextureUsageTextureBinding,
		Sampler: &sampler,
	})
}
