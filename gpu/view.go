package gpu

import (
	"log/slog"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// View owns the surface configuration and, when enabled, the depth
// texture matching the surface size. Configure must be called before the
// first frame and again whenever the window size changes.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration

	// recreated on every Configure, same size as the surface
	depthTexture *Texture

	depth bool
}

func NewView(ctx *Context, depth bool) *View {
	v := &View{Context: ctx, depth: depth}

	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	format := pickSurfaceFormat(caps.Formats)
	presentMode := pickPresentMode(caps.PresentModes)

	slog.Info("Surface configuration chosen",
		slog.Any("format", format),
		slog.Any("presentMode", presentMode))

	v.surfaceConfig = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		PresentMode: presentMode,
		AlphaMode:   caps.AlphaModes[0],

		// try to reduce input latency
		DesiredMaximumFrameLatency: 1,
	}

	return v
}

// pickSurfaceFormat prefers srgb 8 bit formats, then float formats,
// falling back to whatever the surface reports first.
func pickSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	score := func(format wgpu.TextureFormat) int {
		switch format {
		case wgpu.TextureFormatBGRA8UnormSrgb:
			return 10
		case wgpu.TextureFormatRGBA8UnormSrgb:
			return 9
		case wgpu.TextureFormatRGBA16Float:
			return 8
		case wgpu.TextureFormatRGBA32Float:
			return 7
		default:
			return 0
		}
	}

	best := formats[0]
	for _, format := range formats[1:] {
		if score(format) > score(best) {
			best = format
		}
	}

	return best
}

func pickPresentMode(modes []wgpu.PresentMode) wgpu.PresentMode {
	score := func(mode wgpu.PresentMode) int {
		switch mode {
		case wgpu.PresentModeMailbox:
			return 10
		case wgpu.PresentModeFifo:
			return 9
		case wgpu.PresentModeImmediate:
			return 8
		default:
			return 0
		}
	}

	best := modes[0]
	for _, mode := range modes[1:] {
		if score(mode) > score(best) {
			best = mode
		}
	}

	return best
}

func (v *View) Format() wgpu.TextureFormat {
	return v.surfaceConfig.Format
}

func (v *View) IsSrgb() bool {
	switch v.surfaceConfig.Format {
	case wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatRGBA8UnormSrgb:
		return true
	default:
		return false
	}
}

func (v *View) Size() (uint32, uint32) {
	return v.surfaceConfig.Width, v.surfaceConfig.Height
}

func (v *View) DepthTexture() *Texture {
	return v.depthTexture
}

// Configure applies the surface configuration for the given size and
// recreates the depth texture to match.
func (v *View) Configure(width, height uint32) {
	v.surfaceConfig.Width = width
	v.surfaceConfig.Height = height
	v.Surface.Configure(v.Device, v.surfaceConfig)

	if v.depth {
		if v.depthTexture != nil {
			v.depthTexture.Release()
			v.depthTexture = nil
		}

		v.depthTexture = NewDepthTexture(v.Context, width, height)
	}
}

func (v *View) Release() {
	if v.depthTexture != nil {
		v.depthTexture.Release()
		v.depthTexture = nil
	}
}
