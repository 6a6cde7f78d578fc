package glass

import "github.com/oliverbestmann/webgpu/wgpu"

// Window abstracts the platform window the surface is created from. The
// window owns the native handle; the surface derived from the descriptor
// must not outlive it, which is why rendering always runs inside Run.
type Window interface {
	// Size returns the current framebuffer size in pixels.
	Size() (uint32, uint32)

	// SurfaceDescriptor describes the native window for surface creation.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// SetTitle replaces the window title.
	SetTitle(title string)

	// Run drives the event loop, calling frame once per iteration until
	// the window is closed or frame returns an error.
	Run(frame func(input *InputState) error) error

	// Terminate destroys the window and releases platform resources.
	Terminate()
}
