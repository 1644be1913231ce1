package renderer

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-fly/engine/camera"
	"github.com/Carmen-Shannon/oxy-fly/engine/window"
	"github.com/sirupsen/logrus"
)

// horizonSource is the horizon shader body. It expects CameraUniform to be declared before it.
//
//go:embed assets/horizon.wgsl
var horizonSource string

// HorizonShaderSource returns the complete WGSL source of the horizon pass: the camera
// uniform struct followed by the horizon shader.
//
// Returns:
//   - string: the WGSL source
func HorizonShaderSource() string {
	return camera.GPUCameraUniformSource + "\n" + horizonSource
}

// renderer implements the Renderer interface.
type renderer struct {
	mu      *sync.Mutex
	backend RendererBackend
	logger  logrus.FieldLogger

	backendType          RendererBackendType
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode

	frames uint64
}

// Renderer draws the world as seen through a camera. Each frame it uploads the camera's
// GPU uniform and draws a full-screen horizon pass: sky above the world XZ plane, ground
// with a reference grid below it, and a bright line along the horizon. The pass shows
// orientation and translation of a fly camera without any scene geometry.
type Renderer interface {
	// Render draws one frame from the point of view of cam.
	//
	// Parameters:
	//   - cam: the camera to render from
	//
	// Returns:
	//   - error: error if the frame could not be acquired; the frame is skipped
	Render(cam camera.Camera) error

	// Resize reconfigures the surface for a new framebuffer size.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	Resize(width, height int)

	// SetPresentMode changes how frames are presented. Takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// Frames returns the number of frames presented so far.
	//
	// Returns:
	//   - uint64: presented frame count
	Frames() uint64

	// Release frees all GPU resources. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing into w's surface and compiles the horizon pipeline.
// Panics if the GPU device or the pipeline cannot be created.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - w: the window providing the surface and initial size
//   - options: functional options for renderer configuration
//
// Returns:
//   - Renderer: the initialised renderer
func NewRenderer(backendType RendererBackendType, w window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		logger:      logrus.StandardLogger(),
		backendType: backendType,
	}

	for _, opt := range options {
		opt(r)
	}
	r.logger = r.logger.WithField("component", "renderer")

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.ConfigureSurface(w.Width(), w.Height())

	var u camera.GPUCameraUniform
	if err := r.backend.RegisterFullscreenPipeline("Horizon", HorizonShaderSource(), uint64(u.Size())); err != nil {
		panic(err)
	}
	return r
}

func (r *renderer) Render(cam camera.Camera) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := cam.GPUUniform()
	r.backend.WriteUniform(u.Marshal())

	if err := r.backend.BeginFrame(); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	r.backend.DrawFullscreen()
	r.backend.EndFrame()
	r.backend.Present()
	r.frames++
	return nil
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
	r.logger.WithFields(logrus.Fields{"width": width, "height": height}).Debug("surface resized")
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
}
