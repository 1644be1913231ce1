package renderer

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-fly/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/sirupsen/logrus"
)

type fakeBackend struct {
	calls    []string
	uniform  []byte
	beginErr error
	width    int
	height   int
	mode     PresentMode
}

func (b *fakeBackend) ConfigureSurface(width, height int) {
	b.calls = append(b.calls, "configure")
	b.width, b.height = width, height
}

func (b *fakeBackend) SetPresentMode(mode PresentMode) { b.mode = mode }

func (b *fakeBackend) RegisterFullscreenPipeline(label, source string, uniformSize uint64) error {
	b.calls = append(b.calls, "register")
	return nil
}

func (b *fakeBackend) WriteUniform(data []byte) {
	b.calls = append(b.calls, "write")
	b.uniform = append([]byte(nil), data...)
}

func (b *fakeBackend) BeginFrame() error {
	b.calls = append(b.calls, "begin")
	return b.beginErr
}

func (b *fakeBackend) DrawFullscreen() { b.calls = append(b.calls, "draw") }
func (b *fakeBackend) EndFrame() { b.calls = append(b.calls, "end") }
func (b *fakeBackend) Present() { b.calls = append(b.calls, "present") }
func (b *fakeBackend) Release() { b.calls = append(b.calls, "release") }

func newTestRenderer(b *fakeBackend) *renderer {
	return &renderer{
		mu:      &sync.Mutex{},
		backend: b,
		logger:  logrus.New(),
	}
}

func TestRenderUploadsUniformThenDraws(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(b)
	cam := camera.NewCamera(camera.WithPosition(0, 0, 600))

	if err := r.Render(cam); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := []string{"write", "begin", "draw", "end", "present"}
	if strings.Join(b.calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", b.calls, want)
	}
	u := cam.GPUUniform()
	if string(b.uniform) != string(u.Marshal()) {
		t.Error("uploaded uniform does not match the camera's GPU uniform")
	}
	if r.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", r.Frames())
	}
}

func TestRenderSkipsFrameWhenSurfaceUnavailable(t *testing.T) {
	surfaceErr := errors.New("surface lost")
	b := &fakeBackend{beginErr: surfaceErr}
	r := newTestRenderer(b)

	err := r.Render(camera.NewCamera())
	if !errors.Is(err, surfaceErr) {
		t.Fatalf("Render error = %v, want wrapped %v", err, surfaceErr)
	}
	for _, c := range b.calls {
		if c == "draw" || c == "present" {
			t.Errorf("unexpected %q after failed BeginFrame", c)
		}
	}
	if r.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", r.Frames())
	}
}

func TestResizeAndPresentModeReachBackend(t *testing.T) {
	b := &fakeBackend{}
	r := newTestRenderer(b)

	r.SetPresentMode(PresentModeVSync)
	r.Resize(1280, 720)
	r.Release()

	if b.width != 1280 || b.height != 720 {
		t.Errorf("configured %dx%d, want 1280x720", b.width, b.height)
	}
	if b.mode != PresentModeVSync {
		t.Errorf("mode = %v, want vsync", b.mode)
	}
	if b.calls[len(b.calls)-1] != "release" {
		t.Errorf("last call = %q, want release", b.calls[len(b.calls)-1])
	}
}

func TestHorizonShaderSource(t *testing.T) {
	src := HorizonShaderSource()
	for _, want := range []string{"struct CameraUniform", "fn " + vertexEntry, "fn " + fragmentEntry, "var<uniform> camera: CameraUniform"} {
		if !strings.Contains(src, want) {
			t.Errorf("shader source missing %q", want)
		}
	}
	if strings.Index(src, "struct CameraUniform") > strings.Index(src, "var<uniform> camera") {
		t.Error("CameraUniform must be declared before it is used")
	}
}

func TestPresentModeMapping(t *testing.T) {
	if got := wgpuPresentMode(PresentModeVSync); got != wgpu.PresentModeFifo {
		t.Errorf("vsync = %v, want Fifo", got)
	}
	if got := wgpuPresentMode(PresentModeUncapped); got != wgpu.PresentModeImmediate {
		t.Errorf("uncapped = %v, want Immediate", got)
	}
	if PresentModeVSync.String() != "vsync" || PresentModeUncapped.String() != "uncapped" {
		t.Error("unexpected PresentMode names")
	}
}
