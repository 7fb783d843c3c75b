package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/mandelview/input"
	"github.com/gogpu/mandelview/internal/logging"
	"github.com/gogpu/mandelview/render"
	"github.com/gogpu/mandelview/screenshot"
)

var (
	_ render.Surface         = (*Window)(nil)
	_ screenshot.PixelReader = (*Window)(nil)
	_ input.KeyState         = (*Window)(nil)
	_ render.Device          = (*Device)(nil)
)

// DefaultTitle is the window title used when WithTitle is not given.
const DefaultTitle = "mandelview"

// Init initializes GLFW. It must be called from the main thread before
// NewWindow, and paired with Terminate.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrInit, err)
	}
	return nil
}

// Terminate releases GLFW. Every window must be closed first.
func Terminate() {
	glfw.Terminate()
}

// WindowOption configures NewWindow.
type WindowOption func(*windowOptions)

type windowOptions struct {
	title     string
	resizable bool
	vsync     bool
}

// WithTitle sets the window title.
func WithTitle(title string) WindowOption {
	return func(o *windowOptions) {
		o.title = title
	}
}

// WithResizable controls whether the user can resize the window.
// Windows are resizable by default.
func WithResizable(resizable bool) WindowOption {
	return func(o *windowOptions) {
		o.resizable = resizable
	}
}

// WithVSync controls whether buffer swaps wait for the display refresh.
// Enabled by default.
func WithVSync(vsync bool) WindowOption {
	return func(o *windowOptions) {
		o.vsync = vsync
	}
}

// Window is a GLFW window with a current OpenGL 4.1 core context.
//
// Window implements render.Surface, screenshot.PixelReader and
// input.KeyState. It is not safe for concurrent use.
type Window struct {
	win *glfw.Window
}

// NewWindow opens a width x height window and makes its context current
// on the calling thread.
func NewWindow(width, height int, opts ...WindowOption) (*Window, error) {
	o := windowOptions{title: DefaultTitle, resizable: true, vsync: true}
	for _, opt := range opts {
		opt(&o)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfwBool(o.resizable))

	win, err := glfw.CreateWindow(width, height, o.title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindow, err)
	}

	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, fmt.Errorf("%w: %w", ErrContext, err)
	}
	if o.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	logging.Logger().Info("opengl: context created",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"width", width, "height", height)

	return &Window{win: win}, nil
}

// Device returns a device for this window's context.
func (w *Window) Device() *Device {
	return &Device{}
}

// FramebufferSize returns the drawable size in pixels. It is zero while
// the window is minimized and after Close.
func (w *Window) FramebufferSize() (width, height int) {
	if w.win == nil {
		return 0, 0
	}
	return w.win.GetFramebufferSize()
}

// Clear sets the viewport to the whole framebuffer and clears it to c.
func (w *Window) Clear(c render.Color) {
	width, height := w.FramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height)) //nolint:gosec // framebuffer dimensions fit int32
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	if w.win == nil {
		return
	}
	w.win.SwapBuffers()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win == nil || w.win.ShouldClose()
}

// RequestClose marks the window for closing.
func (w *Window) RequestClose() {
	if w.win != nil {
		w.win.SetShouldClose(true)
	}
}

// Pressed reports whether k is held. Key repeat counts as held.
func (w *Window) Pressed(k input.Key) bool {
	if w.win == nil {
		return false
	}
	g, ok := glfwKey(k)
	if !ok {
		return false
	}
	return w.win.GetKey(g) != glfw.Release
}

// ReadPixels copies the displayed (front) color buffer into dst as packed
// RGBA words, bottom row first. dst must hold width*height*4 bytes.
func (w *Window) ReadPixels(dst []byte) error {
	if w.win == nil {
		return ErrClosed
	}
	width, height := w.FramebufferSize()
	if len(dst) < width*height*4 {
		return fmt.Errorf("opengl: read buffer holds %d bytes, need %d", len(dst), width*height*4)
	}
	if len(dst) == 0 {
		return nil
	}

	gl.ReadBuffer(gl.FRONT)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), //nolint:gosec // framebuffer dimensions fit int32
		gl.RGBA, gl.UNSIGNED_INT_8_8_8_8_REV, gl.Ptr(&dst[0]))
	gl.ReadBuffer(gl.BACK)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl: glReadPixels: error 0x%04x", code)
	}
	return nil
}

// Close destroys the window and its context. Safe to call more than once.
func (w *Window) Close() error {
	if w.win == nil {
		return nil
	}
	w.win.Destroy()
	w.win = nil
	logging.Logger().Debug("opengl: window destroyed")
	return nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
