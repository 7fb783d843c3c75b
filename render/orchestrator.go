package render

import (
	"fmt"

	"github.com/gogpu/mandelview/internal/logging"
	"github.com/gogpu/mandelview/viewport"
)

// Option configures an Orchestrator.
type Option func(*options)

type options struct {
	clear Color
}

func defaultOptions() options {
	return options{clear: Black}
}

// WithClearColor sets the color the framebuffer is cleared to before the
// quad is drawn.
func WithClearColor(c Color) Option {
	return func(o *options) {
		o.clear = c
	}
}

// Orchestrator draws one frame per call to Draw. It owns the program and
// the quad; no other component touches them.
//
// An Orchestrator is not safe for concurrent use. All calls must come from
// the thread that owns the graphics context.
type Orchestrator struct {
	surface Surface
	program Program
	quad    Mesh
	opts    options
}

// New compiles src and uploads the full-screen quad. If any step fails,
// everything acquired so far is released before the error is returned.
func New(dev Device, surface Surface, src Sources, opts ...Option) (*Orchestrator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	program, err := dev.NewProgram(src)
	if err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}

	quad, err := dev.NewQuad(program, AttributePosition, QuadVertices, QuadIndices)
	if err != nil {
		program.Destroy()
		return nil, fmt.Errorf("create quad: %w", err)
	}

	logging.Logger().Debug("render: resources created",
		"vertex", src.VertexPath, "fragment", src.FragmentPath)

	return &Orchestrator{
		surface: surface,
		program: program,
		quad:    quad,
		opts:    o,
	}, nil
}

// Draw renders s and presents the frame. Every uniform is pushed on every
// call, changed or not. Draw after Close does nothing.
func (r *Orchestrator) Draw(s viewport.State) {
	if r.program == nil {
		return
	}
	w, h := r.surface.FramebufferSize()

	r.surface.Clear(r.opts.clear)

	r.program.Use()
	r.program.SetInt2(UniformResolution, int32(w), int32(h)) //nolint:gosec // window dimensions fit int32
	r.program.SetInt(UniformIterations, s.IterationLimit())
	r.program.SetDouble2(UniformCenter, s.Center.X, s.Center.Y)
	r.program.SetDouble(UniformZoom, s.Zoom)
	r.program.SetInt(UniformCrosshair, boolToInt(s.Crosshair))

	r.quad.DrawFan()
	r.program.Release()

	r.surface.SwapBuffers()
}

// Close releases the quad and then the program. Safe to call more than
// once; resources are released only on the first call.
func (r *Orchestrator) Close() error {
	if r.quad != nil {
		r.quad.Destroy()
		r.quad = nil
	}
	if r.program != nil {
		r.program.Destroy()
		r.program = nil
	}
	return nil
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
