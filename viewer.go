package mandelview

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/mandelview/clock"
	"github.com/gogpu/mandelview/input"
	"github.com/gogpu/mandelview/viewport"
)

// Window is the part of the platform window the frame loop needs.
type Window interface {
	input.KeyState

	// PollEvents processes pending window events and refreshes key state.
	PollEvents()

	// ShouldClose reports whether the user closed the window.
	ShouldClose() bool
}

// Renderer draws one frame. *render.Orchestrator implements it.
type Renderer interface {
	Draw(s viewport.State)
}

// Capturer writes a screenshot and returns its path.
// *screenshot.Service implements it.
type Capturer interface {
	Capture(base string) (string, error)
}

// Viewer runs the interactive frame loop. It owns the view state, the
// input mapper and the frame clock; the window, renderer and capturer are
// borrowed and must outlive it.
//
// A Viewer is not safe for concurrent use. Run must be called from the
// thread that owns the graphics context.
type Viewer struct {
	window   Window
	renderer Renderer
	shots    Capturer

	mapper *input.Mapper
	clock  *clock.Clock
	out    io.Writer

	screenshotName string

	state  viewport.State
	dt     float64
	frames uint64
	quit   bool
}

// New returns a viewer drawing through r and capturing through shots.
// shots may be nil, in which case the screenshot key does nothing.
func New(win Window, r Renderer, shots Capturer, opts ...Option) *Viewer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.mapper == nil {
		o.mapper = input.NewMapper(input.DefaultBindings(), input.DefaultSpeeds())
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.out == nil {
		o.out = os.Stdout
	}

	return &Viewer{
		window:         win,
		renderer:       r,
		shots:          shots,
		mapper:         o.mapper,
		clock:          o.clock,
		out:            o.out,
		screenshotName: o.screenshotName,
		state:          o.state,
	}
}

// State returns the current view.
func (v *Viewer) State() viewport.State {
	return v.state
}

// Frames returns the number of frames drawn so far.
func (v *Viewer) Frames() uint64 {
	return v.frames
}

// Run executes frames until the window is closed, the quit key is pressed
// or ctx is canceled. Cancellation is checked once per frame and is a
// normal exit: Run returns nil. A final newline ends the status line.
func (v *Viewer) Run(ctx context.Context) error {
	log := Logger()
	log.Info("mandelview: viewer started",
		"centerX", v.state.Center.X, "centerY", v.state.Center.Y,
		"zoom", v.state.Zoom, "iterations", v.state.IterationLimit())

	defer func() {
		fmt.Fprintln(v.out)
		log.Info("mandelview: viewer stopped", "frames", v.frames)
	}()

	for !v.quit && !v.window.ShouldClose() {
		if err := ctx.Err(); err != nil {
			log.Debug("mandelview: context done", "err", err)
			return nil
		}
		v.Frame()
	}
	return nil
}

// Frame runs a single loop iteration. The keys sampled in this frame are
// applied with the time measured at the end of the previous frame; the
// first frame applies them with zero time.
func (v *Viewer) Frame() {
	v.window.PollEvents()

	next, cmds := v.mapper.Apply(v.window, v.dt, v.state)
	v.state = next

	for _, cmd := range cmds {
		switch cmd {
		case input.CommandScreenshot:
			v.screenshot()
		case input.CommandQuit:
			v.quit = true
		case input.CommandReset:
			Logger().Debug("mandelview: view reset")
		}
	}

	v.dt = v.clock.Tick()
	v.renderer.Draw(v.state)
	v.frames++

	v.status()
}

func (v *Viewer) screenshot() {
	if v.shots == nil {
		return
	}
	path, err := v.shots.Capture(v.screenshotName)
	if err != nil {
		Logger().Warn("mandelview: screenshot failed", "err", err)
		return
	}
	fmt.Fprintf(v.out, "\nSaved screenshot '%s'\n", path)
}

func (v *Viewer) status() {
	s := v.state
	fmt.Fprintf(v.out, "\rCenter: (%+1.08f, %+1.08f), Zoom: %10.4f, Iterations: %5d",
		s.Center.X, s.Center.Y, s.Zoom, s.IterationLimit())
}
