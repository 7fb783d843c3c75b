package mandelview

import (
	"io"

	"github.com/gogpu/mandelview/clock"
	"github.com/gogpu/mandelview/input"
	"github.com/gogpu/mandelview/viewport"
)

// DefaultScreenshotName is the screenshot filename prefix used when
// WithScreenshotName is not given.
const DefaultScreenshotName = "screenshot"

// Option configures a Viewer during creation.
//
// Example:
//
//	v := mandelview.New(win, orch, shots,
//		mandelview.WithState(cfg.Viewport()),
//		mandelview.WithScreenshotName("deep"),
//	)
type Option func(*options)

type options struct {
	state          viewport.State
	mapper         *input.Mapper
	clock          *clock.Clock
	out            io.Writer
	screenshotName string
}

func defaultOptions() options {
	return options{
		state:          viewport.Defaults(),
		screenshotName: DefaultScreenshotName,
	}
}

// WithState sets the starting view. Zoom and iterations are clamped.
func WithState(s viewport.State) Option {
	return func(o *options) {
		o.state = s.Normalize()
	}
}

// WithMapper replaces the mapper built from the default bindings and
// speeds.
func WithMapper(m *input.Mapper) Option {
	return func(o *options) {
		o.mapper = m
	}
}

// WithClock replaces the wall clock. Tests use it with clock.NewWithSource.
func WithClock(c *clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithOutput sets where the status line and screenshot confirmations are
// written. Defaults to os.Stdout; nil discards them.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w == nil {
			w = io.Discard
		}
		o.out = w
	}
}

// WithScreenshotName sets the screenshot filename prefix.
func WithScreenshotName(name string) Option {
	return func(o *options) {
		o.screenshotName = name
	}
}
