// Package viewport holds the view into the complex plane: where the camera
// is centered, how far it is magnified and how deep the escape-time
// iteration runs.
//
// A State is a plain value. It holds no external resources and is safe to
// copy; the frame loop owns exactly one and replaces it every frame with
// the value returned by the input mapper.
package viewport

import "math"

// Limits enforced on every State.
const (
	// MinZoom is the zoom floor. There is no ceiling: magnification is
	// bounded only by float64 precision in the shader.
	MinZoom = 0.2

	// MinIterations and MaxIterations bound the escape-time iteration limit.
	MinIterations = 0
	MaxIterations = 1000
)

// Process defaults.
const (
	DefaultZoom       = 0.45
	DefaultIterations = 50
)

// Point is a position in world (complex plane) coordinates.
type Point struct {
	X, Y float64
}

// State describes the rendered region of the fractal.
type State struct {
	// Center is the world coordinate at the middle of the window.
	Center Point

	// Zoom is the magnification factor. Larger values show less of the
	// plane. Always >= MinZoom.
	Zoom float64

	// Iterations is the escape-time limit. It is kept real-valued because
	// per-frame increments are fractional; IterationLimit truncates it.
	Iterations float64

	// Crosshair requests the center overlay. Purely cosmetic.
	Crosshair bool
}

// Defaults returns the state the viewer starts in when nothing is
// configured: centered on the origin, zoom 0.45, 50 iterations.
func Defaults() State {
	return New(Point{}, DefaultZoom, DefaultIterations)
}

// New returns a state starting at the given parameters. Out-of-range zoom
// and iteration values are clamped silently.
func New(center Point, zoom, iterations float64) State {
	return State{Center: center, Zoom: zoom, Iterations: iterations}.Normalize()
}

// Normalize applies the zoom floor and the iteration clamp. A zero State
// comes back with zoom MinZoom.
func (s State) Normalize() State {
	s.Zoom = ClampZoom(s.Zoom)
	s.Iterations = ClampIterations(s.Iterations)
	return s
}

// Reset restores center (0, 0), zoom DefaultZoom and DefaultIterations,
// whatever the state started from. The crosshair flag is left as is.
func (s State) Reset() State {
	s.Center = Point{}
	s.Zoom = DefaultZoom
	s.Iterations = DefaultIterations
	return s
}

// IterationLimit returns the iteration limit as the integer the shader
// consumes.
func (s State) IterationLimit() int32 {
	return int32(s.Iterations)
}

// ClampZoom applies the zoom floor. NaN collapses to the floor.
func ClampZoom(z float64) float64 {
	if math.IsNaN(z) {
		return MinZoom
	}
	return math.Max(MinZoom, z)
}

// ClampIterations clamps v into [MinIterations, MaxIterations].
func ClampIterations(v float64) float64 {
	if math.IsNaN(v) {
		return MinIterations
	}
	return math.Max(MinIterations, math.Min(MaxIterations, v))
}
