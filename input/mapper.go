package input

import (
	"math"

	"github.com/gogpu/mandelview/viewport"
)

// Command is a discrete action emitted by the mapper for the frame loop.
type Command int

// Commands.
const (
	// CommandReset is emitted every frame the reset key is held. The
	// returned state already has the reset applied; the command is
	// informational.
	CommandReset Command = iota + 1

	// CommandScreenshot is emitted once per press of the screenshot key.
	CommandScreenshot

	// CommandQuit is emitted while the quit key is held.
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandReset:
		return "reset"
	case CommandScreenshot:
		return "screenshot"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Modifier multipliers.
const (
	// FastFactor is added on top of the base speed while the fast key is
	// held, giving 1+4 = 5x.
	FastFactor = 4

	// PrecisionFactor scales speed while the precision key is held.
	PrecisionFactor = 0.01
)

// Speeds are the continuous response rates, all per second at turbo 1.
type Speeds struct {
	// Pan is world units per second at zoom 1.
	Pan float64

	// ZoomRate is the base-2 exponent applied to zoom per second.
	ZoomRate float64

	// Iterations is iteration-limit units per second.
	Iterations float64
}

// DefaultSpeeds returns pan 0.5, zoom rate 2^-1 and 100 iterations/s.
func DefaultSpeeds() Speeds {
	return Speeds{
		Pan:        0.5,
		ZoomRate:   math.Pow(2, -1),
		Iterations: 100,
	}
}

// Mapper converts polled key state and frame time into viewport updates.
// It holds the press latch for the screenshot key and nothing else; it
// never performs I/O.
type Mapper struct {
	bindings Bindings
	speeds   Speeds

	screenshot Latch
}

// NewMapper returns a mapper using the given bindings and speeds.
func NewMapper(b Bindings, s Speeds) *Mapper {
	return &Mapper{bindings: b.Clone(), speeds: s}
}

// Bindings returns a copy of the active bindings.
func (m *Mapper) Bindings() Bindings {
	return m.bindings.Clone()
}

// Speeds returns the active speeds.
func (m *Mapper) Speeds() Speeds {
	return m.speeds
}

// Turbo returns the speed multiplier for the current modifiers: 1 base,
// 5 with fast held, times 0.01 with precision held.
func (m *Mapper) Turbo(keys KeyState) float64 {
	turbo := 1 + FastFactor*m.axis(keys, ActionFast)
	if m.bindings.Held(keys, ActionPrecision) {
		turbo *= PrecisionFactor
	}
	return turbo
}

// Apply advances s by dt seconds of the given key state and returns the
// new state and the commands raised this frame.
func (m *Mapper) Apply(keys KeyState, dt float64, s viewport.State) (viewport.State, []Command) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	s = s.Normalize()
	var cmds []Command

	turbo := m.Turbo(keys)

	// Pan speed is divided by zoom so the on-screen speed stays constant
	// at every magnification.
	dx := m.axis(keys, ActionRight) - m.axis(keys, ActionLeft)
	dy := m.axis(keys, ActionUp) - m.axis(keys, ActionDown)
	s.Center.X += turbo * dx * m.speeds.Pan * dt / s.Zoom
	s.Center.Y += turbo * dy * m.speeds.Pan * dt / s.Zoom

	zoomDir := m.axis(keys, ActionZoomIn) - m.axis(keys, ActionZoomOut)
	s.Zoom = viewport.ClampZoom(s.Zoom * math.Exp2(turbo*zoomDir*m.speeds.ZoomRate*dt))

	iterDir := m.axis(keys, ActionIterationsUp) - m.axis(keys, ActionIterationsDown)
	s.Iterations = viewport.ClampIterations(s.Iterations + turbo*m.speeds.Iterations*dt*iterDir)

	s.Crosshair = m.bindings.Held(keys, ActionCrosshair)

	if m.screenshot.Rising(m.bindings.Held(keys, ActionScreenshot)) {
		cmds = append(cmds, CommandScreenshot)
	}
	if m.bindings.Held(keys, ActionReset) {
		s = s.Reset()
		cmds = append(cmds, CommandReset)
	}
	if m.bindings.Held(keys, ActionQuit) {
		cmds = append(cmds, CommandQuit)
	}
	return s, cmds
}

// axis returns 1 if a is held, else 0.
func (m *Mapper) axis(keys KeyState, a Action) float64 {
	if m.bindings.Held(keys, a) {
		return 1
	}
	return 0
}
