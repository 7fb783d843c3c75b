package input

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownAction is returned when a binding names an action that does
// not exist.
var ErrUnknownAction = errors.New("input: unknown action")

// Action is something a key can be bound to.
type Action string

// Actions.
const (
	ActionUp             Action = "up"
	ActionDown           Action = "down"
	ActionLeft           Action = "left"
	ActionRight          Action = "right"
	ActionZoomIn         Action = "zoom_in"
	ActionZoomOut        Action = "zoom_out"
	ActionIterationsUp   Action = "iterations_up"
	ActionIterationsDown Action = "iterations_down"
	ActionFast           Action = "fast"
	ActionPrecision      Action = "precision"
	ActionScreenshot     Action = "screenshot"
	ActionReset          Action = "reset"
	ActionCrosshair      Action = "crosshair"
	ActionQuit           Action = "quit"
)

// Bindings maps each action to the keys that trigger it. An action fires
// while any of its keys is held, so primary and alternate bindings (arrow
// key or letter) simply share a slice.
type Bindings map[Action][]Key

// DefaultBindings returns the stock layout: arrows or WASD to pan, = and -
// to zoom, E and Q for iterations, left shift for speed, left alt for fine
// control, P screenshot, R reset, X crosshair, Escape quit.
func DefaultBindings() Bindings {
	return Bindings{
		ActionUp:             {KeyUp, KeyW},
		ActionDown:           {KeyDown, KeyS},
		ActionLeft:           {KeyLeft, KeyA},
		ActionRight:          {KeyRight, KeyD},
		ActionZoomIn:         {KeyEqual},
		ActionZoomOut:        {KeyMinus},
		ActionIterationsUp:   {KeyE},
		ActionIterationsDown: {KeyQ},
		ActionFast:           {KeyLeftShift},
		ActionPrecision:      {KeyLeftAlt},
		ActionScreenshot:     {KeyP},
		ActionReset:          {KeyR},
		ActionCrosshair:      {KeyX},
		ActionQuit:           {KeyEscape},
	}
}

// Actions returns all known actions, sorted.
func Actions() []Action {
	all := make([]Action, 0, len(DefaultBindings()))
	for a := range DefaultBindings() {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// Held reports whether any key bound to a is held.
func (b Bindings) Held(keys KeyState, a Action) bool {
	for _, k := range b[a] {
		if keys.Pressed(k) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of b.
func (b Bindings) Clone() Bindings {
	c := make(Bindings, len(b))
	for a, keys := range b {
		c[a] = append([]Key(nil), keys...)
	}
	return c
}

// Override replaces the bindings of every action named in names with the
// parsed keys. Actions not mentioned keep their current keys.
func (b Bindings) Override(names map[string][]string) (Bindings, error) {
	known := DefaultBindings()
	out := b.Clone()
	for action, keyNames := range names {
		a := Action(action)
		if _, ok := known[a]; !ok {
			return b, fmt.Errorf("%w: %q", ErrUnknownAction, action)
		}
		keys := make([]Key, 0, len(keyNames))
		for _, n := range keyNames {
			k, err := ParseKey(n)
			if err != nil {
				return b, fmt.Errorf("binding %s: %w", action, err)
			}
			keys = append(keys, k)
		}
		out[a] = keys
	}
	return out, nil
}
