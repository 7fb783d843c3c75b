package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned by ParseKey for names it does not recognize.
var ErrUnknownKey = errors.New("input: unknown key")

// Key identifies a physical keyboard key independently of the windowing
// backend. Backends translate their own codes into Keys.
type Key int

// Keys the viewer can bind.
const (
	KeyUnknown Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	KeyEqual
	KeyMinus
	KeySpace
	KeyEnter
	KeyTab
	KeyEscape
	KeyPageUp
	KeyPageDown

	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt

	keyCount
)

var keyNames = [keyCount]string{
	KeyUnknown:      "Unknown",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyEqual:        "Equal",
	KeyMinus:        "Minus",
	KeySpace:        "Space",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyEscape:       "Escape",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyLeftShift:    "LeftShift",
	KeyRightShift:   "RightShift",
	KeyLeftControl:  "LeftControl",
	KeyRightControl: "RightControl",
	KeyLeftAlt:      "LeftAlt",
	KeyRightAlt:     "RightAlt",
}

func init() {
	for i := 0; i < 26; i++ {
		keyNames[KeyA+Key(i)] = string(rune('A' + i))
	}
	for i := 0; i < 10; i++ {
		keyNames[Key0+Key(i)] = string(rune('0' + i))
	}
}

// String returns the key's configuration name.
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// ParseKey returns the key with the given configuration name. Matching is
// case-insensitive; "=" and "-" are accepted for Equal and Minus.
func ParseKey(name string) (Key, error) {
	switch name {
	case "=":
		return KeyEqual, nil
	case "-":
		return KeyMinus, nil
	}
	for k := KeyUnknown + 1; k < keyCount; k++ {
		if strings.EqualFold(keyNames[k], name) {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// Keys returns every bindable key, in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount-1)
	for k := KeyUnknown + 1; k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// KeyState reports whether a key is currently held down.
type KeyState interface {
	Pressed(k Key) bool
}

// KeySet is a KeyState holding an explicit set of held keys.
type KeySet map[Key]bool

// Held returns a KeySet with the given keys held.
func Held(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = true
	}
	return s
}

// Pressed implements KeyState.
func (s KeySet) Pressed(k Key) bool { return s[k] }
