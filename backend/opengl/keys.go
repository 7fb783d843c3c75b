package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/mandelview/input"
)

// glfwKeys maps viewer keys to GLFW key codes. Keys not present are never
// reported as pressed.
var glfwKeys = map[input.Key]glfw.Key{
	input.KeyA: glfw.KeyA,
	input.KeyB: glfw.KeyB,
	input.KeyC: glfw.KeyC,
	input.KeyD: glfw.KeyD,
	input.KeyE: glfw.KeyE,
	input.KeyF: glfw.KeyF,
	input.KeyG: glfw.KeyG,
	input.KeyH: glfw.KeyH,
	input.KeyI: glfw.KeyI,
	input.KeyJ: glfw.KeyJ,
	input.KeyK: glfw.KeyK,
	input.KeyL: glfw.KeyL,
	input.KeyM: glfw.KeyM,
	input.KeyN: glfw.KeyN,
	input.KeyO: glfw.KeyO,
	input.KeyP: glfw.KeyP,
	input.KeyQ: glfw.KeyQ,
	input.KeyR: glfw.KeyR,
	input.KeyS: glfw.KeyS,
	input.KeyT: glfw.KeyT,
	input.KeyU: glfw.KeyU,
	input.KeyV: glfw.KeyV,
	input.KeyW: glfw.KeyW,
	input.KeyX: glfw.KeyX,
	input.KeyY: glfw.KeyY,
	input.KeyZ: glfw.KeyZ,

	input.Key0: glfw.Key0,
	input.Key1: glfw.Key1,
	input.Key2: glfw.Key2,
	input.Key3: glfw.Key3,
	input.Key4: glfw.Key4,
	input.Key5: glfw.Key5,
	input.Key6: glfw.Key6,
	input.Key7: glfw.Key7,
	input.Key8: glfw.Key8,
	input.Key9: glfw.Key9,

	input.KeyLeft:  glfw.KeyLeft,
	input.KeyRight: glfw.KeyRight,
	input.KeyUp:    glfw.KeyUp,
	input.KeyDown:  glfw.KeyDown,

	input.KeyEqual:    glfw.KeyEqual,
	input.KeyMinus:    glfw.KeyMinus,
	input.KeySpace:    glfw.KeySpace,
	input.KeyEnter:    glfw.KeyEnter,
	input.KeyTab:      glfw.KeyTab,
	input.KeyEscape:   glfw.KeyEscape,
	input.KeyPageUp:   glfw.KeyPageUp,
	input.KeyPageDown: glfw.KeyPageDown,

	input.KeyLeftShift:    glfw.KeyLeftShift,
	input.KeyRightShift:   glfw.KeyRightShift,
	input.KeyLeftControl:  glfw.KeyLeftControl,
	input.KeyRightControl: glfw.KeyRightControl,
	input.KeyLeftAlt:      glfw.KeyLeftAlt,
	input.KeyRightAlt:     glfw.KeyRightAlt,
}

// glfwKey returns the GLFW code for k.
func glfwKey(k input.Key) (glfw.Key, bool) {
	g, ok := glfwKeys[k]
	return g, ok
}
