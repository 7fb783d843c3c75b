// Package opengl implements the viewer's window and GPU device on GLFW and
// an OpenGL 4.1 core context.
//
// The fractal shader needs double-precision uniforms, which OpenGL 4.0
// made core. A Window owns the GLFW window and its context; a Device
// created from it compiles programs and uploads geometry for that context.
//
// GLFW and OpenGL calls must all be made from the same OS thread. Callers
// lock the main goroutine to its thread before Init:
//
//	func init() { runtime.LockOSThread() }
//
//	func main() {
//		if err := opengl.Init(); err != nil {
//			log.Fatal(err)
//		}
//		defer opengl.Terminate()
//
//		win, err := opengl.NewWindow(1280, 728, opengl.WithTitle("mandelview"))
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer win.Close()
//
//		dev := win.Device()
//		// ...
//	}
package opengl
