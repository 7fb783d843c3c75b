// Package mandelview is an interactive viewer for the Mandelbrot set.
//
// # Overview
//
// The set is evaluated per pixel by a double-precision fragment shader.
// The CPU side only tracks the view: where the window is centered, how far
// it is zoomed and how many iterations the shader runs. Keys held during a
// frame move the view at a rate proportional to the frame time, so the
// feel is the same at any refresh rate.
//
// # Frame loop
//
// A Viewer runs one iteration per displayed frame:
//
//  1. poll window events and sample the keyboard
//  2. apply held keys to the view ([input.Mapper])
//  3. write a screenshot if the screenshot key was just pressed
//  4. measure the frame time ([clock.Clock])
//  5. draw the view ([render.Orchestrator])
//  6. rewrite the status line
//
// The loop ends when the window is closed, the quit key is pressed or the
// context passed to Run is canceled.
//
// # Quick Start
//
//	win, _ := opengl.NewWindow(1280, 728)
//	src, _ := render.LoadSources("shaders/identity.vert", "shaders/mandelbrot.frag")
//	orch, _ := render.New(win.Device(), win, src)
//	defer orch.Close()
//
//	v := mandelview.New(win, orch, screenshot.New(win))
//	err := v.Run(ctx)
//
// The command in cmd/mandelview wires these from the command line and an
// optional TOML file (see package config).
//
// # Logging
//
// mandelview is silent by default. Install a logger with [SetLogger].
package mandelview
