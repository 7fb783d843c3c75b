package opengl

import "errors"

// Backend errors. Shader failures use the render package errors.
var (
	// ErrInit is returned when GLFW cannot be initialized.
	ErrInit = errors.New("opengl: glfw init failed")

	// ErrWindow is returned when the window or its context cannot be created.
	ErrWindow = errors.New("opengl: window creation failed")

	// ErrContext is returned when the OpenGL function pointers cannot be
	// loaded for the new context.
	ErrContext = errors.New("opengl: context init failed")

	// ErrClosed is returned when a closed window is used.
	ErrClosed = errors.New("opengl: window closed")
)
