// Package render pushes a viewport into the fractal shader and draws it.
//
// The Orchestrator owns the linked shader program and the full-screen
// quad. Both are created through a Device when the orchestrator is built
// and released exactly once by Close. Everything that talks to the GPU
// lives behind the Device, Program, Mesh and Surface interfaces so the
// orchestration can run against fakes in tests.
package render

import (
	"errors"
)

// Errors reported by render and by Device implementations.
var (
	// ErrShaderSource is returned when a shader file cannot be read.
	ErrShaderSource = errors.New("render: cannot read shader source")

	// ErrCompile is returned when a shader stage fails to compile.
	ErrCompile = errors.New("render: shader compile failed")

	// ErrLink is returned when the program fails to link.
	ErrLink = errors.New("render: program link failed")

	// ErrAttribute is returned when the vertex attribute is missing from
	// the linked program.
	ErrAttribute = errors.New("render: vertex attribute not found")

	// ErrBuffer is returned when a GPU buffer cannot be created.
	ErrBuffer = errors.New("render: buffer creation failed")
)

// Uniform and attribute names shared with the shaders.
const (
	UniformResolution = "u_resolution"
	UniformIterations = "u_iterationLimit"
	UniformCenter     = "u_center"
	UniformZoom       = "u_zoom"
	UniformCrosshair  = "u_crosshair"

	AttributePosition = "position"
)

// QuadVertices covers clip space with four 2D corners.
var QuadVertices = []float32{
	-1, -1,
	1, -1,
	1, 1,
	-1, 1,
}

// QuadIndices draws QuadVertices as a triangle fan.
var QuadIndices = []uint32{0, 1, 2, 3}

// Color is a linear RGBA clear color.
type Color struct {
	R, G, B, A float32
}

// Black is the default clear color.
var Black = Color{A: 1}

// Program is a linked shader program.
type Program interface {
	// Use makes the program current.
	Use()
	// Release unbinds the program.
	Release()

	SetInt(name string, v int32)
	SetInt2(name string, x, y int32)
	SetDouble(name string, v float64)
	SetDouble2(name string, x, y float64)

	// Destroy frees the program. Called once.
	Destroy()
}

// Mesh is geometry uploaded to the GPU.
type Mesh interface {
	// DrawFan draws the mesh as a triangle fan through its index buffer.
	DrawFan()
	// Destroy frees the vertex and index buffers. Called once.
	Destroy()
}

// Device creates GPU resources.
type Device interface {
	// NewProgram compiles both stages and links them. Compile and link
	// failures wrap ErrCompile and ErrLink and carry the driver log.
	NewProgram(src Sources) (Program, error)

	// NewQuad uploads vertices (2 floats each) and indices and binds the
	// vertices to the named attribute of p.
	NewQuad(p Program, attribute string, vertices []float32, indices []uint32) (Mesh, error)
}

// Surface is the window framebuffer.
type Surface interface {
	FramebufferSize() (width, height int)
	Clear(c Color)
	SwapBuffers()
}
