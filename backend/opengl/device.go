package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gogpu/mandelview/internal/logging"
	"github.com/gogpu/mandelview/render"
)

// Device creates programs and meshes in the context of the Window that
// returned it. The context must be current on the calling thread.
type Device struct{}

// NewProgram compiles the vertex and fragment stages and links them.
// Compile errors wrap render.ErrCompile and link errors render.ErrLink;
// both include the driver's info log.
func (d *Device) NewProgram(src render.Sources) (render.Program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, src.Vertex, src.VertexPath)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(gl.FRAGMENT_SHADER, src.Fragment, src.FragmentPath)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := infoLog(logLength, func(buf []uint8) {
			gl.GetProgramInfoLog(id, logLength, nil, &buf[0])
		})
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("%w: %s", render.ErrLink, log)
	}

	gl.DetachShader(id, vs)
	gl.DetachShader(id, fs)

	logging.Logger().Debug("opengl: program linked", "id", id)
	return &program{id: id, locations: make(map[string]int32)}, nil
}

// NewQuad uploads vertices and indices and binds the vertices, two floats
// per vertex, to the attribute named attribute in p.
func (d *Device) NewQuad(p render.Program, attribute string, vertices []float32, indices []uint32) (render.Mesh, error) {
	prog, ok := p.(*program)
	if !ok || prog.id == 0 {
		return nil, fmt.Errorf("%w: program not created by this device", render.ErrBuffer)
	}
	if len(vertices) == 0 || len(indices) == 0 {
		return nil, fmt.Errorf("%w: empty geometry", render.ErrBuffer)
	}

	loc := gl.GetAttribLocation(prog.id, gl.Str(attribute+"\x00"))
	if loc < 0 {
		return nil, fmt.Errorf("%w: %q", render.ErrAttribute, attribute)
	}

	m := &mesh{count: int32(len(indices))} //nolint:gosec // index count is tiny
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ibo)
	if m.vao == 0 || m.vbo == 0 || m.ibo == 0 {
		m.Destroy()
		return nil, fmt.Errorf("%w: glGen returned 0", render.ErrBuffer)
	}

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(uint32(loc))
	gl.VertexAttribPointer(uint32(loc), 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))

	gl.BindVertexArray(0)

	logging.Logger().Debug("opengl: quad uploaded",
		"vertices", len(vertices)/2, "indices", len(indices))
	return m, nil
}

func compileShader(kind uint32, source, path string) (uint32, error) {
	id := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := infoLog(logLength, func(buf []uint8) {
			gl.GetShaderInfoLog(id, logLength, nil, &buf[0])
		})
		gl.DeleteShader(id)
		return 0, fmt.Errorf("%w: %s: %s", render.ErrCompile, stageName(kind, path), log)
	}
	return id, nil
}

// infoLog reads a driver log of logLength bytes, including the NUL.
func infoLog(logLength int32, read func(buf []uint8)) string {
	if logLength <= 1 {
		return "(no log)"
	}
	buf := make([]uint8, logLength)
	read(buf)
	return strings.TrimRight(string(buf), "\x00\r\n ")
}

func stageName(kind uint32, path string) string {
	stage := "vertex"
	if kind == gl.FRAGMENT_SHADER {
		stage = "fragment"
	}
	if path == "" {
		return stage
	}
	return stage + " " + path
}

type program struct {
	id        uint32
	locations map[string]int32
}

func (p *program) Use()     { gl.UseProgram(p.id) }
func (p *program) Release() { gl.UseProgram(0) }

func (p *program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

func (p *program) SetInt2(name string, x, y int32) {
	gl.Uniform2i(p.location(name), x, y)
}

func (p *program) SetDouble(name string, v float64) {
	gl.Uniform1d(p.location(name), v)
}

func (p *program) SetDouble2(name string, x, y float64) {
	gl.Uniform2d(p.location(name), x, y)
}

// location returns the cached location of name. Unknown uniforms resolve
// to -1, which OpenGL ignores.
func (p *program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	if loc < 0 {
		logging.Logger().Warn("opengl: uniform not found", "name", name)
	}
	p.locations[name] = loc
	return loc
}

func (p *program) Destroy() {
	if p.id == 0 {
		return
	}
	gl.DeleteProgram(p.id)
	p.id = 0
}

type mesh struct {
	vao, vbo, ibo uint32
	count         int32
}

func (m *mesh) DrawFan() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLE_FAN, m.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Destroy releases the buffers in reverse creation order.
func (m *mesh) Destroy() {
	if m.ibo != 0 {
		gl.DeleteBuffers(1, &m.ibo)
		m.ibo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
