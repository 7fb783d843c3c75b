package render

import (
	"fmt"
	"os"
)

// Sources holds the GLSL text of both shader stages and where it came
// from.
type Sources struct {
	Vertex   string
	Fragment string

	VertexPath   string
	FragmentPath string
}

// LoadSources reads both shader files fully into memory.
func LoadSources(vertexPath, fragmentPath string) (Sources, error) {
	vs, err := os.ReadFile(vertexPath) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Sources{}, fmt.Errorf("%w: %w", ErrShaderSource, err)
	}
	fs, err := os.ReadFile(fragmentPath) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Sources{}, fmt.Errorf("%w: %w", ErrShaderSource, err)
	}
	return Sources{
		Vertex:       string(vs),
		Fragment:     string(fs),
		VertexPath:   vertexPath,
		FragmentPath: fragmentPath,
	}, nil
}
