// Package config resolves viewer settings from defaults, an optional TOML
// file and command-line name/value pairs, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gogpu/mandelview/input"
	"github.com/gogpu/mandelview/viewport"
)

// Configuration errors. All of them are fatal for the command.
var (
	ErrOddArguments = errors.New("config: arguments must be <name> <value> pairs")
	ErrUnknownName  = errors.New("config: unknown option")
	ErrInvalidValue = errors.New("config: invalid value")
	ErrFile         = errors.New("config: cannot load file")
)

// Default values for options without a viewport counterpart.
const (
	DefaultWidth          = 1280
	DefaultHeight         = 728
	DefaultScreenshotName = "screenshot"
	DefaultVertexShader   = "shaders/identity.vert"
	DefaultFragmentShader = "shaders/mandelbrot.frag"
)

// Speed holds the continuous response rates.
type Speed struct {
	Pan        float64 `toml:"pan"`
	Zoom       float64 `toml:"zoom"`
	Iterations float64 `toml:"iterations"`
}

// Config is the resolved viewer configuration.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	CenterX    float64 `toml:"centerX"`
	CenterY    float64 `toml:"centerY"`
	Zoom       float64 `toml:"zoom"`
	Iterations int     `toml:"iterations"`

	ScreenshotName string `toml:"screenshotname"`
	VertexShader   string `toml:"vertex"`
	FragmentShader string `toml:"fragment"`
	LogLevel       string `toml:"loglevel"`

	Speed Speed               `toml:"speed"`
	Keys  map[string][]string `toml:"keys"`
}

// Default returns the built-in configuration.
func Default() Config {
	sp := input.DefaultSpeeds()
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		Zoom:           viewport.DefaultZoom,
		Iterations:     viewport.DefaultIterations,
		ScreenshotName: DefaultScreenshotName,
		VertexShader:   DefaultVertexShader,
		FragmentShader: DefaultFragmentShader,
		LogLevel:       "warn",
		Speed: Speed{
			Pan:        sp.Pan,
			Zoom:       sp.ZoomRate,
			Iterations: sp.Iterations,
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width %d must be positive", ErrInvalidValue, c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("%w: height %d must be positive", ErrInvalidValue, c.Height)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Bindings(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return nil
}

// Viewport returns the starting viewport. Zoom and iterations are clamped.
func (c Config) Viewport() viewport.State {
	return viewport.New(viewport.Point{X: c.CenterX, Y: c.CenterY}, c.Zoom, float64(c.Iterations))
}

// Speeds returns the mapper speeds.
func (c Config) Speeds() input.Speeds {
	return input.Speeds{
		Pan:        c.Speed.Pan,
		ZoomRate:   c.Speed.Zoom,
		Iterations: c.Speed.Iterations,
	}
}

// Bindings returns the default bindings with the [keys] overrides applied.
func (c Config) Bindings() (input.Bindings, error) {
	return input.DefaultBindings().Override(c.Keys)
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: loglevel %q", ErrInvalidValue, c.LogLevel)
	}
	return l, nil
}
