package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Usage describes the command-line syntax.
const Usage = `usage: mandelview [<name> <value>]...

options:
  width <int>             window width in pixels (default 1280)
  height <int>            window height in pixels (default 728)
  centerX <real>          initial center, real part (default 0)
  centerY <real>          initial center, imaginary part (default 0)
  zoom <real>             initial zoom, at least 0.2 (default 0.45)
  iterations <int>        initial iteration limit, 0-1000 (default 50)
  screenshotname <name>   screenshot filename prefix (default "screenshot")
  vertex <path>           vertex shader (default shaders/identity.vert)
  fragment <path>         fragment shader (default shaders/mandelbrot.frag)
  config <path>           TOML file read before the other options
  loglevel <level>        debug, info, warn or error (default warn)

keys:
  arrows / WASD   pan            = / -   zoom in / out
  E / Q           iterations     Shift   5x speed
  Alt             1/100 speed    X       crosshair
  P               screenshot     R       reset view
  Escape          quit
`

// Parse applies name/value pairs from args on top of base. A "config"
// pair is loaded first, wherever it appears, so explicit pairs override
// the file. On error base is returned unchanged.
func Parse(args []string, base Config) (Config, error) {
	if len(args)%2 != 0 {
		return base, fmt.Errorf("%w: got %d arguments", ErrOddArguments, len(args))
	}

	cfg := base
	for i := 0; i < len(args); i += 2 {
		if args[i] == "config" {
			loaded, err := Load(args[i+1], cfg)
			if err != nil {
				return base, err
			}
			cfg = loaded
		}
	}

	for i := 0; i < len(args); i += 2 {
		if err := cfg.set(args[i], args[i+1]); err != nil {
			return base, err
		}
	}
	return cfg, nil
}

// Load decodes the TOML file at path on top of base. Keys absent from the
// file keep base's values. On error base is returned unchanged.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return base, fmt.Errorf("%w: %w", ErrFile, err)
	}
	cfg := base
	cfg.Keys = cloneKeys(base.Keys)
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return base, fmt.Errorf("%w: %s: %w", ErrFile, path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return base, fmt.Errorf("%w: %s: %q", ErrUnknownName, path, undec[0].String())
	}
	return cfg, nil
}

func cloneKeys(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	c := make(map[string][]string, len(m))
	for k, v := range m {
		c[k] = append([]string(nil), v...)
	}
	return c
}

func (c *Config) set(name, value string) error {
	var err error
	switch name {
	case "width":
		c.Width, err = parseInt(name, value)
	case "height":
		c.Height, err = parseInt(name, value)
	case "centerX":
		c.CenterX, err = parseFloat(name, value)
	case "centerY":
		c.CenterY, err = parseFloat(name, value)
	case "zoom":
		c.Zoom, err = parseFloat(name, value)
	case "iterations":
		c.Iterations, err = parseInt(name, value)
	case "screenshotname":
		c.ScreenshotName = value
	case "vertex":
		c.VertexShader = value
	case "fragment":
		c.FragmentShader = value
	case "loglevel":
		c.LogLevel = value
	case "config":
		// Already applied.
	default:
		return fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return err
}

func parseInt(name, value string) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidValue, name, value)
	}
	return v, nil
}

func parseFloat(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidValue, name, value)
	}
	return v, nil
}
