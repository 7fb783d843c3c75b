// Command mandelview opens a window showing the Mandelbrot set and lets you
// explore it from the keyboard.
//
// Usage:
//
//	mandelview [<name> <value>]...
//
// For example:
//
//	mandelview width 1920 height 1080 centerX -0.743643 centerY 0.131825 zoom 5000 iterations 800
//
// Run "mandelview help" for the full list of names and keys.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gogpu/mandelview"
	"github.com/gogpu/mandelview/backend/opengl"
	"github.com/gogpu/mandelview/config"
	"github.com/gogpu/mandelview/input"
	"github.com/gogpu/mandelview/render"
	"github.com/gogpu/mandelview/screenshot"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// windowTitle is the title of the viewer window.
const windowTitle = "Mandelbrot"

func init() {
	// GLFW and OpenGL must be driven from the main thread.
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := fang.Execute(ctx, newRootCmd(),
		fang.WithVersion(version),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			handleError(w, err)
		}),
	)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mandelview [<name> <value>]...",
		Short: "Interactive GPU Mandelbrot viewer",
		Long:  config.Usage,
		// Values such as "-0.75" must reach Parse untouched.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if isHelp(args) {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.Usage)
				return err
			}
			cfg, err := resolve(args)
			if err != nil {
				return err
			}
			setupLogging(cmd.ErrOrStderr(), cfg)
			return run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
}

// usageError marks errors caused by the command line; the usage text is
// printed after them.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func handleError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "mandelview: %v\n", err)
	var ue usageError
	if errors.As(err, &ue) {
		_, _ = fmt.Fprint(w, "\n"+config.Usage)
	}
}

func isHelp(args []string) bool {
	if len(args) != 1 {
		return false
	}
	switch args[0] {
	case "help", "-h", "--help":
		return true
	}
	return false
}

// resolve builds the configuration from the defaults and the name/value
// pairs in args.
func resolve(args []string) (config.Config, error) {
	cfg, err := config.Parse(args, config.Default())
	if err != nil {
		return cfg, usageError{err}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, usageError{err}
	}
	return cfg, nil
}

func setupLogging(w io.Writer, cfg config.Config) {
	level, err := cfg.Level()
	if err != nil {
		level = slog.LevelWarn
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	mandelview.SetLogger(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	})))
}

// run opens the window and runs the viewer until it exits. Every resource
// acquired is released on return, in reverse order.
func run(ctx context.Context, cfg config.Config, stdout io.Writer) error {
	src, err := render.LoadSources(cfg.VertexShader, cfg.FragmentShader)
	if err != nil {
		return err
	}

	if err := opengl.Init(); err != nil {
		return err
	}
	defer opengl.Terminate()

	win, err := opengl.NewWindow(cfg.Width, cfg.Height, opengl.WithTitle(windowTitle))
	if err != nil {
		return err
	}
	defer win.Close()

	orch, err := render.New(win.Device(), win, src)
	if err != nil {
		return err
	}
	defer orch.Close()

	bindings, err := cfg.Bindings()
	if err != nil {
		return usageError{err}
	}

	v := mandelview.New(win, orch, screenshot.New(win),
		mandelview.WithState(cfg.Viewport()),
		mandelview.WithMapper(input.NewMapper(bindings, cfg.Speeds())),
		mandelview.WithScreenshotName(cfg.ScreenshotName),
		mandelview.WithOutput(stdout),
	)
	return v.Run(ctx)
}
