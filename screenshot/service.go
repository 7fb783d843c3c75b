// Package screenshot writes the current window contents to a bitmap file.
package screenshot

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"

	"github.com/gogpu/mandelview/internal/logging"
)

// Errors returned by Capture.
var (
	// ErrEmptyFramebuffer is returned when the framebuffer has no pixels
	// (for example, a minimized window).
	ErrEmptyFramebuffer = errors.New("screenshot: empty framebuffer")

	// ErrReadback is returned when pixels cannot be read from the GPU.
	ErrReadback = errors.New("screenshot: pixel readback failed")
)

// PixelReader reads the displayed color buffer.
type PixelReader interface {
	FramebufferSize() (width, height int)

	// ReadPixels fills dst (width*height*4 bytes) with packed RGBA words,
	// bottom row first.
	ReadPixels(dst []byte) error
}

// Option configures a Service.
type Option func(*Service)

// WithDir writes screenshots into dir instead of the working directory.
func WithDir(dir string) Option {
	return func(s *Service) {
		s.dir = dir
	}
}

// WithRand replaces the process-seeded random source used for suffixes.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		s.rng = rng
	}
}

// WithChannelOrder overrides the host channel order.
func WithChannelOrder(order ChannelOrder) Option {
	return func(s *Service) {
		s.order = order
	}
}

// Service captures screenshots from a PixelReader.
type Service struct {
	reader PixelReader
	dir    string
	rng    *rand.Rand
	order  ChannelOrder
}

// New returns a service reading from r. The suffix generator is seeded
// from the current time.
func New(r PixelReader, opts ...Option) *Service {
	seed := uint64(time.Now().UnixNano()) //nolint:gosec // seed only
	s := &Service{
		reader: r,
		rng:    rand.New(rand.NewPCG(seed, seed>>32|1)),
		order:  HostOrder(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Capture reads back the framebuffer and writes it to
// <dir>/<base><6 random alphanumerics>.bmp. It returns the path written.
// Failures are returned to the caller and leave no partial file behind.
func (s *Service) Capture(base string) (string, error) {
	w, h := s.reader.FramebufferSize()
	if w <= 0 || h <= 0 {
		return "", fmt.Errorf("%w: %dx%d", ErrEmptyFramebuffer, w, h)
	}

	fb := NewFramebuffer(w, h)
	if err := s.reader.ReadPixels(fb.Data()); err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadback, err)
	}

	path := Filename(base, s.rng)
	if s.dir != "" {
		path = filepath.Join(s.dir, path)
	}

	if err := writeBMP(path, fb, s.order); err != nil {
		return "", err
	}
	logging.Logger().Debug("screenshot: written", "path", path, "width", w, "height", h)
	return path, nil
}

func writeBMP(path string, fb *Framebuffer, order ChannelOrder) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := bmp.Encode(bw, fb.ToImage(order)); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
