package screenshot

import (
	"errors"
	"image/color"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/bmp"
)

// fakeReader serves a 2x2 framebuffer, bottom row first, in
// little-endian packed order.
type fakeReader struct {
	w, h  int
	err   error
	reads int
}

func (r *fakeReader) FramebufferSize() (int, int) { return r.w, r.h }

func (r *fakeReader) ReadPixels(dst []byte) error {
	r.reads++
	if r.err != nil {
		return r.err
	}
	if len(dst) != r.w*r.h*4 {
		return errors.New("wrong buffer size")
	}
	// Bottom row: red, green. Top row: blue, white.
	copy(dst, []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	})
	return nil
}

func testRand() *rand.Rand { return rand.New(rand.NewPCG(7, 11)) }

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func TestFilename(t *testing.T) {
	rng := testRand()
	for _, base := range []string{"screenshot", "", "shots/deep-zoom-"} {
		for i := 0; i < 200; i++ {
			name := Filename(base, rng)
			if len(name) != len(base)+6+4 {
				t.Fatalf("Filename(%q) = %q, len %d, want %d", base, name, len(name), len(base)+10)
			}
			if !strings.HasPrefix(name, base) {
				t.Fatalf("Filename(%q) = %q, missing base", base, name)
			}
			if !strings.HasSuffix(name, ".bmp") {
				t.Fatalf("Filename(%q) = %q, missing .bmp", base, name)
			}
			mid := name[len(base) : len(base)+6]
			for j := 0; j < len(mid); j++ {
				if !isAlnum(mid[j]) {
					t.Fatalf("suffix %q has non-alphanumeric %q", mid, mid[j])
				}
			}
		}
	}
}

func TestSuffixVaries(t *testing.T) {
	rng := testRand()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[Suffix(rng)] = true
	}
	if len(seen) < 45 {
		t.Errorf("50 suffixes gave only %d distinct values", len(seen))
	}
}

func TestOrderFor(t *testing.T) {
	if got := OrderFor(false); got != (ChannelOrder{R: 0, G: 1, B: 2, A: 3}) {
		t.Errorf("OrderFor(little) = %+v", got)
	}
	if got := OrderFor(true); got != (ChannelOrder{R: 3, G: 2, B: 1, A: 0}) {
		t.Errorf("OrderFor(big) = %+v", got)
	}
	if HostOrder() != HostOrder() {
		t.Error("HostOrder() is not stable")
	}
}

func TestFramebufferToImageFlipsRows(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	_ = (&fakeReader{w: 2, h: 2}).ReadPixels(fb.Data())

	img := fb.ToImage(OrderFor(false))
	want := map[[2]int]color.RGBA{
		{0, 0}: {0, 0, 255, 255},
		{1, 0}: {255, 255, 255, 255},
		{0, 1}: {255, 0, 0, 255},
		{1, 1}: {0, 255, 0, 255},
	}
	for p, c := range want {
		if got := img.RGBAAt(p[0], p[1]); got != c {
			t.Errorf("pixel %v = %v, want %v", p, got, c)
		}
	}
}

func TestFramebufferToImageBigEndian(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	// A packed word 0xAABBGGRR stored big-endian: A, B, G, R.
	copy(fb.Data(), []byte{200, 30, 20, 10})
	got := fb.ToImage(OrderFor(true)).RGBAAt(0, 0)
	if want := (color.RGBA{R: 10, G: 20, B: 30, A: 200}); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestNewFramebufferNegative(t *testing.T) {
	fb := NewFramebuffer(-3, 4)
	if fb.Width() != 0 || fb.Height() != 4 || len(fb.Data()) != 0 {
		t.Errorf("NewFramebuffer(-3, 4) = %dx%d, %d bytes", fb.Width(), fb.Height(), len(fb.Data()))
	}
}

func TestCaptureWritesBitmap(t *testing.T) {
	dir := t.TempDir()
	r := &fakeReader{w: 2, h: 2}
	s := New(r, WithDir(dir), WithRand(testRand()), WithChannelOrder(OrderFor(false)))

	path, err := s.Capture("screenshot")
	if err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	name := filepath.Base(path)
	if filepath.Dir(path) != dir {
		t.Errorf("Capture() wrote to %q, want dir %q", path, dir)
	}
	if len(name) != len("screenshot")+10 || !strings.HasPrefix(name, "screenshot") || !strings.HasSuffix(name, ".bmp") {
		t.Errorf("Capture() name = %q", name)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer f.Close()
	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("bmp.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("decoded size = %v, want 2x2", b)
	}
	r0, g0, b0, _ := img.At(0, 0).RGBA()
	if r0 != 0 || g0 != 0 || b0 != 0xffff {
		t.Errorf("top-left = (%d, %d, %d), want blue", r0, g0, b0)
	}
	r1, g1, b1, _ := img.At(0, 1).RGBA()
	if r1 != 0xffff || g1 != 0 || b1 != 0 {
		t.Errorf("bottom-left = (%d, %d, %d), want red", r1, g1, b1)
	}
}

func TestCaptureHeldKeyScenario(t *testing.T) {
	dir := t.TempDir()
	s := New(&fakeReader{w: 2, h: 2}, WithDir(dir))
	if _, err := s.Capture("screenshot"); err != nil {
		t.Fatalf("Capture() error = %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("files written = %d, want 1", len(entries))
	}
}

func TestCaptureErrors(t *testing.T) {
	t.Run("empty framebuffer", func(t *testing.T) {
		r := &fakeReader{w: 0, h: 10}
		if _, err := New(r).Capture("x"); !errors.Is(err, ErrEmptyFramebuffer) {
			t.Errorf("Capture() error = %v, want ErrEmptyFramebuffer", err)
		}
		if r.reads != 0 {
			t.Errorf("ReadPixels called %d times, want 0", r.reads)
		}
	})

	t.Run("readback", func(t *testing.T) {
		r := &fakeReader{w: 2, h: 2, err: errors.New("context lost")}
		if _, err := New(r).Capture("x"); !errors.Is(err, ErrReadback) {
			t.Errorf("Capture() error = %v, want ErrReadback", err)
		}
	})

	t.Run("unwritable destination", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "missing")
		_, err := New(&fakeReader{w: 2, h: 2}, WithDir(dir)).Capture("x")
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("Capture() error = %v, want ErrNotExist", err)
		}
	})
}
