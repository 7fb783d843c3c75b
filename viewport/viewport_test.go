package viewport

import (
	"math"
	"testing"
)

func TestDefaults(t *testing.T) {
	s := Defaults()
	if s.Center != (Point{}) {
		t.Errorf("Center = %v, want (0, 0)", s.Center)
	}
	if s.Zoom != 0.45 {
		t.Errorf("Zoom = %v, want 0.45", s.Zoom)
	}
	if s.Iterations != 50 {
		t.Errorf("Iterations = %v, want 50", s.Iterations)
	}
	if s.Crosshair {
		t.Error("Crosshair = true, want false")
	}
}

func TestNewClamps(t *testing.T) {
	tests := []struct {
		name     string
		zoom     float64
		iter     float64
		wantZoom float64
		wantIter float64
	}{
		{"in range", 2, 300, 2, 300},
		{"zoom below floor", 0.05, 10, MinZoom, 10},
		{"negative zoom", -3, 10, MinZoom, 10},
		{"iterations above max", 1, 5000, 1, MaxIterations},
		{"negative iterations", 1, -7, 1, MinIterations},
		{"NaN", math.NaN(), math.NaN(), MinZoom, MinIterations},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Point{X: 1, Y: 2}, tt.zoom, tt.iter)
			if s.Zoom != tt.wantZoom {
				t.Errorf("Zoom = %v, want %v", s.Zoom, tt.wantZoom)
			}
			if s.Iterations != tt.wantIter {
				t.Errorf("Iterations = %v, want %v", s.Iterations, tt.wantIter)
			}
		})
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := Defaults()
	s.Center = Point{X: -1.25, Y: 0.3}
	s.Zoom = 1234
	s.Iterations = 999
	s.Crosshair = true

	got := s.Reset()
	if got.Center != (Point{}) || got.Zoom != DefaultZoom || got.Iterations != DefaultIterations {
		t.Errorf("Reset() = (%v, %v, %v), want ((0, 0), %v, %v)",
			got.Center, got.Zoom, got.Iterations, DefaultZoom, DefaultIterations)
	}
	if !got.Crosshair {
		t.Error("Reset() cleared Crosshair, want it untouched")
	}
}

func TestResetIgnoresStartValues(t *testing.T) {
	start := New(Point{X: -0.75, Y: 0.1}, 3, 200)
	moved := start
	moved.Center.X += 5
	moved.Zoom = 90

	for _, s := range []State{start, moved, {}} {
		got := s.Reset()
		if got.Center != (Point{}) || got.Zoom != DefaultZoom || got.Iterations != DefaultIterations {
			t.Errorf("%+v.Reset() = (%v, %v, %v), want ((0, 0), %v, %v)",
				s, got.Center, got.Zoom, got.Iterations, DefaultZoom, DefaultIterations)
		}
	}
}

func TestNormalizeZeroValue(t *testing.T) {
	got := State{}.Normalize()
	if got.Zoom != MinZoom || got.Iterations != MinIterations {
		t.Errorf("State{}.Normalize() = (%v, %v), want (%v, %v)",
			got.Zoom, got.Iterations, MinZoom, MinIterations)
	}
	got = State{Zoom: math.NaN(), Iterations: 5000}.Normalize()
	if got.Zoom != MinZoom || got.Iterations != MaxIterations {
		t.Errorf("Normalize() = (%v, %v), want (%v, %v)", got.Zoom, got.Iterations, MinZoom, MaxIterations)
	}
}

func TestIterationLimitTruncates(t *testing.T) {
	s := Defaults()
	s.Iterations = 51.99
	if got := s.IterationLimit(); got != 51 {
		t.Errorf("IterationLimit() = %d, want 51", got)
	}
}
