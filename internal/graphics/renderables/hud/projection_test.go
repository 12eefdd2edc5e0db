package hud

import (
	"math"
	"testing"

	"mini-hud/internal/inventory"
)

func TestProjectionParameters(t *testing.T) {
	p := NewProjection(1024, 768, 17, 0.6)
	if p.Aspect != 0.75 {
		t.Errorf("aspect: got %v", p.Aspect)
	}
	if p.CellScale != 4.0/17 {
		t.Errorf("cell scale: got %v", p.CellScale)
	}

	m := p.Matrix()
	if got, want := m.At(0, 0), 4.0/17*0.6*0.75; math.Abs(float64(got)-want) > 1e-6 {
		t.Errorf("matrix x scale: got %v want %v", got, want)
	}
	if got, want := m.At(1, 1), 4.0/17*0.6; math.Abs(float64(got)-want) > 1e-6 {
		t.Errorf("matrix y scale: got %v want %v", got, want)
	}
	if m.At(2, 2) != 1 || m.At(3, 3) != 1 || m.At(0, 1) != 0 || m.At(3, 0) != 0 {
		t.Errorf("matrix should be diagonal, got %v", m)
	}

	off := p.Offset()
	if math.Abs(float64(off.X())+0.9) > 1e-6 || off.Y() != -1 || off.Z() != 0 || off.W() != 0 {
		t.Errorf("offset: got %v", off)
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	viewports := [][2]int{{1024, 768}, {800, 600}, {1920, 1080}, {600, 900}}
	for _, vp := range viewports {
		p := NewProjection(vp[0], vp[1], 17, 0.6)
		for r := 0; r < 14; r++ {
			for c := 0; c < 17; c++ {
				x, y := p.Pixel(float64(c)+0.5, float64(r)+0.5)
				got, ok := p.Cell(x, y, 14)
				if !ok || got != (inventory.Cell{Column: c, Row: r}) {
					t.Fatalf("viewport %v: centre of (%d,%d) at pixel (%.2f,%.2f) maps to %v, %v", vp, c, r, x, y, got, ok)
				}
			}
		}
	}
}

func TestProjectionOutside(t *testing.T) {
	p := NewProjection(1024, 768, 17, 0.6)
	tests := []struct {
		name   string
		gx, gy float64
	}{
		{"left of grid", -0.5, 3.5},
		{"right of grid", 17.5, 3.5},
		{"above grid", 5.5, 14.5},
		{"below grid", 5.5, -0.5},
	}
	for _, tt := range tests {
		x, y := p.Pixel(tt.gx, tt.gy)
		if c, ok := p.Cell(x, y, 14); ok {
			t.Errorf("%s: unexpected hit %v", tt.name, c)
		}
	}
	if _, ok := p.Cell(-1e6, 1e6, 14); ok {
		t.Errorf("far away cursor should not hit")
	}
}

func TestProjectionInvalidViewport(t *testing.T) {
	for _, p := range []Projection{
		NewProjection(0, 0, 17, 0.6),
		NewProjection(1024, 0, 17, 0.6),
		NewProjection(1024, 768, 0, 0.6),
		NewProjection(1024, 768, 17, 0),
	} {
		if p.Valid() {
			t.Errorf("%+v should be invalid", p)
		}
		if _, ok := p.Cell(10, 10, 14); ok {
			t.Errorf("%+v should never hit", p)
		}
	}
}

func TestCursorNDC(t *testing.T) {
	p := NewProjection(1024, 768, 17, 0.6)
	x, y := p.CursorNDC(0, 0)
	if x != -1 || y != 1 {
		t.Errorf("top-left pixel: got (%v,%v)", x, y)
	}
	x, y = p.CursorNDC(512, 384)
	if x != 0 || y != 0 {
		t.Errorf("centre pixel: got (%v,%v)", x, y)
	}
}
