package render

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestPNGSurfaceFillCircle(t *testing.T) {
	s := NewPNGSurface(64, 64)
	defer s.Close()

	s.Clear()
	s.FillCircle(32, 32, 8, color.RGBA{R: 255, G: 215, A: 255}, 1, 3)
	if err := s.Err(); err != nil {
		t.Fatalf("draw error: %v", err)
	}

	img := s.Image()
	_, _, _, centerA := img.At(32, 32).RGBA()
	if centerA == 0 {
		t.Error("center pixel is transparent after FillCircle")
	}
	_, _, _, cornerA := img.At(0, 0).RGBA()
	if cornerA != 0 {
		t.Errorf("corner pixel alpha = %d, want 0", cornerA)
	}
}

func TestPNGSurfaceZeroRadiusIsNoop(t *testing.T) {
	s := NewPNGSurface(16, 16)
	defer s.Close()

	s.FillCircle(8, 8, 0, color.RGBA{R: 255, A: 255}, 1, 2)
	_, _, _, a := s.Image().At(8, 8).RGBA()
	if a != 0 {
		t.Errorf("zero-radius circle drew pixels (alpha %d)", a)
	}
}

func TestPNGSurfaceResizeAndEncode(t *testing.T) {
	s := NewPNGSurface(10, 10)
	defer s.Close()

	s.Resize(40, 30)
	if w, h := s.Size(); w != 40 || h != 30 {
		t.Fatalf("Size() = %dx%d, want 40x30", w, h)
	}

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("decoded size = %dx%d, want 40x30", b.Dx(), b.Dy())
	}
}

func TestPNGSurfaceSavePNG(t *testing.T) {
	s := NewPNGSurface(8, 8)
	defer s.Close()

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}

func TestNewPNGSurfaceClampsSize(t *testing.T) {
	s := NewPNGSurface(0, -5)
	defer s.Close()
	if w, h := s.Size(); w != 1 || h != 1 {
		t.Errorf("Size() = %dx%d, want 1x1", w, h)
	}
}
