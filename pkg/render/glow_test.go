package render

import (
	"image/color"
	"testing"

	"github.com/decker502/dotglobe/pkg/globe"
)

var (
	_ globe.Surface = (*PNGSurface)(nil)
	_ globe.Surface = (*EbitenSurface)(nil)
)

func TestGlowRings(t *testing.T) {
	rings := GlowRings(2, 2, 1)
	if len(rings) != glowRings {
		t.Fatalf("got %d rings, want %d", len(rings), glowRings)
	}

	// 从外到内：半径递减，不透明度递增
	for i := 1; i < len(rings); i++ {
		if rings[i].Radius >= rings[i-1].Radius {
			t.Errorf("ring %d radius %v not inside ring %d (%v)", i, rings[i].Radius, i-1, rings[i-1].Radius)
		}
		if rings[i].Alpha <= rings[i-1].Alpha {
			t.Errorf("ring %d alpha %v not brighter than ring %d (%v)", i, rings[i].Alpha, i-1, rings[i-1].Alpha)
		}
	}
	if rings[0].Radius != 4 {
		t.Errorf("outer ring radius = %v, want radius+glow = 4", rings[0].Radius)
	}
	for _, r := range rings {
		if r.Alpha > GlowOpacity {
			t.Errorf("ring alpha %v exceeds GlowOpacity", r.Alpha)
		}
	}
}

func TestGlowRingsDisabled(t *testing.T) {
	if rings := GlowRings(2, 0, 1); rings != nil {
		t.Errorf("GlowRings with glow=0 = %v, want nil", rings)
	}
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	tests := []struct {
		alpha float64
		want  uint8
	}{
		{1, 255},
		{0.4, 102},
		{0, 0},
		{-1, 0},
		{2, 255},
	}
	for _, tt := range tests {
		got := withAlpha(c, tt.alpha)
		if got.A != tt.want || got.R != 10 || got.G != 20 || got.B != 30 {
			t.Errorf("withAlpha(%v) = %v, want A=%d", tt.alpha, got, tt.want)
		}
	}
}
