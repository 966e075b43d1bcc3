package globe

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func TestGeneratePointsCountAndUnitLength(t *testing.T) {
	profile := desktopProfile()
	palette, err := profile.Colors()
	if err != nil {
		t.Fatalf("Colors() error: %v", err)
	}

	for _, n := range []int{1, 2, 3, 4, 17, 300, 600, 1000} {
		points := GeneratePoints(n, profile, palette, rand.New(rand.NewSource(int64(n))))
		if len(points) != n {
			t.Fatalf("N=%d: got %d points", n, len(points))
		}
		for i, p := range points {
			if l := p.Position.Length(); math.Abs(l-1) > 1e-9 {
				t.Errorf("N=%d i=%d: |v| = %v, want 1", n, i, l)
			}
		}
	}
}

func TestGeneratePointsEmpty(t *testing.T) {
	if got := GeneratePoints(0, desktopProfile(), nil, rand.New(rand.NewSource(1))); len(got) != 0 {
		t.Errorf("N=0: got %d points, want 0", len(got))
	}
}

func TestPositionsIndependentOfRandomness(t *testing.T) {
	profile := desktopProfile()
	a := GeneratePoints(50, profile, nil, rand.New(rand.NewSource(1)))
	b := GeneratePoints(50, profile, nil, rand.New(rand.NewSource(99)))

	for i := range a {
		if a[i].Position != b[i].Position {
			t.Errorf("i=%d: positions differ across seeds: %v vs %v", i, a[i].Position, b[i].Position)
		}
		if a[i].Position != SpiralPosition(i, 50) {
			t.Errorf("i=%d: position not equal to SpiralPosition", i)
		}
	}
}

func TestLatitudeStrictlyDecreasing(t *testing.T) {
	for _, n := range []int{2, 4, 100, 600} {
		prev := math.Inf(1)
		for i := 0; i < n; i++ {
			y := SpiralPosition(i, n).Y
			if y >= prev {
				t.Fatalf("N=%d i=%d: latitude %v not below previous %v", n, i, y, prev)
			}
			prev = y
		}
	}
}

func TestSpiralFourPoints(t *testing.T) {
	wantY := []float64{1, 1.0 / 3, -1.0 / 3, -1}
	for i, want := range wantY {
		got := SpiralPosition(i, 4)
		if math.Abs(got.Y-want) > 1e-12 {
			t.Errorf("i=%d: y = %v, want %v", i, got.Y, want)
		}
	}

	// 两极点经向半径为 0
	north := SpiralPosition(0, 4)
	if math.Abs(north.X) > 1e-12 || math.Abs(north.Z) > 1e-12 {
		t.Errorf("north pole off axis: %v", north)
	}
}

func TestSpiralSinglePoint(t *testing.T) {
	if got := SpiralPosition(0, 1); got != (Vec3{Y: 1}) {
		t.Errorf("SpiralPosition(0, 1) = %v, want north pole", got)
	}
}

func TestSpiralUsesGoldenAngle(t *testing.T) {
	// 第 1 个点的经度等于黄金角
	n := 10
	p := SpiralPosition(1, n)
	phi := math.Atan2(p.Z, p.X)
	want := math.Pi * (3 - math.Sqrt(5))
	if math.Abs(phi-want) > 1e-12 {
		t.Errorf("longitude of i=1: %v, want %v", phi, want)
	}
}

func TestPointAttributesWithinRanges(t *testing.T) {
	profile := mobileProfile()
	palette, err := profile.Colors()
	if err != nil {
		t.Fatalf("Colors() error: %v", err)
	}
	inPalette := make(map[color.RGBA]bool, len(palette))
	for _, c := range palette {
		inPalette[c] = true
	}

	points := GeneratePoints(profile.PointCount, profile, palette, rand.New(rand.NewSource(7)))
	for i, p := range points {
		if p.Phase < 0 || p.Phase >= 2*math.Pi {
			t.Errorf("i=%d: phase %v out of [0, 2π)", i, p.Phase)
		}
		if p.Amplitude < profile.AmplitudeRange.Min || p.Amplitude > profile.AmplitudeRange.Max {
			t.Errorf("i=%d: amplitude %v out of range", i, p.Amplitude)
		}
		if p.Speed < profile.SpeedRange.Min || p.Speed > profile.SpeedRange.Max {
			t.Errorf("i=%d: speed %v out of range", i, p.Speed)
		}
		if p.BaseSize < profile.SizeRange.Min || p.BaseSize > profile.SizeRange.Max {
			t.Errorf("i=%d: size %v out of range", i, p.BaseSize)
		}
		if !inPalette[p.Color] {
			t.Errorf("i=%d: color %v not in palette", i, p.Color)
		}
	}
}
