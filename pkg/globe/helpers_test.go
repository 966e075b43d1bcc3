package globe

import (
	"image/color"
	"math/rand"

	"github.com/decker502/dotglobe/pkg/config"
)

// recordingSurface 记录每次绘制调用的测试用 Surface
type recordingSurface struct {
	width, height int
	clears        int
	resizes       int
	circles       []circle
}

type circle struct {
	x, y, r, alpha, glow float64
	clr                  color.RGBA
}

func (s *recordingSurface) Size() (int, int) { return s.width, s.height }

func (s *recordingSurface) Resize(w, h int) {
	s.width, s.height = w, h
	s.resizes++
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
}

func (s *recordingSurface) FillCircle(x, y, r float64, clr color.RGBA, alpha, glow float64) {
	s.circles = append(s.circles, circle{x: x, y: y, r: r, alpha: alpha, glow: glow, clr: clr})
}

// countingObserver 记录 Disconnect 调用次数
type countingObserver struct {
	disconnects int
}

func (o *countingObserver) Disconnect() { o.disconnects++ }

func desktopProfile() *config.GlobeProfile {
	p := config.DefaultGlobeConfig().Desktop
	return &p
}

func mobileProfile() *config.GlobeProfile {
	p := config.DefaultGlobeConfig().Mobile
	return &p
}

func newTestAnimator(profile *config.GlobeProfile, opts ...Option) (*Animator, *FrameQueue, *recordingSurface) {
	surface := &recordingSurface{}
	queue := NewFrameQueue()
	opts = append([]Option{WithRand(rand.New(rand.NewSource(1)))}, opts...)
	a := New(surface, profile, queue, opts...)
	a.Handle(Resized{Width: 800, Height: 600, DPR: 1})
	return a, queue, surface
}
