package globe

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/decker502/dotglobe/pkg/config"
)

// Renderer 持有点集并把每帧画到 Surface 上
type Renderer struct {
	surface  Surface
	profile  *config.GlobeProfile
	palette  []color.RGBA
	rng      *rand.Rand
	viewport Viewport
	points   []Point
	buf      []ProjectedPoint

	// generation 每次重建点集加一
	generation int
}

// NewRenderer 创建渲染器，调色板无法解析时退回白色
func NewRenderer(surface Surface, profile *config.GlobeProfile, rng *rand.Rand) *Renderer {
	palette, err := profile.Colors()
	if err != nil {
		log.Printf("[Globe] Warning: invalid palette: %v (using white)", err)
		palette = nil
	}
	return &Renderer{
		surface: surface,
		profile: profile,
		palette: palette,
		rng:     rng,
	}
}

// Resize 按新的画布尺寸重建视口和整组点，旧点集丢弃
func (r *Renderer) Resize(width, height, dpr float64) {
	r.viewport = NewViewport(width, height, dpr, r.profile)
	w, h := r.viewport.DeviceSize()
	r.surface.Resize(w, h)

	r.points = GeneratePoints(r.profile.PointCount, r.profile, r.palette, r.rng)
	r.buf = make([]ProjectedPoint, 0, len(r.points))
	r.generation++

	log.Printf("[Globe] Resize %.0fx%.0f @%.2fx, radius=%.1f, points=%d",
		r.viewport.Width, r.viewport.Height, r.viewport.DPR, r.viewport.Radius, len(r.points))
}

// Draw 清空画布并按深度顺序画出所有点
func (r *Renderer) Draw(state AnimationState) {
	r.surface.Clear()

	params := ProjectParams{
		Rotation:    state.Rotation,
		Elapsed:     state.Elapsed,
		Viewport:    r.viewport,
		Perspective: r.profile.Perspective,
		Alpha:       r.profile.Alpha,
	}
	r.buf = Project(r.points, &params, r.buf)

	dpr := r.viewport.DPR
	glow := r.profile.GlowRadius * dpr
	for i := range r.buf {
		p := &r.buf[i]
		r.surface.FillCircle(p.X*dpr, p.Y*dpr, p.Size*dpr, p.Color, p.Alpha, glow)
	}
}

// Points 返回当前点集（只读）
func (r *Renderer) Points() []Point {
	return r.points
}

// Viewport 返回当前视口
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// Generation 返回点集重建次数
func (r *Renderer) Generation() int {
	return r.generation
}
