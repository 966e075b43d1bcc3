package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface 以离屏 ebiten.Image 作为像素缓冲
//
// 帧循环只在被接受的帧上重绘，ebiten 每帧清屏，
// 所以先画到离屏图像，再由 DrawTo 每帧贴到屏幕上。
type EbitenSurface struct {
	img *ebiten.Image
}

// NewEbitenSurface 创建尚未分配像素的 Surface，首次 Resize 时分配
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{}
}

// Size 返回像素尺寸
func (s *EbitenSurface) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize 重新分配离屏图像，尺寸不变时保留原图
func (s *EbitenSurface) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if w, h := s.Size(); w == width && h == height {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(width, height)
}

// Clear 清空为透明
func (s *EbitenSurface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

// FillCircle 先画发光圈，再画点本体
func (s *EbitenSurface) FillCircle(x, y, radius float64, clr color.RGBA, alpha, glow float64) {
	if s.img == nil || radius <= 0 {
		return
	}
	cx, cy := float32(x), float32(y)
	for _, ring := range GlowRings(radius, glow, alpha) {
		vector.DrawFilledCircle(s.img, cx, cy, float32(ring.Radius), withAlpha(clr, ring.Alpha), true)
	}
	vector.DrawFilledCircle(s.img, cx, cy, float32(radius), withAlpha(clr, alpha), true)
}

// Image 返回离屏图像
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.img
}

// DrawTo 把离屏图像缩放贴到 dst 上
// 防抖期间窗口尺寸已变而缓冲未重建时，图像被拉伸
func (s *EbitenSurface) DrawTo(dst *ebiten.Image) {
	if s.img == nil {
		return
	}
	sw, sh := s.Size()
	db := dst.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(db.Dx())/float64(sw), float64(db.Dy())/float64(sh))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(s.img, op)
}
