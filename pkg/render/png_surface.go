package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// PNGSurface 基于 gogpu/gg 软件光栅化的离屏 Surface
//
// 发光用径向渐变画出，比 EbitenSurface 的分层圆更接近 canvas 的 shadowBlur。
type PNGSurface struct {
	dc  *gg.Context
	err error
}

// NewPNGSurface 创建指定尺寸的离屏画布
func NewPNGSurface(width, height int) *PNGSurface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &PNGSurface{dc: gg.NewContext(width, height)}
}

// Size 返回像素尺寸
func (s *PNGSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Resize 调整画布尺寸
func (s *PNGSurface) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if err := s.dc.Resize(width, height); err != nil {
		s.setErr(fmt.Errorf("resize %dx%d: %w", width, height, err))
	}
}

// Clear 清空为透明
func (s *PNGSurface) Clear() {
	s.dc.Clear()
}

// FillCircle 画径向渐变发光和点本体
func (s *PNGSurface) FillCircle(x, y, radius float64, clr color.RGBA, alpha, glow float64) {
	if radius <= 0 {
		return
	}
	base := gg.FromColor(clr)

	if glow > 0 {
		inner, outer := base, base
		inner.A = alpha * GlowOpacity
		outer.A = 0
		brush := gg.NewRadialGradientBrush(x, y, radius, radius+glow).
			AddColorStop(0, inner).
			AddColorStop(1, outer)
		s.dc.SetFillBrush(brush)
		s.dc.DrawCircle(x, y, radius+glow)
		if err := s.dc.Fill(); err != nil {
			s.setErr(fmt.Errorf("fill glow: %w", err))
		}
	}

	s.dc.SetRGBA(base.R, base.G, base.B, alpha)
	s.dc.DrawCircle(x, y, radius)
	if err := s.dc.Fill(); err != nil {
		s.setErr(fmt.Errorf("fill circle: %w", err))
	}
}

// Image 返回当前像素
func (s *PNGSurface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG 写入 PNG 文件
func (s *PNGSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// EncodePNG 以 PNG 编码写入 w
func (s *PNGSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Err 返回第一次绘制错误
func (s *PNGSurface) Err() error {
	return s.err
}

// Close 释放画布
func (s *PNGSurface) Close() error {
	return s.dc.Close()
}

func (s *PNGSurface) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}
