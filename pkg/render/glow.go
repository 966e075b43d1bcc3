// Package render 提供 globe.Surface 的两种实现：
// EbitenSurface 用于窗口实时绘制，PNGSurface 基于 gogpu/gg 软件光栅化离屏导出。
package render

import "image/color"

// 外发光参数
const (
	// GlowOpacity 发光层最内侧相对点本体的不透明度
	GlowOpacity = 0.45
	// glowRings 分层近似模糊时的层数
	glowRings = 2
)

// GlowRing 发光层中的一圈
type GlowRing struct {
	Radius float64
	Alpha  float64
}

// GlowRings 返回从外到内的发光圈，最后画的一圈最亮
// glow <= 0 时没有发光层
func GlowRings(radius, glow, alpha float64) []GlowRing {
	if glow <= 0 {
		return nil
	}
	rings := make([]GlowRing, 0, glowRings)
	for i := glowRings; i >= 1; i-- {
		f := float64(i) / glowRings
		rings = append(rings, GlowRing{
			Radius: radius + glow*f,
			Alpha:  alpha * GlowOpacity * (1 - f/2),
		})
	}
	return rings
}

// withAlpha 返回非预乘颜色，alpha ∈ [0,1]
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}
