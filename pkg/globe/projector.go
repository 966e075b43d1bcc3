package globe

import (
	"image/color"
	"math"
	"sort"

	"github.com/decker502/dotglobe/pkg/config"
	"github.com/decker502/dotglobe/pkg/utils"
)

// maxDepthRatio 球面最前端（含最大弹跳）深度与焦距之比的上限
// 透视分母不小于焦距的 0.2 倍，前端点最多放大 5 倍
const maxDepthRatio = 0.8

// Viewport 画布几何参数（设备无关像素）
type Viewport struct {
	Width, Height float64
	// DPR 设备像素比，已限制在 [1, MaxDevicePixelRatio]
	DPR float64
	// CenterX, CenterY 画布中心
	CenterX, CenterY float64
	// Radius 球的显示半径
	Radius float64
}

// NewViewport 根据画布尺寸和设备像素比计算几何参数
func NewViewport(width, height, dpr float64, profile *config.GlobeProfile) Viewport {
	maxDPR := profile.MaxDevicePixelRatio
	if maxDPR < 1 {
		maxDPR = 1
	}
	width = math.Floor(math.Max(0, width))
	height = math.Floor(math.Max(0, height))
	return Viewport{
		Width:   width,
		Height:  height,
		DPR:     utils.Clamp(dpr, 1, maxDPR),
		CenterX: width / 2,
		CenterY: height / 2,
		Radius:  math.Min(math.Min(width, height)*profile.RadiusFactor, MaxRadius(profile)),
	}
}

// MaxRadius 返回球显示半径的上限
//
// 大窗口上 min(w,h)·RadiusFactor 可能接近甚至超过焦距，
// 半径被限制为 Radius·(1+最大弹跳幅度) ≤ maxDepthRatio·Perspective。
func MaxRadius(profile *config.GlobeProfile) float64 {
	return profile.Perspective * maxDepthRatio / (1 + math.Max(0, profile.AmplitudeRange.Max))
}

// DeviceSize 返回设备像素尺寸
func (v Viewport) DeviceSize() (int, int) {
	return int(math.Floor(v.Width * v.DPR)), int(math.Floor(v.Height * v.DPR))
}

// ProjectedPoint 投影后的点（设备无关像素）
type ProjectedPoint struct {
	X, Y float64
	// Z 旋转并弹跳后的深度，越大越靠近观察者
	Z     float64
	Size  float64
	Alpha float64
	Color color.RGBA
}

// ProjectParams 投影所需的帧参数
type ProjectParams struct {
	Rotation    Rotation
	Elapsed     float64
	Viewport    Viewport
	Perspective float64
	Alpha       config.AlphaConfig
}

// Bounce 返回点在 elapsed 时刻的径向缩放 1 + amp·sin(elapsed·speed + phase)
func Bounce(p *Point, elapsed float64) float64 {
	return 1 + p.Amplitude*math.Sin(elapsed*p.Speed+p.Phase)
}

// ProjectPoint 旋转、弹跳、透视投影单个点
func ProjectPoint(p *Point, params *ProjectParams) ProjectedPoint {
	vp := &params.Viewport
	bounce := Bounce(p, params.Elapsed)
	r := Rotate(p.Position, params.Rotation.X, params.Rotation.Y)
	world := r.Scale(vp.Radius * bounce)

	scale := params.Perspective / (params.Perspective - world.Z)

	alpha := params.Alpha.Base
	if vp.Radius > 0 {
		alpha += world.Z / vp.Radius * params.Alpha.Gain
	}

	return ProjectedPoint{
		X:     world.X*scale + vp.CenterX,
		Y:     world.Y*scale + vp.CenterY,
		Z:     world.Z,
		Size:  p.BaseSize * scale,
		Alpha: utils.Clamp(alpha, params.Alpha.Min, params.Alpha.Max),
		Color: p.Color,
	}
}

// Project 投影整组点并按深度排序
//
// dst 用于复用内存，可为 nil。
func Project(points []Point, params *ProjectParams, dst []ProjectedPoint) []ProjectedPoint {
	dst = dst[:0]
	for i := range points {
		dst = append(dst, ProjectPoint(&points[i], params))
	}
	DepthSort(dst)
	return dst
}

// DepthSort 按 Z 升序排列（最远的先画）
// 没有深度缓冲，遮挡完全依赖这个顺序
func DepthSort(points []ProjectedPoint) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Z < points[j].Z
	})
}
