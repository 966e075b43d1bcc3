package globe

import "math"

// Vec3 三维向量
type Vec3 struct {
	X, Y, Z float64
}

// Length 返回向量长度
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Scale 返回 v * s
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Rotation 绕 X 轴（竖直方向）和 Y 轴（水平方向）的旋转角（弧度）
type Rotation struct {
	X, Y float64
}

// Add 返回 r + o
func (r Rotation) Add(o Rotation) Rotation {
	return Rotation{X: r.X + o.X, Y: r.Y + o.Y}
}

// Rotate 先绕 X 轴旋转 ax，再绕 Y 轴旋转 ay
//
// X 轴:  y' = y·cos − z·sin,  z' = y·sin + z·cos
// Y 轴:  x' = x·cos + z·sin,  z' = −x·sin + z·cos
func Rotate(v Vec3, ax, ay float64) Vec3 {
	cosX, sinX := math.Cos(ax), math.Sin(ax)
	cosY, sinY := math.Cos(ay), math.Sin(ay)

	y1 := v.Y*cosX - v.Z*sinX
	z1 := v.Y*sinX + v.Z*cosX

	x2 := v.X*cosY + z1*sinY
	z2 := -v.X*sinY + z1*cosY

	return Vec3{X: x2, Y: y1, Z: z2}
}

// InverseRotate 撤销 Rotate(v, ax, ay)：先绕 Y 轴转 −ay，再绕 X 轴转 −ax
func InverseRotate(v Vec3, ax, ay float64) Vec3 {
	cosX, sinX := math.Cos(ax), math.Sin(ax)
	cosY, sinY := math.Cos(ay), math.Sin(ay)

	x1 := v.X*cosY - v.Z*sinY
	z1 := v.X*sinY + v.Z*cosY

	y2 := v.Y*cosX + z1*sinX
	z2 := -v.Y*sinX + z1*cosX

	return Vec3{X: x1, Y: y2, Z: z2}
}
