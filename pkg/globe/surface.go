package globe

import "image/color"

// Surface 绘制目标，坐标单位为设备像素
type Surface interface {
	// Size 返回当前像素尺寸
	Size() (width, height int)
	// Resize 重新分配像素缓冲
	Resize(width, height int)
	// Clear 清空为透明
	Clear()
	// FillCircle 画一个带柔和外发光的实心圆
	// alpha ∈ [0,1] 为整体不透明度，glow 为发光半径
	FillCircle(x, y, radius float64, clr color.RGBA, alpha, glow float64)
}
