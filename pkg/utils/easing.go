package utils

// 插值与限幅工具
//
// 地球动画的"缓动拉近"是指数逼近：每帧移动剩余距离的固定比例，
// 有限帧内不会真正到达目标。

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach 向目标靠近剩余距离的 fraction 比例
// 语义上用于逐帧缓动
func Approach(current, target, fraction float64) float64 {
	return Lerp(current, target, fraction)
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
