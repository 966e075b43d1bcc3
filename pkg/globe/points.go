package globe

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/decker502/dotglobe/pkg/config"
)

// goldenAngle 黄金角 π(3−√5)，螺线相邻点的经度增量
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

// Point 球面上的一个装饰点
//
// 所有字段在生成时确定，之后不再修改；尺寸变化时整组点重新生成。
type Point struct {
	// Position 单位球面上的位置
	Position Vec3
	// Phase 弹跳相位 [0, 2π)
	Phase float64
	// Amplitude 弹跳幅度
	Amplitude float64
	// Speed 弹跳频率
	Speed float64
	// Color 颜色（来自调色板）
	Color color.RGBA
	// BaseSize 基础半径（设备无关像素）
	BaseSize float64
}

// SpiralPosition 返回 n 个点的黄金角螺线中第 i 个点的位置
//
// 纬度 y = 1 − 2i/(n−1) 从北极严格递减到南极，
// 经度 φ = i·goldenAngle，面积均匀，两极不聚集。
// n == 1 时返回北极点。
func SpiralPosition(i, n int) Vec3 {
	if n <= 1 {
		return Vec3{Y: 1}
	}
	y := 1 - (float64(i)/float64(n-1))*2
	r := math.Sqrt(math.Max(0, 1-y*y))
	phi := float64(i) * goldenAngle
	return Vec3{
		X: math.Cos(phi) * r,
		Y: y,
		Z: math.Sin(phi) * r,
	}
}

// GeneratePoints 生成 n 个点
//
// 位置只由 n 和下标决定；相位、幅度、频率、颜色、尺寸由 rng 随机生成。
// palette 为空时使用白色。
func GeneratePoints(n int, profile *config.GlobeProfile, palette []color.RGBA, rng *rand.Rand) []Point {
	if n <= 0 {
		return nil
	}
	if len(palette) == 0 {
		palette = []color.RGBA{{R: 255, G: 255, B: 255, A: 255}}
	}

	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			Position:  SpiralPosition(i, n),
			Phase:     rng.Float64() * 2 * math.Pi,
			Amplitude: randIn(rng, profile.AmplitudeRange),
			Speed:     randIn(rng, profile.SpeedRange),
			Color:     palette[rng.Intn(len(palette))],
			BaseSize:  randIn(rng, profile.SizeRange),
		}
	}
	return points
}

func randIn(rng *rand.Rand, r config.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
