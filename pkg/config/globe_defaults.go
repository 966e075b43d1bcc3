package config

// 窗口配置常量
const (
	// DefaultWindowWidth 默认窗口宽度（设备无关像素）
	DefaultWindowWidth = 960

	// DefaultWindowHeight 默认窗口高度（设备无关像素）
	DefaultWindowHeight = 640

	// WindowTitle 窗口标题
	WindowTitle = "Dot Globe"

	// GlobeConfigPath 内置配置文件路径（位于 embed.FS 中）
	GlobeConfigPath = "data/globe.yaml"
)

// DefaultGlobeConfig 返回内置配置
//
// 与 data/globe.yaml 保持一致；配置文件缺失或无效时作为回退。
func DefaultGlobeConfig() *GlobeConfig {
	return &GlobeConfig{
		Background: "#0b1d2a",
		Desktop: GlobeProfile{
			PointCount:  600,
			TargetFPS:   45,
			Interactive: true,
			Palette: []string{
				"#2e7d32", "#4caf50", "#8bc34a", "#ffd700",
				"#4a90e2", "#1976d2", "#ff9800", "#ffffff",
			},
			SizeRange:           Range{Min: 1.5, Max: 2.3},
			AmplitudeRange:      Range{Min: 0.03, Max: 0.08},
			SpeedRange:          Range{Min: 0.5, Max: 1.3},
			AutoSpin:            Axis{X: 0.002, Y: 0.006},
			PointerSensitivity:  Axis{X: 0.1, Y: 0.2},
			Ease:                0.03,
			TimeStep:            0.012,
			Perspective:         600,
			RadiusFactor:        0.4,
			GlowRadius:          2,
			Alpha:               AlphaConfig{Base: 0.8, Gain: 0.2, Min: 0.4, Max: 1},
			PointerThrottleMs:   32,
			IdleTimeoutMs:       3000,
			ResizeDebounceMs:    250,
			MaxDevicePixelRatio: 2,
		},
		Mobile: GlobeProfile{
			PointCount:  300,
			TargetFPS:   30,
			Interactive: false,
			Palette: []string{
				"#4a90e2", "#2e7d32", "#8bc34a", "#ffd700",
				"#ff9800", "#ffffff",
			},
			SizeRange:           Range{Min: 1.2, Max: 1.8},
			AmplitudeRange:      Range{Min: 0.03, Max: 0.08},
			SpeedRange:          Range{Min: 0.5, Max: 1.3},
			AutoSpin:            Axis{X: 0.001, Y: 0.004},
			PointerSensitivity:  Axis{X: 0.1, Y: 0.2},
			Ease:                0.03,
			TimeStep:            0.012,
			Perspective:         500,
			RadiusFactor:        0.35,
			GlowRadius:          2,
			Alpha:               AlphaConfig{Base: 0.8, Gain: 0.2, Min: 0.4, Max: 1},
			PointerThrottleMs:   32,
			IdleTimeoutMs:       3000,
			ResizeDebounceMs:    250,
			MaxDevicePixelRatio: 2,
		},
	}
}
