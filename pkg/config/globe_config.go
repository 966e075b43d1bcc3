package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GlobeConfig 地球动画配置
//
// 包含桌面端和移动端两套参数（点数、帧率、调色板、尺寸等）。
// 设备类型在启动时确定，之后不再切换。
//
// 配置文件位置: data/globe.yaml
type GlobeConfig struct {
	// Background 画面背景色（十六进制，如 "#0b1d2a"）
	Background string `yaml:"background"`

	// Desktop 桌面端参数
	Desktop GlobeProfile `yaml:"desktop"`

	// Mobile 移动端参数
	Mobile GlobeProfile `yaml:"mobile"`
}

// GlobeProfile 单个设备类型的地球参数
type GlobeProfile struct {
	// PointCount 球面点数
	PointCount int `yaml:"pointCount"`

	// TargetFPS 目标帧率（受限设备更低）
	TargetFPS float64 `yaml:"targetFPS"`

	// Interactive 是否响应指针移动（仅桌面端）
	Interactive bool `yaml:"interactive"`

	// Palette 点颜色调色板（十六进制），每个点随机取一个，可重复
	Palette []string `yaml:"palette"`

	// SizeRange 点基础半径范围（设备无关像素）
	SizeRange Range `yaml:"sizeRange"`

	// AmplitudeRange 弹跳幅度范围
	AmplitudeRange Range `yaml:"amplitudeRange"`

	// SpeedRange 弹跳频率范围
	SpeedRange Range `yaml:"speedRange"`

	// AutoSpin 每帧自动旋转增量（弧度）
	AutoSpin Axis `yaml:"autoSpin"`

	// PointerSensitivity 指针偏移到目标旋转的灵敏度（弧度）
	// X 对应竖直方向指针偏移，Y 对应水平方向指针偏移
	PointerSensitivity Axis `yaml:"pointerSensitivity"`

	// Ease 每帧向目标旋转靠近的比例
	Ease float64 `yaml:"ease"`

	// TimeStep 每帧 elapsedTime 增量
	TimeStep float64 `yaml:"timeStep"`

	// Perspective 透视焦距（像素）
	Perspective float64 `yaml:"perspective"`

	// RadiusFactor 球半径占画布短边的比例
	RadiusFactor float64 `yaml:"radiusFactor"`

	// GlowRadius 点外发光半径（像素）
	GlowRadius float64 `yaml:"glowRadius"`

	// Alpha 深度透明度参数
	Alpha AlphaConfig `yaml:"alpha"`

	// PointerThrottleMs 指针事件节流间隔（毫秒）
	PointerThrottleMs float64 `yaml:"pointerThrottleMs"`

	// IdleTimeoutMs 指针静止多久后目标旋转回落到当前旋转（毫秒）
	IdleTimeoutMs float64 `yaml:"idleTimeoutMs"`

	// ResizeDebounceMs 窗口尺寸变化防抖时间（毫秒）
	ResizeDebounceMs float64 `yaml:"resizeDebounceMs"`

	// MaxDevicePixelRatio 设备像素比上限（下限固定为 1）
	MaxDevicePixelRatio float64 `yaml:"maxDevicePixelRatio"`
}

// Range 闭开区间 [Min, Max)
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Axis 绕 X/Y 轴的一对数值
type Axis struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// AlphaConfig 透明度 = clamp(Base + Gain * z/radius, Min, Max)
type AlphaConfig struct {
	Base float64 `yaml:"base"`
	Gain float64 `yaml:"gain"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

// FrameIntervalMs 返回两帧之间的最小间隔（毫秒）
func (p *GlobeProfile) FrameIntervalMs() float64 {
	return 1000.0 / p.TargetFPS
}

// Colors 解析调色板为 color.RGBA 列表
func (p *GlobeProfile) Colors() ([]color.RGBA, error) {
	colors := make([]color.RGBA, 0, len(p.Palette))
	for _, hex := range p.Palette {
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// Profile 根据设备类型返回对应参数
func (c *GlobeConfig) Profile(mobile bool) *GlobeProfile {
	if mobile {
		return &c.Mobile
	}
	return &c.Desktop
}

// BackgroundColor 返回背景色，解析失败时返回黑色
func (c *GlobeConfig) BackgroundColor() color.RGBA {
	bg, err := ParseHexColor(c.Background)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return bg
}

// LoadGlobeConfig 加载地球动画配置
//
// 参数:
//   - path: 配置文件路径（如 "data/globe.yaml"）
//
// 返回:
//   - *GlobeConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadGlobeConfig(path string) (*GlobeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read globe config: %w", err)
	}
	return ParseGlobeConfig(data)
}

// ParseGlobeConfig 从 YAML 数据解析并验证配置
// 用于从 embed.FS 读取的数据
func ParseGlobeConfig(data []byte) (*GlobeConfig, error) {
	var config GlobeConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse globe config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid globe config: %w", err)
	}

	return &config, nil
}

// Validate 验证配置有效性
func (c *GlobeConfig) Validate() error {
	if c.Background != "" {
		if _, err := ParseHexColor(c.Background); err != nil {
			return fmt.Errorf("background: %w", err)
		}
	}
	if err := c.Desktop.Validate(); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	if err := c.Mobile.Validate(); err != nil {
		return fmt.Errorf("mobile: %w", err)
	}
	return nil
}

// Validate 验证单个设备参数
//
// 检查项：
//   - 点数、帧率、焦距、半径比例为正
//   - 各范围 Min <= Max
//   - 调色板非空且每项可解析
//   - 透明度下限 <= 上限
func (p *GlobeProfile) Validate() error {
	if p.PointCount < 1 {
		return fmt.Errorf("pointCount must be >= 1, got %d", p.PointCount)
	}
	if p.TargetFPS <= 0 {
		return fmt.Errorf("targetFPS must be > 0, got %.2f", p.TargetFPS)
	}
	if p.Perspective <= 0 {
		return fmt.Errorf("perspective must be > 0, got %.2f", p.Perspective)
	}
	if p.RadiusFactor <= 0 || p.RadiusFactor > 0.5 {
		return fmt.Errorf("radiusFactor must be in (0, 0.5], got %.3f", p.RadiusFactor)
	}
	if p.Ease < 0 || p.Ease > 1 {
		return fmt.Errorf("ease must be in [0, 1], got %.3f", p.Ease)
	}
	if p.MaxDevicePixelRatio < 1 {
		return fmt.Errorf("maxDevicePixelRatio must be >= 1, got %.2f", p.MaxDevicePixelRatio)
	}

	ranges := map[string]Range{
		"sizeRange":      p.SizeRange,
		"amplitudeRange": p.AmplitudeRange,
		"speedRange":     p.SpeedRange,
	}
	for name, r := range ranges {
		if r.Min > r.Max {
			return fmt.Errorf("%s invalid: min(%.3f) > max(%.3f)", name, r.Min, r.Max)
		}
	}
	if p.SizeRange.Min <= 0 {
		return fmt.Errorf("sizeRange min must be > 0, got %.3f", p.SizeRange.Min)
	}
	if p.AmplitudeRange.Min < 0 || p.AmplitudeRange.Max >= 1 {
		return fmt.Errorf("amplitudeRange must be within [0, 1), got [%.3f, %.3f)",
			p.AmplitudeRange.Min, p.AmplitudeRange.Max)
	}

	if p.Alpha.Min > p.Alpha.Max {
		return fmt.Errorf("alpha invalid: min(%.2f) > max(%.2f)", p.Alpha.Min, p.Alpha.Max)
	}

	if len(p.Palette) == 0 {
		return fmt.Errorf("palette must not be empty")
	}
	if _, err := p.Colors(); err != nil {
		return fmt.Errorf("palette: %w", err)
	}

	return nil
}

// ParseHexColor 解析 "#rrggbb" / "#rgb" 形式的颜色（"#" 可省略）
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
