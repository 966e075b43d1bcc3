// Package app 提供地球动画应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/dotglobe/pkg/config"
	"github.com/decker502/dotglobe/pkg/embedded"
	"github.com/decker502/dotglobe/pkg/render"
	"github.com/decker502/dotglobe/pkg/settings"
	"github.com/decker502/dotglobe/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件路径，为空则使用嵌入的 data/globe.yaml
	ConfigPath string
	// Profile 强制设备参数（"desktop" / "mobile"），为空则读取设置或自动检测
	Profile string
	// ReducedMotion 非 nil 时覆盖并保存"减少动画"设置
	ReducedMotion *bool
	// Seed 点属性随机种子，0 表示使用当前时间
	Seed int64
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	host       *host
	surface    *render.EbitenSurface
	settings   *settings.Manager
	background color.RGBA
	start      time.Time

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	globeConfig := loadGlobeConfig(cfg.ConfigPath)

	store, err := settings.OpenStore(settings.AppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
	}
	settingsManager := settings.NewManager(store)

	if cfg.Profile != "" {
		if err := settingsManager.SetProfile(cfg.Profile); err != nil {
			return nil, fmt.Errorf("设备参数无效: %w", err)
		}
	}
	mobile := settingsManager.ResolveMobile(utils.IsMobile())
	profile := globeConfig.Profile(mobile)

	reduced := resolveReducedMotion(cfg.ReducedMotion, settingsManager)
	if cfg.ReducedMotion != nil || cfg.Profile != "" {
		if err := settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}
	if reduced {
		log.Printf("[App] Reduced motion preferred, globe hidden")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	surface := render.NewEbitenSurface()
	a := &App{
		host:       newHost(surface, profile, reduced, rand.New(rand.NewSource(seed))),
		surface:    surface,
		settings:   settingsManager,
		background: globeConfig.BackgroundColor(),
		start:      time.Now(),
	}

	log.Printf("[App] Profile: mobile=%v, points=%d, fps=%.0f", mobile, profile.PointCount, profile.TargetFPS)
	return a, nil
}

// loadGlobeConfig 加载配置，失败时回退到内置配置
func loadGlobeConfig(path string) *config.GlobeConfig {
	var (
		cfg *config.GlobeConfig
		err error
	)
	switch {
	case path != "":
		cfg, err = config.LoadGlobeConfig(path)
	case !embedded.IsInitialized():
		err = embedded.ErrNotInitialized
	case !embedded.Exists(config.GlobeConfigPath):
		err = fmt.Errorf("%s not embedded", config.GlobeConfigPath)
	default:
		var data []byte
		data, err = embedded.ReadFile(config.GlobeConfigPath)
		if err == nil {
			cfg, err = config.ParseGlobeConfig(data)
		}
		path = config.GlobeConfigPath
	}
	if err != nil {
		log.Printf("[Config] Warning: %v (using built-in defaults)", err)
		return config.DefaultGlobeConfig()
	}
	log.Printf("[Config] Loaded %s", path)
	return cfg
}

// resolveReducedMotion 优先级：启动参数 > 环境变量 > 已保存设置
func resolveReducedMotion(override *bool, sm *settings.Manager) bool {
	if override != nil {
		sm.SetReducedMotion(*override)
		return *override
	}
	if set, reduce := utils.PrefersReducedMotion(); set {
		return reduce
	}
	return sm.GetSettings().ReducedMotion
}

// now 返回自启动以来的毫秒数
func (a *App) now() float64 {
	return float64(time.Since(a.start).Microseconds()) / 1000
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	x, y := utils.GetPointerPosition()
	a.host.Update(frameInput{
		Now:     a.now(),
		CursorX: x,
		CursorY: y,
		Visible: !ebiten.IsWindowMinimized(),
	})
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settings.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次；地球像素只在被接受的帧上更新
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.background)
	if a.host.Active() {
		a.surface.DrawTo(screen)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时 letterbox 使用背景色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(a.background)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸（设备像素）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.host.Layout(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor(), a.now())
}

// Fullscreen 返回已保存的全屏设置
func (a *App) Fullscreen() bool {
	return a.settings.GetSettings().Fullscreen
}

// Close 停止动画，可重复调用
func (a *App) Close() {
	a.host.Dispose()
	log.Printf("[App] Closed")
}
