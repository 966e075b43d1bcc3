// Package main 是点阵地球的桌面端入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose              输出详细日志
//	--profile <name>       强制设备参数：desktop / mobile（会被保存）
//	--reduced-motion       减少动画：不启动地球（显式设置时会被保存）
//	--config <path>        使用外部配置文件替代嵌入的 data/globe.yaml
//	--seed <n>             点属性随机种子（默认使用当前时间）
//
// Controls:
//
//	F11 - 切换全屏
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/dotglobe/pkg/app"
	"github.com/decker502/dotglobe/pkg/config"
	"github.com/decker502/dotglobe/pkg/embedded"
)

var (
	verboseFlag       = flag.Bool("verbose", false, "Enable verbose logging")
	profileFlag       = flag.String("profile", "", "Force device profile: desktop or mobile")
	reducedMotionFlag = flag.Bool("reduced-motion", false, "Do not animate the globe")
	configFlag        = flag.String("config", "", "Path to a globe config file (default: embedded data/globe.yaml)")
	seedFlag          = flag.Int64("seed", 0, "Random seed for point attributes (0 = time based)")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Profile:    *profileFlag,
		Seed:       *seedFlag,
	}
	// 只有显式传入时才覆盖已保存的设置
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "reduced-motion" {
			cfg.ReducedMotion = reducedMotionFlag
		}
	})

	globeApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer globeApp.Close()

	ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(globeApp.Fullscreen())

	if err := ebiten.RunGame(globeApp); err != nil {
		log.Fatal(err)
	}
}
