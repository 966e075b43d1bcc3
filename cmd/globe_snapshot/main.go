// Package main 将地球动画逐帧渲染为 PNG，用于离线检查画面
//
// Usage:
//
//	go run ./cmd/globe_snapshot [flags]
//
// Flags:
//
//	--frames <n>        输出的帧数 (default: 1)
//	--out <dir>         输出目录 (default: "snapshots")
//	--width <px>        画布宽度 (default: 960)
//	--height <px>       画布高度 (default: 640)
//	--dpr <ratio>       设备像素比 (default: 1)
//	--mobile            使用移动端参数
//	--seed <n>          点属性随机种子 (default: 1)
//	--config <path>     配置文件 (default: data/globe.yaml)
//	--verbose           输出详细日志
//
// 帧回调由 60Hz 的合成时钟驱动，与实际运行时一样受目标帧率限制，
// 每个被接受的帧保存为 frame_0001.png、frame_0002.png ...
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/decker502/dotglobe/pkg/config"
	"github.com/decker502/dotglobe/pkg/globe"
	"github.com/decker502/dotglobe/pkg/render"
)

// tickMs 合成时钟步长（60Hz）
const tickMs = 1000.0 / 60.0

var (
	framesFlag  = flag.Int("frames", 1, "Number of frames to render")
	outFlag     = flag.String("out", "snapshots", "Output directory")
	widthFlag   = flag.Int("width", config.DefaultWindowWidth, "Canvas width in CSS pixels")
	heightFlag  = flag.Int("height", config.DefaultWindowHeight, "Canvas height in CSS pixels")
	dprFlag     = flag.Float64("dpr", 1, "Device pixel ratio")
	mobileFlag  = flag.Bool("mobile", false, "Use the mobile profile")
	seedFlag    = flag.Int64("seed", 1, "Random seed for point attributes")
	configFlag  = flag.String("config", config.GlobeConfigPath, "Path to globe config")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

// options 一次渲染的参数
type options struct {
	Frames  int
	OutDir  string
	Width   int
	Height  int
	DPR     float64
	Profile *config.GlobeProfile
	Seed    int64
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGlobeConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using built-in defaults)\n", err)
		cfg = config.DefaultGlobeConfig()
	}

	written, err := snapshot(options{
		Frames:  *framesFlag,
		OutDir:  *outFlag,
		Width:   *widthFlag,
		Height:  *heightFlag,
		DPR:     *dprFlag,
		Profile: cfg.Profile(*mobileFlag),
		Seed:    *seedFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d frame(s) to %s\n", written, *outFlag)
}

// snapshot 渲染 opts.Frames 个被接受的帧，返回实际写出的文件数
func snapshot(opts options) (int, error) {
	if opts.Frames <= 0 {
		return 0, fmt.Errorf("frames must be positive, got %d", opts.Frames)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return 0, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output dir: %w", err)
	}

	surface := render.NewPNGSurface(opts.Width, opts.Height)
	defer surface.Close()

	var (
		written  int
		writeErr error
	)
	hook := func(frame int, _ globe.AnimationState) {
		if writeErr != nil {
			return
		}
		path := filepath.Join(opts.OutDir, fmt.Sprintf("frame_%04d.png", frame))
		if err := surface.SavePNG(path); err != nil {
			writeErr = err
			return
		}
		written++
	}

	queue := globe.NewFrameQueue()
	animator := globe.New(surface, opts.Profile, queue,
		globe.WithRand(rand.New(rand.NewSource(opts.Seed))),
		globe.WithFrameHook(hook),
	)
	animator.Handle(globe.Resized{
		Width:  float64(opts.Width),
		Height: float64(opts.Height),
		DPR:    opts.DPR,
	})
	animator.Start()
	defer animator.Dispose()

	// 每个被接受的帧至多需要 interval/tick+1 个 tick，留出余量防止死循环
	maxTicks := opts.Frames * (int(opts.Profile.FrameIntervalMs()/tickMs) + 2)
	for tick := 1; tick <= maxTicks && written < opts.Frames && writeErr == nil; tick++ {
		queue.Fire(float64(tick) * tickMs)
	}

	if writeErr != nil {
		return written, fmt.Errorf("failed to write frame: %w", writeErr)
	}
	if err := surface.Err(); err != nil {
		return written, err
	}
	return written, nil
}
