package app

import (
	"math"
	"math/rand"

	"github.com/decker502/dotglobe/pkg/config"
	"github.com/decker502/dotglobe/pkg/globe"
	"github.com/decker502/dotglobe/pkg/utils"
)

// frameInput 宿主在一个 tick 内采集的外部状态
type frameInput struct {
	// Now 宿主时钟（毫秒）
	Now float64
	// CursorX, CursorY 指针位置（布局坐标，即设备像素）
	CursorX, CursorY int
	// Visible 窗口是否可见（未最小化）
	Visible bool
}

// host 把 ebiten 的轮询式输入翻译成 globe 命令并驱动帧队列
//
// 与 ebiten 运行时解耦，Layout/Update 只接受显式参数。
type host struct {
	profile    *config.GlobeProfile
	queue      *globe.FrameQueue
	animator   *globe.Animator
	visibility *visibilityWatcher
	pointer    utils.PointerWatcher
	resize     *utils.Debouncer

	outerW, outerH     int
	outerDPR           float64
	appliedW, appliedH int
	appliedDPR         float64
	applied            bool
	started            bool
}

// newHost 创建宿主；reducedMotion 为 true 或 surface 为 nil 时不创建动画
func newHost(surface globe.Surface, profile *config.GlobeProfile, reducedMotion bool, rng *rand.Rand) *host {
	h := &host{
		profile:    profile,
		queue:      globe.NewFrameQueue(),
		visibility: newVisibilityWatcher(),
		resize:     utils.NewDebouncer(profile.ResizeDebounceMs),
	}
	if reducedMotion || surface == nil {
		return h
	}

	opts := []globe.Option{globe.WithObserver(h.visibility)}
	if rng != nil {
		opts = append(opts, globe.WithRand(rng))
	}
	h.animator = globe.New(surface, profile, h.queue, opts...)
	return h
}

// Active 动画是否在运行（未被减少动画或销毁关闭）
func (h *host) Active() bool {
	return h.animator != nil && h.animator.Loop() != globe.LoopDisposed
}

// Layout 记录窗口尺寸，返回当前已生效的设备像素尺寸
//
// 首次调用立即生效；之后的尺寸变化经过防抖后在 Update 中生效，
// 在此之前画面由 ebiten 拉伸。
func (h *host) Layout(outerW, outerH int, dpr, now float64) (int, int) {
	dpr = utils.Clamp(dpr, 1, math.Max(1, h.profile.MaxDevicePixelRatio))
	changed := outerW != h.outerW || outerH != h.outerH || dpr != h.outerDPR
	h.outerW, h.outerH, h.outerDPR = outerW, outerH, dpr

	if !h.applied {
		h.apply()
	} else if changed {
		h.resize.Trigger(now)
	}
	return h.deviceSize()
}

func (h *host) deviceSize() (int, int) {
	w := int(math.Floor(float64(h.appliedW) * h.appliedDPR))
	hh := int(math.Floor(float64(h.appliedH) * h.appliedDPR))
	if w < 1 {
		w = 1
	}
	if hh < 1 {
		hh = 1
	}
	return w, hh
}

func (h *host) apply() {
	h.appliedW, h.appliedH, h.appliedDPR = h.outerW, h.outerH, h.outerDPR
	h.applied = true

	if h.animator == nil {
		return
	}
	h.animator.Handle(globe.Resized{
		Width:  float64(h.appliedW),
		Height: float64(h.appliedH),
		DPR:    h.appliedDPR,
	})
	if !h.started {
		h.started = true
		h.animator.Start()
	}
}

// Update 处理一个 tick：防抖后的尺寸、可见性、指针，然后触发帧回调
func (h *host) Update(in frameInput) {
	if h.resize.Fire(in.Now) {
		h.apply()
	}
	if h.animator == nil {
		return
	}

	if cmd, ok := h.visibility.Poll(in.Visible); ok {
		h.animator.Handle(cmd)
	}

	if h.pointer.Poll(in.CursorX, in.CursorY) {
		w, hh := h.deviceSize()
		h.animator.Handle(globe.PointerMoved{
			X:      float64(in.CursorX),
			Y:      float64(in.CursorY),
			Width:  float64(w),
			Height: float64(hh),
			At:     in.Now,
		})
	}

	h.queue.Fire(in.Now)
}

// Dispose 销毁动画，可重复调用
func (h *host) Dispose() {
	h.resize.Cancel()
	if h.animator != nil {
		h.animator.Dispose()
	}
}
