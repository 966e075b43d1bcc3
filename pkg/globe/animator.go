// Package globe 实现装饰性的三维点阵地球：
// 球面点生成、逐帧动画状态机、旋转透视投影与深度排序绘制。
//
// 每个 Animator 持有独立的状态，不存在跨实例的全局变量。
// 外部信号（可见性、指针、尺寸）通过 Handle 以命令的形式进入，
// 帧回调由宿主的 FrameScheduler 驱动，全部在同一个 goroutine 中执行。
package globe

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/dotglobe/pkg/config"
	"github.com/decker502/dotglobe/pkg/utils"
)

// LoopState 帧循环状态
type LoopState int

const (
	// LoopPaused 未在请求帧回调（尚未启动，或画布不可见）
	LoopPaused LoopState = iota
	// LoopScheduled 已请求下一次帧回调
	LoopScheduled
	// LoopRunning 正在执行一帧的更新与绘制
	LoopRunning
	// LoopDisposed 已销毁，不再发生任何转换
	LoopDisposed
)

func (s LoopState) String() string {
	switch s {
	case LoopPaused:
		return "Paused"
	case LoopScheduled:
		return "Scheduled"
	case LoopRunning:
		return "Running"
	case LoopDisposed:
		return "Disposed"
	}
	return "Unknown"
}

// AnimationState 每个渲染实例一份的动画状态
type AnimationState struct {
	// Rotation 当前旋转
	Rotation Rotation
	// Target 指针驱动的目标旋转
	Target Rotation
	// Elapsed 弹跳时间，每个被接受的帧增加固定步长
	Elapsed float64
	// Visible 画布是否在视口内
	Visible bool
}

// StepFrame 推进一个被接受的帧：自动旋转、（桌面端）向目标缓动、时间步进
func StepFrame(s AnimationState, profile *config.GlobeProfile) AnimationState {
	s.Rotation = s.Rotation.Add(Rotation{X: profile.AutoSpin.X, Y: profile.AutoSpin.Y})
	if profile.Interactive {
		s.Rotation.X = utils.Approach(s.Rotation.X, s.Target.X, profile.Ease)
		s.Rotation.Y = utils.Approach(s.Rotation.Y, s.Target.Y, profile.Ease)
	}
	s.Elapsed += profile.TimeStep
	return s
}

// AimAt 根据指针相对视口中心的归一化偏移计算目标旋转
//
// 水平偏移驱动 Y 轴，竖直偏移驱动 X 轴（方向相反）。
// 指针位于正中心时目标等于当前旋转。
func AimAt(s AnimationState, profile *config.GlobeProfile, x, y, width, height float64) AnimationState {
	if width <= 0 || height <= 0 {
		return s
	}
	nx := x/width*2 - 1
	ny := y/height*2 - 1
	s.Target.Y = s.Rotation.Y + nx*profile.PointerSensitivity.Y
	s.Target.X = s.Rotation.X - ny*profile.PointerSensitivity.X
	return s
}

// Command 外部信号产生的状态更新命令
type Command interface {
	isCommand()
}

// VisibilityChanged 画布进入或离开视口
type VisibilityChanged struct {
	Visible bool
}

// PointerMoved 指针移动（坐标与视口尺寸同一单位），At 为宿主时钟毫秒
type PointerMoved struct {
	X, Y          float64
	Width, Height float64
	At            float64
}

// Resized 画布尺寸变化（已由宿主防抖）
type Resized struct {
	Width, Height float64
	DPR           float64
}

func (VisibilityChanged) isCommand() {}
func (PointerMoved) isCommand()      {}
func (Resized) isCommand()           {}

// Observer 可断开的外部信号源（如可见性监听）
type Observer interface {
	Disconnect()
}

// FrameHook 每个被接受的帧绘制完成后调用
type FrameHook func(frame int, state AnimationState)

// Option Animator 可选参数
type Option func(*Animator)

// WithRand 指定随机源（默认以当前时间为种子）
func WithRand(rng *rand.Rand) Option {
	return func(a *Animator) { a.rng = rng }
}

// WithObserver 绑定可见性监听，Dispose 时断开
func WithObserver(o Observer) Option {
	return func(a *Animator) { a.observer = o }
}

// WithFrameHook 设置帧完成回调
func WithFrameHook(h FrameHook) Option {
	return func(a *Animator) { a.hook = h }
}

// Animator 地球帧循环
type Animator struct {
	profile   *config.GlobeProfile
	scheduler FrameScheduler
	renderer  *Renderer
	observer  Observer
	hook      FrameHook
	rng       *rand.Rand

	state    AnimationState
	loop     LoopState
	started  bool
	pending  FrameID
	interval float64
	last     float64
	frames   int

	pointerThrottle *utils.Throttle
	pointerIdle     *utils.Debouncer
}

// New 创建地球动画
//
// surface 为 nil 时不激活，返回 nil（装饰性组件，缺少画布不视为错误）。
// 创建后需要先 Handle(Resized{...}) 再 Start()。
func New(surface Surface, profile *config.GlobeProfile, scheduler FrameScheduler, opts ...Option) *Animator {
	if surface == nil || profile == nil || scheduler == nil {
		log.Printf("[Globe] No drawing surface, globe not activated")
		return nil
	}

	a := &Animator{
		profile:         profile,
		scheduler:       scheduler,
		state:           AnimationState{Visible: true},
		loop:            LoopPaused,
		interval:        profile.FrameIntervalMs(),
		pointerThrottle: utils.NewThrottle(profile.PointerThrottleMs),
		pointerIdle:     utils.NewDebouncer(profile.IdleTimeoutMs),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	a.renderer = NewRenderer(surface, profile, a.rng)
	return a
}

// Start 启动帧循环，重复调用无效
func (a *Animator) Start() {
	if a.loop == LoopDisposed || a.started {
		return
	}
	a.started = true
	log.Printf("[Globe] Start: %d points @ %.0f fps, interactive=%v",
		a.profile.PointCount, a.profile.TargetFPS, a.profile.Interactive)
	if a.state.Visible {
		a.schedule()
	}
}

// Handle 处理一条外部命令
func (a *Animator) Handle(cmd Command) {
	if a.loop == LoopDisposed {
		return
	}

	switch c := cmd.(type) {
	case VisibilityChanged:
		a.setVisible(c.Visible)
	case PointerMoved:
		a.pointerMoved(c)
	case Resized:
		a.renderer.Resize(c.Width, c.Height, c.DPR)
	}
}

// Dispose 取消待执行的帧回调并断开监听，可重复调用
func (a *Animator) Dispose() {
	if a.loop == LoopDisposed {
		return
	}
	if a.pending != 0 {
		a.scheduler.CancelFrame(a.pending)
		a.pending = 0
	}
	if a.observer != nil {
		a.observer.Disconnect()
	}
	a.pointerIdle.Cancel()
	a.loop = LoopDisposed
	log.Printf("[Globe] Disposed after %d frames", a.frames)
}

func (a *Animator) setVisible(visible bool) {
	a.state.Visible = visible
	if !visible {
		// 已请求的回调仍会触发，届时不再续约
		a.loop = LoopPaused
		// 恢复可见后的第一次指针移动立即生效
		a.pointerThrottle.Reset()
		return
	}
	if a.started {
		a.schedule()
	}
}

func (a *Animator) pointerMoved(c PointerMoved) {
	if !a.profile.Interactive {
		return
	}
	if !a.pointerThrottle.Allow(c.At) {
		return
	}
	a.state = AimAt(a.state, a.profile, c.X, c.Y, c.Width, c.Height)
	a.pointerIdle.Trigger(c.At)
}

func (a *Animator) schedule() {
	if a.loop == LoopDisposed {
		return
	}
	if a.pending == 0 {
		a.pending = a.scheduler.RequestFrame(a.onFrame)
	}
	a.loop = LoopScheduled
}

func (a *Animator) onFrame(now float64) {
	a.pending = 0
	if a.loop == LoopDisposed {
		return
	}
	if !a.state.Visible {
		a.loop = LoopPaused
		return
	}

	if a.pointerIdle.Fire(now) {
		a.state.Target = a.state.Rotation
	}

	if now-a.last >= a.interval {
		a.loop = LoopRunning
		a.state = StepFrame(a.state, a.profile)
		a.renderer.Draw(a.state)
		a.last = now
		a.frames++
		if a.hook != nil {
			a.hook(a.frames, a.state)
		}
		// 帧回调中可能已调用 Dispose
		if a.loop == LoopDisposed {
			return
		}
	}

	a.schedule()
}

// State 返回当前动画状态（副本）
func (a *Animator) State() AnimationState {
	return a.state
}

// Loop 返回帧循环状态
func (a *Animator) Loop() LoopState {
	return a.loop
}

// Frames 返回已绘制的帧数
func (a *Animator) Frames() int {
	return a.frames
}

// Renderer 返回渲染器
func (a *Animator) Renderer() *Renderer {
	return a.renderer
}
