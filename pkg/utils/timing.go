package utils

// 基于显式时间戳的节流与防抖
//
// 所有时间单位均为毫秒，由调用方传入（通常来自宿主时钟），
// 不启动 goroutine，也不依赖 time.AfterFunc，便于在帧循环中确定性地驱动。

// Throttle 前沿节流：一次调用被接受后，Interval 内的后续调用全部丢弃
type Throttle struct {
	Interval float64

	until  float64
	primed bool
}

// NewThrottle 创建节流器
func NewThrottle(intervalMs float64) *Throttle {
	return &Throttle{Interval: intervalMs}
}

// Allow 判断 now 时刻的调用是否被接受
func (t *Throttle) Allow(now float64) bool {
	if t.primed && now < t.until {
		return false
	}
	t.primed = true
	t.until = now + t.Interval
	return true
}

// Reset 清除节流窗口
func (t *Throttle) Reset() {
	t.primed = false
	t.until = 0
}

// Debouncer 尾沿防抖：最后一次 Trigger 之后静默 Wait 毫秒才触发一次
//
// 同一个结构也用作"空闲超时"计时器：每次活动调用 Trigger，
// Fire 返回 true 表示已经空闲足够久。
type Debouncer struct {
	Wait float64

	deadline float64
	armed    bool
}

// NewDebouncer 创建防抖器
func NewDebouncer(waitMs float64) *Debouncer {
	return &Debouncer{Wait: waitMs}
}

// Trigger 记录一次活动，重新计时
func (d *Debouncer) Trigger(now float64) {
	d.deadline = now + d.Wait
	d.armed = true
}

// Fire 到期时返回 true 并解除，之后直到下次 Trigger 都返回 false
func (d *Debouncer) Fire(now float64) bool {
	if !d.armed || now < d.deadline {
		return false
	}
	d.armed = false
	return true
}

// Pending 是否有尚未触发的计时
func (d *Debouncer) Pending() bool {
	return d.armed
}

// Cancel 取消尚未触发的计时
func (d *Debouncer) Cancel() {
	d.armed = false
}
