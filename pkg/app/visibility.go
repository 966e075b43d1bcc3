package app

import "github.com/decker502/dotglobe/pkg/globe"

// visibilityWatcher 把逐帧轮询的窗口状态转换为可见性变化命令
//
// 窗口最小化视为画布离开视口。Disconnect 之后不再产生命令。
type visibilityWatcher struct {
	connected bool
	known     bool
	visible   bool
}

func newVisibilityWatcher() *visibilityWatcher {
	return &visibilityWatcher{connected: true}
}

// Poll 输入本帧的可见状态，返回需要发送的命令（无变化时 ok 为 false）
func (w *visibilityWatcher) Poll(visible bool) (cmd globe.VisibilityChanged, ok bool) {
	if !w.connected {
		return cmd, false
	}
	if w.known && w.visible == visible {
		return cmd, false
	}
	// 初始状态为可见，首次轮询只在不可见时发命令
	changed := w.known || !visible
	w.known = true
	w.visible = visible
	return globe.VisibilityChanged{Visible: visible}, changed
}

// Disconnect 实现 globe.Observer
func (w *visibilityWatcher) Disconnect() {
	w.connected = false
}
