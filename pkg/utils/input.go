// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// PointerWatcher 将逐帧轮询的指针坐标转换为"移动"事件
//
// ebiten 只提供当前坐标，没有 mousemove 回调；
// 坐标与上一帧不同即视为一次移动。
type PointerWatcher struct {
	lastX, lastY int
	seen         bool
}

// Poll 输入本帧坐标，返回是否发生了移动
// 第一次调用只记录位置，不算移动
func (w *PointerWatcher) Poll(x, y int) bool {
	if !w.seen {
		w.lastX, w.lastY = x, y
		w.seen = true
		return false
	}
	if x == w.lastX && y == w.lastY {
		return false
	}
	w.lastX, w.lastY = x, y
	return true
}

// Position 返回最近一次记录的坐标
func (w *PointerWatcher) Position() (int, int) {
	return w.lastX, w.lastY
}
