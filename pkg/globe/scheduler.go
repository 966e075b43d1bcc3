package globe

// FrameID 标识一次已请求的帧回调，0 表示无
type FrameID uint64

// FrameCallback 帧回调，now 为宿主时钟（毫秒，单调递增）
type FrameCallback func(now float64)

// FrameScheduler 显示刷新回调的抽象
//
// 每次 RequestFrame 只对应一次回调；回调中需要再次请求才能继续循环。
type FrameScheduler interface {
	RequestFrame(cb FrameCallback) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue 由宿主逐帧驱动的 FrameScheduler 实现
//
// 宿主在每个刷新周期调用 Fire；回调执行期间新请求的帧排到下一次 Fire。
type FrameQueue struct {
	next      FrameID
	callbacks map[FrameID]FrameCallback
	order     []FrameID
}

// NewFrameQueue 创建空队列
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{
		callbacks: make(map[FrameID]FrameCallback),
	}
}

// RequestFrame 登记一次回调
func (q *FrameQueue) RequestFrame(cb FrameCallback) FrameID {
	q.next++
	id := q.next
	q.callbacks[id] = cb
	q.order = append(q.order, id)
	return id
}

// CancelFrame 取消尚未执行的回调，未知 id 忽略
func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.callbacks, id)
}

// Fire 按请求顺序执行调用前已登记的回调，返回实际执行的数量
func (q *FrameQueue) Fire(now float64) int {
	batch := q.order
	q.order = nil

	fired := 0
	for _, id := range batch {
		cb, ok := q.callbacks[id]
		if !ok {
			continue
		}
		delete(q.callbacks, id)
		cb(now)
		fired++
	}
	return fired
}

// Len 返回待执行的回调数量
func (q *FrameQueue) Len() int {
	return len(q.callbacks)
}
