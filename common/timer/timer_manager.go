package timer

import (
	"container/heap"
	"log/slog"
	"runtime/debug"

	"go_collections/common/container"
)

const (
	DefaultTimerQueueSize = 1024
)

// TimerManager 定时器管理器 线程不安全
// 到期的定时器先转入执行队列 再统一执行回调
// 回调内可以安全地添加或移除定时器
type TimerManager struct {
	nextID int64                    // 定时器自增ID
	tq     TimerQueue               // 定时器队列
	ready  *container.Queue[*Timer] // 定时器执行队列
}

// NewTimerManager 创建定时器管理器
func NewTimerManager(size int) *TimerManager {
	if size <= 0 {
		size = DefaultTimerQueueSize
	}
	return &TimerManager{
		nextID: 0,
		tq:     make(TimerQueue, 0, size),
		ready:  container.NewQueue[*Timer](),
	}
}

// AddTimer 添加定时器
// @param fn 定时器回调
// @param end 首次触发时间
// @param interval 间隔时间 大于0表示周期触发
// @return 定时器ID
func (tm *TimerManager) AddTimer(fn TimerFunc, end int64, interval int64) int64 {
	if fn == nil {
		slog.Warn("[TimerManager] AddTimer nil timer func", "end", end, "interval", interval)
		return 0
	}
	tm.nextID++
	timer := &Timer{
		fn:       fn,
		id:       tm.nextID,
		end:      end,
		interval: interval,
	}
	heap.Push(&tm.tq, timer)
	return timer.id
}

// RemoveTimer 移除定时器
func (tm *TimerManager) RemoveTimer(timerID int64) {
	for _, timer := range tm.tq {
		if timer.id == timerID {
			heap.Remove(&tm.tq, timer.index)
			break
		}
	}
}

// Len 获取待触发定时器数量
func (tm *TimerManager) Len() int {
	return tm.tq.Len()
}

// Run 执行到期的定时器
// @param nowTm 当前时间
// @param limit 单次最大执行数量 小于等于0不限制
// @return 检查数量, 执行数量
func (tm *TimerManager) Run(nowTm int64, limit int) (uint32, uint32) {
	defer func() {
		if err := recover(); err != nil {
			slog.Error("[TimerManager] Run panic", "err", err, "stack", string(debug.Stack()))
		}
	}()

	checkCount := uint32(0)
	callCount := uint32(0)

	for tm.tq.Len() > 0 {
		checkCount++
		// 小根堆 根节点最早触发
		top := tm.tq[0]
		if top.end > nowTm {
			break
		}
		timer := heap.Pop(&tm.tq).(*Timer)
		tm.ready.Push(timer)
		// 周期定时器重新入堆
		// 以当前时间为基准 避免修改系统时间导致频繁触发
		if timer.interval > 0 {
			timer.end = nowTm + timer.interval
			heap.Push(&tm.tq, timer)
		}
		if limit > 0 && tm.ready.Size() >= limit {
			break
		}
	}

	for !tm.ready.Empty() {
		timer, err := tm.ready.Pop()
		if err != nil {
			break
		}
		callCount++
		timer.fn(nowTm)
	}

	return checkCount, callCount
}
