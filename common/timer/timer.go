package timer

import "container/heap"

var (
	// 断言 检查实现 heap.Interface
	_ heap.Interface = (*TimerQueue)(nil)
)

// TimerFunc 定时器回调
type TimerFunc func(nowTm int64)

// Timer 定时器结构体
type Timer struct {
	fn       TimerFunc // 定时器回调
	id       int64     // 定时器ID
	end      int64     // 触发时间
	interval int64     // 间隔时间 大于0表示周期触发
	index    int       // 堆内索引
}

// TimerQueue 定时器队列 小根堆 按触发时间排序
type TimerQueue []*Timer

// Len 长度
func (tq TimerQueue) Len() int {
	return len(tq)
}

// Less 比较
func (tq TimerQueue) Less(i, j int) bool {
	return tq[i].end < tq[j].end
}

// Swap 交换
func (tq TimerQueue) Swap(i, j int) {
	tq[i], tq[j] = tq[j], tq[i]
	tq[i].index = i
	tq[j].index = j
}

// Push 插入
func (tq *TimerQueue) Push(x any) {
	timer, ok := x.(*Timer)
	if !ok {
		return
	}
	timer.index = len(*tq)
	*tq = append(*tq, timer)
}

// Pop 弹出
func (tq *TimerQueue) Pop() any {
	tmp := *tq
	length := len(tmp)
	if length == 0 {
		return nil
	}
	timer := tmp[length-1]
	tmp[length-1] = nil
	// 标记失效
	timer.index = -1
	*tq = tmp[:length-1]

	return timer
}
