package statshub

import (
	"sync"
	"time"

	"go_collections/common/container"
)

// Registry 跨度容器注册表
// 容器本身不加锁 所有并发访问都必须经过注册表
// 底层采用有序Map 保证目标列表和快照的输出顺序稳定
type Registry struct {
	spans *container.SortedMap[string, *container.Span[int64]]
	lock  sync.RWMutex
}

// NewRegistry 创建注册表
func NewRegistry() *Registry {
	return &Registry{
		spans: container.NewSortedMap[string, *container.Span[int64]](),
	}
}

// Register 注册目标 重复注册返回 ErrTargetExists
func (r *Registry) Register(name string, capacity int) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.spans.Exist(name) {
		return ErrTargetExists
	}
	r.spans.Insert(name, container.NewSpan[int64](capacity))
	return nil
}

// Remove 移除目标 不存在返回 ErrTargetNotFound
func (r *Registry) Remove(name string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if !r.spans.Exist(name) {
		return ErrTargetNotFound
	}
	r.spans.Delete(name)
	return nil
}

// Exist 判断目标是否存在
func (r *Registry) Exist(name string) bool {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.spans.Exist(name)
}

// Names 获取全部目标名 升序
func (r *Registry) Names() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return r.spans.Keys()
}

// Append 向目标批量添加数值
// 保持容器的原子性语义 超出容量返回 ErrContainerFull 不做任何修改
func (r *Registry) Append(name string, values ...int64) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	span, ok := r.spans.Get(name)
	if !ok {
		return ErrTargetNotFound
	}
	return span.AddRange(values...)
}

// Snapshot 获取单个目标的统计快照
func (r *Registry) Snapshot(name string) (Snapshot, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	span, ok := r.spans.Get(name)
	if !ok {
		return Snapshot{}, ErrTargetNotFound
	}
	return makeSnapshot(name, span), nil
}

// Snapshots 获取全部目标的统计快照 按目标名升序
func (r *Registry) Snapshots() []Snapshot {
	r.lock.RLock()
	defer r.lock.RUnlock()

	snapshots := make([]Snapshot, 0, r.spans.Size())
	for name, span := range r.spans.Iter() {
		snapshots = append(snapshots, makeSnapshot(name, span))
	}
	return snapshots
}

// makeSnapshot 构造快照 调用方持有锁
func makeSnapshot(name string, span *container.Span[int64]) Snapshot {
	snapshot := Snapshot{
		Target:    name,
		Size:      span.Size(),
		Capacity:  span.Capacity(),
		Timestamp: time.Now().UnixMilli(),
	}
	shortest, err := span.ShortestSpan()
	if err != nil {
		// 元素不足 统计字段留空
		return snapshot
	}
	longest, err := span.LongestSpan()
	if err != nil {
		return snapshot
	}
	snapshot.Shortest = shortest
	snapshot.Longest = longest
	snapshot.HasStats = true
	return snapshot
}
