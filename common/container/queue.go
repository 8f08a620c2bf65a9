package container

import "iter"

const (
	// 初始化容量
	initCapacity = 8
)

var (
	// 断言 检查实现 Container
	_ Container[int] = (*Queue[int])(nil)
)

// Queue 队列 线程不安全
// 底层采用 slice 环式收缩 结构简单维护成本低
// 元素过大时频繁拷贝会耗费更多性能
type Queue[T any] struct {
	data     []T
	head     int
	tail     int
	capacity int
}

// NewQueue 创建队列
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		data:     make([]T, initCapacity),
		capacity: initCapacity,
		head:     0,
		tail:     0,
	}
}

// Empty 判断队列是否为空
func (q *Queue[T]) Empty() bool {
	return q.Size() <= 0
}

// Size 获取队列长度
func (q *Queue[T]) Size() int {
	return q.tail - q.head
}

// Clear 清空队列
func (q *Queue[T]) Clear() {
	q.data = make([]T, initCapacity)
	q.capacity = initCapacity
	q.head = 0
	q.tail = 0
}

// Value 获取队列元素的拷贝 队首在前
func (q *Queue[T]) Value() []T {
	values := make([]T, 0, q.Size())
	return append(values, q.data[q.head:q.tail]...)
}

// Push 入队
func (q *Queue[T]) Push(val T) {
	if q.tail >= q.capacity {
		q.expand()
	}
	q.data[q.tail] = val
	q.tail++
}

// Peek 获取队首元素 不出队 空队列返回 ErrEmptyContainer
func (q *Queue[T]) Peek() (val T, err error) {
	if q.Empty() {
		err = ErrEmptyContainer
		return
	}
	return q.data[q.head], nil
}

// Pop 出队 空队列返回 ErrEmptyContainer
func (q *Queue[T]) Pop() (val T, err error) {
	if q.Empty() {
		err = ErrEmptyContainer
		return
	}
	val = q.data[q.head]
	q.head++

	// 队首空洞过半 尝试缩容
	if q.head >= q.capacity/2 {
		q.shrink()
	}
	return val, nil
}

// Iter 迭代器 队首在前
func (q *Queue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := q.head; i < q.tail; i++ {
			if !yield(q.data[i]) {
				return
			}
		}
	}
}

// expand 扩容
func (q *Queue[T]) expand() {
	// 优先把存量元素移动到首部
	if q.head > 0 {
		length := q.Size()
		copy(q.data, q.data[q.head:q.tail])
		q.head = 0
		q.tail = length
		return
	}
	newCapacity := q.capacity * 2
	if q.capacity >= 1024 {
		newCapacity = q.capacity + q.capacity/4
	}
	newData := make([]T, newCapacity)
	length := copy(newData, q.data[q.head:q.tail])
	q.data = newData
	q.capacity = newCapacity
	q.head = 0
	q.tail = length
}

// shrink 缩容
func (q *Queue[T]) shrink() {
	length := q.Size()
	if length > q.capacity/4 || q.capacity <= initCapacity {
		return
	}
	newCapacity := q.capacity / 2
	if newCapacity < initCapacity {
		newCapacity = initCapacity
	}
	newData := make([]T, newCapacity)
	copy(newData, q.data[q.head:q.tail])
	q.data = newData
	q.capacity = newCapacity
	q.head = 0
	q.tail = length
}
