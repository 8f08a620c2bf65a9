package container

import (
	"iter"
	"slices"
)

var (
	// 断言 检查实现 Container
	_ Container[int] = (*BoundedArray[int])(nil)
)

// BoundedArray 定容数组
// 容量在创建时固定 任何写入都不会超出容量
type BoundedArray[T any] struct {
	elements []T
	capacity int
}

// NewBoundedArray 创建定容数组
// 容量为负数按 0 处理
func NewBoundedArray[T any](capacity int) *BoundedArray[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &BoundedArray[T]{
		elements: make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Empty 判断是否为空
func (ba *BoundedArray[T]) Empty() bool {
	return len(ba.elements) <= 0
}

// Full 判断是否已满
func (ba *BoundedArray[T]) Full() bool {
	return len(ba.elements) >= ba.capacity
}

// Size 获取元素个数
func (ba *BoundedArray[T]) Size() int {
	return len(ba.elements)
}

// Capacity 获取容量
func (ba *BoundedArray[T]) Capacity() int {
	return ba.capacity
}

// Clear 清空元素 容量不变
func (ba *BoundedArray[T]) Clear() {
	ba.elements = ba.elements[:0]
}

// Value 获取所有元素的拷贝
func (ba *BoundedArray[T]) Value() []T {
	values := make([]T, 0, len(ba.elements))
	return append(values, ba.elements...)
}

// Append 追加一个元素
// 已满返回 ErrContainerFull 不做任何修改
func (ba *BoundedArray[T]) Append(val T) error {
	if ba.Full() {
		return ErrContainerFull
	}
	ba.elements = append(ba.elements, val)
	return nil
}

// AppendAll 批量追加 要么全部成功 要么全部失败
func (ba *BoundedArray[T]) AppendAll(values ...T) error {
	if len(ba.elements)+len(values) > ba.capacity {
		return ErrContainerFull
	}
	ba.elements = append(ba.elements, values...)
	return nil
}

// AppendSeq 从迭代器批量追加
// 先收集再一次性写入 保证原子性
func (ba *BoundedArray[T]) AppendSeq(seq iter.Seq[T]) error {
	collected := slices.Collect(seq)
	return ba.AppendAll(collected...)
}

// At 下标读取 越界返回 ErrIndexOutOfRange
func (ba *BoundedArray[T]) At(index int) (val T, err error) {
	if index < 0 || index >= len(ba.elements) {
		err = ErrIndexOutOfRange
		return
	}
	return ba.elements[index], nil
}

// Set 下标写入 越界返回 ErrIndexOutOfRange
func (ba *BoundedArray[T]) Set(index int, val T) error {
	if index < 0 || index >= len(ba.elements) {
		return ErrIndexOutOfRange
	}
	ba.elements[index] = val
	return nil
}

// Clone 深拷贝 两个实例互不影响
func (ba *BoundedArray[T]) Clone() *BoundedArray[T] {
	clone := NewBoundedArray[T](ba.capacity)
	clone.elements = append(clone.elements, ba.elements...)
	return clone
}

// Iter 迭代器 按插入顺序
func (ba *BoundedArray[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range ba.elements {
			if !yield(val) {
				return
			}
		}
	}
}
