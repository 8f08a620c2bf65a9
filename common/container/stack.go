package container

import "iter"

var (
	// 断言 检查实现 Container
	_ Container[int] = (*Stack[int])(nil)
)

// Stack 栈 后进先出
// 采用组合而不是继承适配器 栈顶操作之外同时暴露遍历能力
type Stack[T any] struct {
	data []T
}

// NewStack 创建栈
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{
		data: make([]T, 0),
	}
}

// Empty 判断栈是否为空
func (s *Stack[T]) Empty() bool {
	return len(s.data) <= 0
}

// Size 获取栈内元素个数
func (s *Stack[T]) Size() int {
	return len(s.data)
}

// Clear 清空栈
func (s *Stack[T]) Clear() {
	s.data = s.data[:0]
}

// Value 获取栈内元素的拷贝 自底向上
func (s *Stack[T]) Value() []T {
	values := make([]T, 0, len(s.data))
	return append(values, s.data...)
}

// Push 入栈
func (s *Stack[T]) Push(val T) {
	s.data = append(s.data, val)
}

// Pop 出栈 空栈返回 ErrEmptyContainer
func (s *Stack[T]) Pop() (val T, err error) {
	if len(s.data) == 0 {
		err = ErrEmptyContainer
		return
	}
	val = s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return val, nil
}

// Top 获取栈顶元素 空栈返回 ErrEmptyContainer
func (s *Stack[T]) Top() (val T, err error) {
	if len(s.data) == 0 {
		err = ErrEmptyContainer
		return
	}
	return s.data[len(s.data)-1], nil
}

// Clone 深拷贝 两个实例互不影响
func (s *Stack[T]) Clone() *Stack[T] {
	clone := NewStack[T]()
	clone.data = append(clone.data, s.data...)
	return clone
}

// Iter 迭代器 自底向上
func (s *Stack[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range s.data {
			if !yield(val) {
				return
			}
		}
	}
}

// ReverseIter 反向迭代器 自顶向下
func (s *Stack[T]) ReverseIter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.data) - 1; i >= 0; i-- {
			if !yield(s.data[i]) {
				return
			}
		}
	}
}
