package container

import (
	"iter"
	"slices"
)

// Span 跨度容器
// 组合定容数组 提供基于当前元素集的统计计算
// 统计是纯函数 每次调用基于快照重新计算 不缓存结果
type Span[T Number] struct {
	numbers *BoundedArray[T]
}

// NewSpan 创建跨度容器
func NewSpan[T Number](capacity int) *Span[T] {
	return &Span[T]{
		numbers: NewBoundedArray[T](capacity),
	}
}

// AddNumber 添加一个数值 已满返回 ErrContainerFull
func (s *Span[T]) AddNumber(val T) error {
	return s.numbers.Append(val)
}

// AddRange 批量添加 要么全部成功 要么全部失败
func (s *Span[T]) AddRange(values ...T) error {
	return s.numbers.AppendAll(values...)
}

// AddSeq 从迭代器批量添加 同样保证原子性
func (s *Span[T]) AddSeq(seq iter.Seq[T]) error {
	return s.numbers.AppendSeq(seq)
}

// ShortestSpan 最短跨度
// 对快照排序后取相邻元素差值的最小值 重复值的跨度为 0
// 少于两个元素返回 ErrInsufficientData
func (s *Span[T]) ShortestSpan() (T, error) {
	var zero T
	if s.numbers.Size() < 2 {
		return zero, ErrInsufficientData
	}
	sorted := s.numbers.Value()
	slices.Sort(sorted)

	shortest := sorted[1] - sorted[0]
	for i := 2; i < len(sorted); i++ {
		if gap := sorted[i] - sorted[i-1]; gap < shortest {
			shortest = gap
		}
	}
	return shortest, nil
}

// LongestSpan 最长跨度 最大值减最小值
// 少于两个元素返回 ErrInsufficientData
func (s *Span[T]) LongestSpan() (T, error) {
	var zero T
	if s.numbers.Size() < 2 {
		return zero, ErrInsufficientData
	}
	values := s.numbers.Value()
	return slices.Max(values) - slices.Min(values), nil
}

// At 下标读取 越界返回 ErrIndexOutOfRange
func (s *Span[T]) At(index int) (T, error) {
	return s.numbers.At(index)
}

// Empty 判断是否为空
func (s *Span[T]) Empty() bool {
	return s.numbers.Empty()
}

// Full 判断是否已满
func (s *Span[T]) Full() bool {
	return s.numbers.Full()
}

// Size 获取元素个数
func (s *Span[T]) Size() int {
	return s.numbers.Size()
}

// Capacity 获取容量
func (s *Span[T]) Capacity() int {
	return s.numbers.Capacity()
}

// Clear 清空元素 容量不变
func (s *Span[T]) Clear() {
	s.numbers.Clear()
}

// Value 获取所有元素的拷贝
func (s *Span[T]) Value() []T {
	return s.numbers.Value()
}

// Clone 深拷贝 两个实例互不影响
func (s *Span[T]) Clone() *Span[T] {
	return &Span[T]{
		numbers: s.numbers.Clone(),
	}
}
