package container

import (
	"cmp"
	"iter"
	"slices"
)

// SortedMap 有序Map 线程不安全
// key 保持升序 采用有序 key 切片加二分查找维护顺序
type SortedMap[K cmp.Ordered, V any] struct {
	elements map[K]V
	keys     []K
}

// NewSortedMap 创建有序Map
func NewSortedMap[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{
		elements: make(map[K]V),
		keys:     make([]K, 0),
	}
}

// Size 获取元素个数
func (s *SortedMap[K, V]) Size() int {
	return len(s.elements)
}

// Clear 清空所有元素
func (s *SortedMap[K, V]) Clear() {
	s.elements = make(map[K]V)
	s.keys = s.keys[:0]
}

// Exist 判断key是否存在
func (s *SortedMap[K, V]) Exist(key K) bool {
	_, exist := s.elements[key]
	return exist
}

// Get 获取元素
func (s *SortedMap[K, V]) Get(key K) (V, bool) {
	val, ok := s.elements[key]
	return val, ok
}

// Insert 插入元素 已存在则覆盖值
func (s *SortedMap[K, V]) Insert(key K, val V) {
	if _, ok := s.elements[key]; !ok {
		index, _ := slices.BinarySearch(s.keys, key)
		s.keys = slices.Insert(s.keys, index, key)
	}
	s.elements[key] = val
}

// Delete 删除元素
func (s *SortedMap[K, V]) Delete(key K) {
	if _, ok := s.elements[key]; !ok {
		return
	}
	delete(s.elements, key)
	if index, found := slices.BinarySearch(s.keys, key); found {
		s.keys = slices.Delete(s.keys, index, index+1)
	}
}

// Keys 获取升序 key 的拷贝
func (s *SortedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(s.keys))
	return append(keys, s.keys...)
}

// Iter 迭代器 按 key 升序
func (s *SortedMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range s.keys {
			if !yield(key, s.elements[key]) {
				return
			}
		}
	}
}
