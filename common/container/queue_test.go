package container

import (
	"errors"
	"slices"
	"testing"
)

func TestQueueFifo(t *testing.T) {
	queue := NewQueue[int]()
	if !queue.Empty() {
		t.Fatal("fresh queue should be empty")
	}
	// 跨越多次扩容缩容
	for i := 0; i < 100; i++ {
		queue.Push(i)
	}
	if queue.Size() != 100 {
		t.Fatalf("size expected 100, got %d", queue.Size())
	}
	for i := 0; i < 100; i++ {
		val, err := queue.Pop()
		if err != nil || val != i {
			t.Fatalf("pop expected %d, got %d err=%v", i, val, err)
		}
	}
	if !queue.Empty() {
		t.Fatal("queue should be empty after draining")
	}
}

func TestQueueEmptyOps(t *testing.T) {
	queue := NewQueue[int]()
	if _, err := queue.Pop(); !errors.Is(err, ErrEmptyContainer) {
		t.Fatalf("pop empty expected ErrEmptyContainer, got %v", err)
	}
	if _, err := queue.Peek(); !errors.Is(err, ErrEmptyContainer) {
		t.Fatalf("peek empty expected ErrEmptyContainer, got %v", err)
	}
}

func TestQueuePeek(t *testing.T) {
	queue := NewQueue[string]()
	queue.Push("first")
	queue.Push("second")

	val, err := queue.Peek()
	if err != nil || val != "first" {
		t.Fatalf("peek expected first, got %q err=%v", val, err)
	}
	if queue.Size() != 2 {
		t.Fatalf("peek must not consume, size=%d", queue.Size())
	}
}

func TestQueueValueAndIter(t *testing.T) {
	queue := NewQueue[int]()
	for i := 1; i <= 4; i++ {
		queue.Push(i)
	}
	if _, err := queue.Pop(); err != nil {
		t.Fatalf("pop failed: %v", err)
	}

	if !slices.Equal(queue.Value(), []int{2, 3, 4}) {
		t.Fatalf("value expected [2 3 4], got %v", queue.Value())
	}
	collected := make([]int, 0, 3)
	for val := range queue.Iter() {
		collected = append(collected, val)
	}
	if !slices.Equal(collected, []int{2, 3, 4}) {
		t.Fatalf("iter expected [2 3 4], got %v", collected)
	}
}

func TestQueueClear(t *testing.T) {
	queue := NewQueue[int]()
	for i := 0; i < 20; i++ {
		queue.Push(i)
	}
	queue.Clear()
	if !queue.Empty() || queue.Size() != 0 {
		t.Fatalf("queue should be empty after clear, size=%d", queue.Size())
	}
	queue.Push(7)
	val, err := queue.Pop()
	if err != nil || val != 7 {
		t.Fatalf("push after clear broken, got %d err=%v", val, err)
	}
}
