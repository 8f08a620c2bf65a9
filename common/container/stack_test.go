package container

import (
	"errors"
	"slices"
	"testing"
)

func TestStackPushPop(t *testing.T) {
	stack := NewStack[int]()
	if !stack.Empty() {
		t.Fatal("fresh stack should be empty")
	}
	stack.Push(1)
	stack.Push(2)
	stack.Push(3)
	if stack.Size() != 3 {
		t.Fatalf("size expected 3, got %d", stack.Size())
	}

	top, err := stack.Top()
	if err != nil || top != 3 {
		t.Fatalf("top expected 3, got %d err=%v", top, err)
	}
	// 后进先出
	for _, want := range []int{3, 2, 1} {
		val, err := stack.Pop()
		if err != nil || val != want {
			t.Fatalf("pop expected %d, got %d err=%v", want, val, err)
		}
	}
	if _, err = stack.Pop(); !errors.Is(err, ErrEmptyContainer) {
		t.Fatalf("pop empty expected ErrEmptyContainer, got %v", err)
	}
	if _, err = stack.Top(); !errors.Is(err, ErrEmptyContainer) {
		t.Fatalf("top empty expected ErrEmptyContainer, got %v", err)
	}
}

func TestStackIter(t *testing.T) {
	stack := NewStack[int]()
	for i := 1; i <= 5; i++ {
		stack.Push(i)
	}

	upward := make([]int, 0, 5)
	for val := range stack.Iter() {
		upward = append(upward, val)
	}
	if !slices.Equal(upward, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("iter should walk bottom up, got %v", upward)
	}

	downward := make([]int, 0, 5)
	for val := range stack.ReverseIter() {
		downward = append(downward, val)
	}
	if !slices.Equal(downward, []int{5, 4, 3, 2, 1}) {
		t.Fatalf("reverse iter should walk top down, got %v", downward)
	}
	// 遍历不消费元素
	if stack.Size() != 5 {
		t.Fatalf("iteration must not consume, size=%d", stack.Size())
	}
}

func TestStackClone(t *testing.T) {
	original := NewStack[string]()
	original.Push("a")
	original.Push("b")

	clone := original.Clone()
	original.Push("c")
	if _, err := clone.Pop(); err != nil {
		t.Fatalf("pop failed: %v", err)
	}

	if original.Size() != 3 {
		t.Fatalf("mutating clone leaked into original, size=%d", original.Size())
	}
	if clone.Size() != 1 {
		t.Fatalf("clone size expected 1, got %d", clone.Size())
	}
}

func TestStackClear(t *testing.T) {
	stack := NewStack[int]()
	stack.Push(1)
	stack.Push(2)
	stack.Clear()
	if !stack.Empty() {
		t.Fatal("stack should be empty after clear")
	}
	if values := stack.Value(); len(values) != 0 {
		t.Fatalf("value after clear expected empty, got %v", values)
	}
}
