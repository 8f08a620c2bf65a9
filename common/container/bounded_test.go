package container

import (
	"errors"
	"slices"
	"testing"
)

func TestBoundedArrayCreate(t *testing.T) {
	ba := NewBoundedArray[int](5)
	if ba.Size() != 0 || !ba.Empty() {
		t.Fatalf("fresh array should be empty, size=%d", ba.Size())
	}
	if ba.Capacity() != 5 {
		t.Fatalf("capacity expected 5, got %d", ba.Capacity())
	}
	if ba.Full() {
		t.Fatal("fresh array should not be full")
	}

	zero := NewBoundedArray[int](0)
	if !zero.Empty() || !zero.Full() {
		t.Fatal("zero capacity array should be both empty and full")
	}
	if err := zero.Append(1); !errors.Is(err, ErrContainerFull) {
		t.Fatalf("append to zero capacity expected ErrContainerFull, got %v", err)
	}

	negative := NewBoundedArray[int](-3)
	if negative.Capacity() != 0 {
		t.Fatalf("negative capacity should clamp to 0, got %d", negative.Capacity())
	}
}

func TestBoundedArrayAppend(t *testing.T) {
	ba := NewBoundedArray[int](2)
	if err := ba.Append(1); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := ba.Append(2); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if ba.Size() != 2 || !ba.Full() {
		t.Fatalf("expected full array of size 2, size=%d", ba.Size())
	}
	if err := ba.Append(3); !errors.Is(err, ErrContainerFull) {
		t.Fatalf("expected ErrContainerFull, got %v", err)
	}
	if ba.Size() != 2 {
		t.Fatalf("failed append must not change size, size=%d", ba.Size())
	}
}

func TestBoundedArrayAppendAllAtomic(t *testing.T) {
	ba := NewBoundedArray[int](5)
	if err := ba.AppendAll(1, 2, 3); err != nil {
		t.Fatalf("append all failed: %v", err)
	}
	// 超容量 整体拒绝
	if err := ba.AppendAll(4, 5, 6); !errors.Is(err, ErrContainerFull) {
		t.Fatalf("expected ErrContainerFull, got %v", err)
	}
	if !slices.Equal(ba.Value(), []int{1, 2, 3}) {
		t.Fatalf("failed bulk append must not change contents, got %v", ba.Value())
	}
	if err := ba.AppendAll(4, 5); err != nil {
		t.Fatalf("append all failed: %v", err)
	}
	if !ba.Full() {
		t.Fatal("array should be full")
	}
}

func TestBoundedArrayAppendSeq(t *testing.T) {
	ba := NewBoundedArray[int](4)
	if err := ba.AppendSeq(slices.Values([]int{7, 8, 9})); err != nil {
		t.Fatalf("append seq failed: %v", err)
	}
	if err := ba.AppendSeq(slices.Values([]int{10, 11})); !errors.Is(err, ErrContainerFull) {
		t.Fatalf("expected ErrContainerFull, got %v", err)
	}
	if !slices.Equal(ba.Value(), []int{7, 8, 9}) {
		t.Fatalf("unexpected contents %v", ba.Value())
	}
}

func TestBoundedArrayAtSet(t *testing.T) {
	ba := NewBoundedArray[string](4)
	_ = ba.AppendAll("a", "b")

	val, err := ba.At(1)
	if err != nil || val != "b" {
		t.Fatalf("at(1) expected b, got %q err=%v", val, err)
	}
	if _, err = ba.At(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("at(-1) expected ErrIndexOutOfRange, got %v", err)
	}
	// 下标校验基于当前元素个数 而不是容量
	if _, err = ba.At(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("at(2) expected ErrIndexOutOfRange, got %v", err)
	}

	if err = ba.Set(0, "x"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	val, _ = ba.At(0)
	if val != "x" {
		t.Fatalf("set did not take effect, got %q", val)
	}
	if err = ba.Set(2, "y"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("set(2) expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestBoundedArrayClone(t *testing.T) {
	original := NewBoundedArray[int](4)
	_ = original.AppendAll(1, 2, 3)

	clone := original.Clone()
	if err := original.Set(0, 100); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	_ = original.Append(4)
	if val, _ := clone.At(0); val != 1 {
		t.Fatalf("mutating original leaked into clone, got %d", val)
	}
	if clone.Size() != 3 {
		t.Fatalf("clone size changed, got %d", clone.Size())
	}

	if err := clone.Set(1, 200); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if val, _ := original.At(1); val != 2 {
		t.Fatalf("mutating clone leaked into original, got %d", val)
	}
}

func TestBoundedArrayClearAndIter(t *testing.T) {
	ba := NewBoundedArray[int](3)
	_ = ba.AppendAll(5, 6, 7)

	collected := make([]int, 0, 3)
	for val := range ba.Iter() {
		collected = append(collected, val)
	}
	if !slices.Equal(collected, []int{5, 6, 7}) {
		t.Fatalf("iter order broken, got %v", collected)
	}

	ba.Clear()
	if !ba.Empty() || ba.Capacity() != 3 {
		t.Fatalf("clear should keep capacity, size=%d capacity=%d", ba.Size(), ba.Capacity())
	}
	if err := ba.Append(1); err != nil {
		t.Fatalf("append after clear failed: %v", err)
	}
}
