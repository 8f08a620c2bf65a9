package gpool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolSubmit(t *testing.T) {
	pool := NewPool(4, 16)
	count := int64(0)
	wg := sync.WaitGroup{}

	for i := 0; i < 32; i++ {
		wg.Add(1)
		pool.Submit(Job{
			Key: -1,
			Ctx: context.Background(),
			Handler: func(ctx context.Context) error {
				defer wg.Done()
				atomic.AddInt64(&count, 1)
				return nil
			},
		})
	}
	wg.Wait()
	pool.Close()

	if atomic.LoadInt64(&count) != 32 {
		t.Fatalf("expected 32 executed jobs, got %d", count)
	}
}

func TestPoolOrderedByKey(t *testing.T) {
	pool := NewPool(4, 64)
	results := make([]int, 0, 16)
	wg := sync.WaitGroup{}

	// 相同Key路由到同一个工人 串行执行
	for i := 0; i < 16; i++ {
		wg.Add(1)
		pool.Submit(Job{
			Key: 7,
			Ctx: context.Background(),
			Handler: func(ctx context.Context) error {
				defer wg.Done()
				results = append(results, i)
				return nil
			},
		})
	}
	wg.Wait()
	pool.Close()

	for i, val := range results {
		if val != i {
			t.Fatalf("ordered jobs executed out of order at %d: %v", i, results)
		}
	}
}

func TestPoolCloseWithConcurrentSubmit(t *testing.T) {
	pool := NewPool(2, 64)
	stop := make(chan struct{})
	wg := sync.WaitGroup{}

	// 关闭期间持续投递 不允许出现 send on closed channel
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := int64(0); ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			pool.Submit(Job{
				Key: i,
				Ctx: context.Background(),
				Handler: func(ctx context.Context) error {
					return nil
				},
			})
		}
	}()

	time.Sleep(10 * time.Millisecond)
	pool.Close()
	close(stop)
	wg.Wait()
}

func TestTaskRunnerSubmit(t *testing.T) {
	runner := NewTaskRunner(4, nil)
	count := int64(0)

	for i := 0; i < 10; i++ {
		runner.Submit(Task{
			Ctx: context.Background(),
			TaskFunc: func(ctx context.Context) {
				atomic.AddInt64(&count, 1)
			},
		})
	}
	runner.Close()

	if atomic.LoadInt64(&count) != 10 {
		t.Fatalf("expected 10 executed tasks, got %d", count)
	}
}

func TestTaskRunnerPanicHandler(t *testing.T) {
	caught := int64(0)
	runner := NewTaskRunner(2, func(ctx context.Context, throwValue any) {
		atomic.AddInt64(&caught, 1)
	})

	runner.Submit(Task{
		Ctx: context.Background(),
		TaskFunc: func(ctx context.Context) {
			panic("boom")
		},
	})
	runner.Close()

	if atomic.LoadInt64(&caught) != 1 {
		t.Fatalf("panic handler not called, caught=%d", caught)
	}
}

func TestTaskRunnerBusy(t *testing.T) {
	runner := NewTaskRunner(1, nil)
	blocker := make(chan struct{})

	runner.Submit(Task{
		Ctx: context.Background(),
		TaskFunc: func(ctx context.Context) {
			<-blocker
		},
	})

	err := runner.SubmitImmediately(Task{
		Ctx:      context.Background(),
		TaskFunc: func(ctx context.Context) {},
	})
	if !errors.Is(err, ErrTaskRunnerBusy) {
		t.Fatalf("expected ErrTaskRunnerBusy, got %v", err)
	}

	close(blocker)
	runner.Close()
}
