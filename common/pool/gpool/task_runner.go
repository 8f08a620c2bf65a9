package gpool

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"

	"go_collections/common/container"
)

var (
	ErrTaskRunnerBusy = errors.New("task runner is busy")
)

// PanicHandler 异常处理函数
type PanicHandler func(ctx context.Context, throwValue any)

// TaskFunc 任务函数
type TaskFunc func(ctx context.Context)

// Task 任务
type Task struct {
	Ctx      context.Context // 上下文
	TaskFunc TaskFunc        // 任务函数
}

// TaskRunner 任务执行器
// 信号量限制在途任务数量 每个任务独立协程执行
type TaskRunner struct {
	panicHandler PanicHandler        // 异常处理函数
	limitChan    chan container.None // 在途任务信号量
	wg           sync.WaitGroup      // 等待组
}

// NewTaskRunner 创建任务执行器
// @param taskQueueSize 最大在途任务数量
// @param panicHandler 异常处理函数
// @return *TaskRunner
func NewTaskRunner(taskQueueSize int, panicHandler PanicHandler) *TaskRunner {
	if panicHandler == nil {
		panicHandler = func(ctx context.Context, throwValue any) {
			slog.Error("[TaskRunner] panic", "throwValue", throwValue)
		}
	}

	return &TaskRunner{
		panicHandler: panicHandler,
		limitChan:    make(chan container.None, taskQueueSize),
	}
}

// Submit 提交任务 在途任务达到上限时阻塞
func (tr *TaskRunner) Submit(task Task) {
	tr.wg.Add(1)
	tr.limitChan <- container.None{}

	go func() {
		defer func() {
			tr.wg.Done()
			<-tr.limitChan
		}()
		defer func() {
			if err := recover(); err != nil {
				tr.panicHandler(task.Ctx, err)
			}
		}()
		task.TaskFunc(task.Ctx)
	}()
}

// SubmitImmediately 提交任务 不阻塞
// 在途任务达到上限返回 ErrTaskRunnerBusy
func (tr *TaskRunner) SubmitImmediately(task Task) error {
	tr.wg.Add(1)
	select {
	case tr.limitChan <- container.None{}:
	default:
		tr.wg.Done()
		return ErrTaskRunnerBusy
	}

	go func() {
		defer func() {
			tr.wg.Done()
			<-tr.limitChan
		}()
		defer func() {
			if err := recover(); err != nil {
				slog.Error("[TaskRunner] SubmitImmediately panic", "throwValue", err, "stack", string(debug.Stack()))
				tr.panicHandler(task.Ctx, err)
			}
		}()
		task.TaskFunc(task.Ctx)
	}()

	return nil
}

// Close 关闭任务执行器 等待在途任务执行完成
func (tr *TaskRunner) Close() {
	tr.wg.Wait()
}
