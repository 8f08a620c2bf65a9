package gpool

import (
	"context"
	"log/slog"
	"math/rand"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

var (
	// 协程池ID生成器
	poolIDGenerator uint64
)

const (
	PoolStatusOpen  = 0 // 协程池状态 打开
	PoolStatusClose = 1 // 协程池状态 关闭
)

// Job 任务
// Key 大于等于0时 相同Key的任务路由到同一个工人 保证执行顺序
// Key 小于0时 随机路由
type Job struct {
	Key     int64
	Ctx     context.Context
	Handler func(context.Context) error
}

// Pool 协程池 固定工人数量
type Pool struct {
	id       uint64         // 协程池ID
	status   int32          // 协程池状态
	capacity int            // 工人数量
	workers  []*worker      // 工人列表
	wg       sync.WaitGroup // 等待组
}

// NewPool 创建协程池
// @param capacity 工人数量
// @param jobQueueSize 每个工人的任务队列大小
// @return *Pool
func NewPool(capacity int, jobQueueSize int) *Pool {
	if capacity <= 0 {
		capacity = 1
	}
	pool := &Pool{
		id:       atomic.AddUint64(&poolIDGenerator, 1),
		status:   PoolStatusOpen,
		capacity: capacity,
		workers:  make([]*worker, 0, capacity),
	}
	for i := range capacity {
		work := newWorker(pool.id, i, jobQueueSize)
		pool.workers = append(pool.workers, work)
		pool.wg.Add(1)
		go func() {
			defer pool.wg.Done()
			defer func() {
				if err := recover(); err != nil {
					slog.Error("[Pool] process worker panic", slog.Uint64("poolID", pool.id), slog.Int("workerID", i), slog.Any("error", err), slog.String("stack", string(debug.Stack())))
				}
			}()
			work.process()
		}()
	}

	return pool
}

// Close 关闭协程池 等待存量任务执行完成
func (p *Pool) Close() {
	slog.Info("[Pool] Close starting", slog.Uint64("poolID", p.id))
	if !atomic.CompareAndSwapInt32(&p.status, PoolStatusOpen, PoolStatusClose) {
		// 已经关闭了
		return
	}
	for _, worker := range p.workers {
		close(worker.stopChan)
	}
	p.wg.Wait()
	slog.Info("[Pool] Close success", slog.Uint64("poolID", p.id))
}

// Submit 提交任务
func (p *Pool) Submit(job Job) {
	if atomic.LoadInt32(&p.status) == PoolStatusClose {
		slog.Error("[Pool] Submit pool already closed", slog.Uint64("poolID", p.id))
		return
	}
	index := 0
	if job.Key < 0 {
		// 无序负载均衡
		index = rand.Intn(p.capacity)
	} else {
		// 有序负载均衡
		index = int(job.Key % int64(p.capacity))
	}
	p.workers[index].jobChan <- job
}
