package gpool

import (
	"log/slog"

	"go_collections/common/container"
)

// worker 工人
type worker struct {
	poolID   uint64
	workerID int
	jobChan  chan Job
	stopChan chan container.None
}

// newWorker 创建工人
func newWorker(poolID uint64, workerID int, jobQueueSize int) *worker {
	return &worker{
		poolID:   poolID,
		workerID: workerID,
		jobChan:  make(chan Job, jobQueueSize),
		stopChan: make(chan container.None),
	}
}

// process 处理任务
func (w *worker) process() {
	slog.Info("[worker] process starting", slog.Uint64("poolID", w.poolID), slog.Int("workerID", w.workerID))
	for {
		select {
		case job := <-w.jobChan:
			// 正常处理工作队列
			if err := job.Handler(job.Ctx); err != nil {
				slog.Error("[worker] process job handler error", slog.Uint64("poolID", w.poolID), slog.Int("workerID", w.workerID), slog.Any("error", err))
			}
		case <-w.stopChan:
			slog.Info("[worker] process stopping", slog.Uint64("poolID", w.poolID), slog.Int("workerID", w.workerID))
			// 停止接收新任务 排空存量任务
			// jobChan 不关闭 避免和在途的 Submit 竞争
			for {
				select {
				case job := <-w.jobChan:
					if err := job.Handler(job.Ctx); err != nil {
						slog.Error("[worker] process job handler error", slog.Uint64("poolID", w.poolID), slog.Int("workerID", w.workerID), slog.Any("error", err))
					}
				default:
					slog.Info("[worker] process stopped", slog.Uint64("poolID", w.poolID), slog.Int("workerID", w.workerID))
					return
				}
			}
		}
	}
}
