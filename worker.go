package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"
	"go.uber.org/zap"
)

// WorkerTaskTimeout is the maximum time allowed for a single worker task
const WorkerTaskTimeout = 2 * time.Minute

// workerPool runs precompute tasks in the background
type workerPool struct {
	workers int            // Number of active workers
	queue   chan task      // Channel for receiving tasks
	wg      sync.WaitGroup // WaitGroup for graceful shutdown synchronization
	once    sync.Once      // Ensure Stop is only executed once
	mu      sync.RWMutex   // Guards stopped against concurrent Submit
	stopped bool           // Set by Stop before the queue is closed
}

// task represents a unit of work to be processed by the worker pool
type task struct {
	target   uint32      // SSID suffix to enumerate
	band     keygen.Band // Band selecting the checksum magic
	taskType string      // Type of task to execute (see TaskType constants)
}

// newWorkerPool creates a pool; Start must be called before tasks are processed
func newWorkerPool(workers, queueSize int) *workerPool {
	return &workerPool{
		workers: workers,
		queue:   make(chan task, queueSize),
	}
}

// Start initializes the worker pool by launching all worker goroutines
func (wp *workerPool) Start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

// Stop gracefully shuts down the worker pool by closing queue and waiting for completion
func (wp *workerPool) Stop() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.stopped = true
		close(wp.queue)
		wp.mu.Unlock()
		wp.wg.Wait()
	})
}

// worker processes tasks from the queue until it is closed
func (wp *workerPool) worker() {
	defer wp.wg.Done()

	for t := range wp.queue {
		ctx, cancel := context.WithTimeout(context.Background(), WorkerTaskTimeout)

		var err error
		switch t.taskType {
		case TaskTypePrecompute:
			var results []keygen.Result
			results, _, err = lookupKeys(ctx, t.target, t.band)
			if err == nil {
				logger.Info("Precompute task finished",
					zap.Uint32("target", t.target),
					zap.String("band", t.band.String()),
					zap.Int("candidates", len(results)))
			}
		default:
			err = fmt.Errorf("unknown task type: %s", t.taskType)
		}

		cancel()

		if err != nil {
			logger.Error("Worker task failed",
				zap.Uint32("target", t.target),
				zap.String("band", t.band.String()),
				zap.String("taskType", t.taskType),
				zap.Error(err),
			)
		}
	}
}

// Submit queues a task without blocking and reports whether it was accepted.
// A full queue drops the task and logs a warning; a stopped pool refuses it.
func (wp *workerPool) Submit(target uint32, band keygen.Band, taskType string) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.stopped {
		logger.Warn("Worker pool stopped, task rejected",
			zap.Uint32("target", target),
			zap.String("taskType", taskType))
		return false
	}

	select {
	case wp.queue <- task{target: target, band: band, taskType: taskType}:
		return true
	default:
		logger.Warn("Worker pool queue full, task dropped",
			zap.Uint32("target", target),
			zap.String("band", band.String()),
			zap.String("taskType", taskType),
		)
		return false
	}
}
