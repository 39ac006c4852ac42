package meshing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"blockmesh/internal/logger"
	"blockmesh/internal/profiling"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrPoolClosed is returned by Batch after Shutdown.
var ErrPoolClosed = errors.New("meshing: worker pool closed")

// Region locates one job's output inside a batch buffer.
type Region struct {
	Offset   int
	Floats   int
	Vertices int
	Stride   int
}

// Batch is the output of WorkerPool.Batch: one buffer holding every job's
// vertices in submission order.
type Batch struct {
	Data    []float32
	Regions []Region
}

// Vertices returns the slice of Data written by job i.
func (b *Batch) Vertices(i int) []float32 {
	r := b.Regions[i]
	return b.Data[r.Offset : r.Offset+r.Floats]
}

// task is a job bound to its slice of the batch buffer.
type task struct {
	job    Job
	dst    []float32
	index  int
	result chan<- taskResult
}

type taskResult struct {
	index    int
	vertices int
	err      error
}

// WorkerPool runs emit jobs on a fixed set of goroutines. Each job writes to
// its own capacity-clipped region, so workers never share memory.
type WorkerPool struct {
	jobQueue chan task
	workers  int
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	once     sync.Once
}

// NewWorkerPool creates a new pool and starts its workers.
func NewWorkerPool(workers int, queueSize int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		jobQueue: make(chan task, queueSize),
		workers:  workers,
		ctx:      ctx,
		cancel:   cancel,
	}

	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker(i)
	}
	return pool
}

// Batch sizes every job, allocates one buffer for all of them and emits the
// jobs concurrently. Job errors are combined; on any error no batch is
// returned.
func (p *WorkerPool) Batch(ctx context.Context, jobs []Job) (*Batch, error) {
	defer profiling.Track("meshing.Batch")()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.ctx.Err() != nil {
		return nil, ErrPoolClosed
	}

	regions := make([]Region, len(jobs))
	total := 0
	for i, j := range jobs {
		f := j.Floats()
		regions[i] = Region{Offset: total, Floats: f, Stride: j.Stride()}
		total += f
	}
	data := make([]float32, total)

	// Buffered so workers never block on a caller that gave up.
	results := make(chan taskResult, len(jobs))
	for i, j := range jobs {
		r := regions[i]
		t := task{
			job:    j,
			dst:    data[r.Offset : r.Offset+r.Floats : r.Offset+r.Floats],
			index:  i,
			result: results,
		}
		select {
		case p.jobQueue <- t:
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-p.ctx.Done():
			return nil, ErrPoolClosed
		}
	}

	var err error
	for range jobs {
		select {
		case res := <-results:
			if res.err != nil {
				err = multierr.Append(err, fmt.Errorf("job %d: %w", res.index, res.err))
				continue
			}
			regions[res.index].Vertices = res.vertices
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-p.ctx.Done():
			return nil, ErrPoolClosed
		}
	}
	if err != nil {
		logger.Log.Warn("mesh batch failed",
			zap.Int("jobs", len(jobs)),
			zap.Int("errors", len(multierr.Errors(err))))
		return nil, err
	}

	logger.Log.Debug("mesh batch built",
		zap.Int("jobs", len(jobs)),
		zap.Int("floats", total))
	return &Batch{Data: data, Regions: regions}, nil
}

// worker is the worker goroutine that processes emit tasks
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for {
		select {
		case t := <-p.jobQueue:
			n, err := t.job.Emit(t.dst)
			t.result <- taskResult{index: t.index, vertices: n, err: err}
		case <-p.ctx.Done():
			logger.Log.Debug("mesh worker stopped", zap.Int("worker", id))
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit. Batches still
// waiting return ErrPoolClosed.
func (p *WorkerPool) Shutdown() {
	p.once.Do(func() {
		p.cancel()
		p.wg.Wait()
	})
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// GetQueueLength returns the current number of tasks in the queue
func (p *WorkerPool) GetQueueLength() int {
	return len(p.jobQueue)
}
