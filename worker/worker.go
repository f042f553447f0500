// SPDX-License-Identifier: MIT

package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/powergeom/cone"
)

// Worker runs submitted jobs one at a time on a dedicated goroutine.
// It is safe for concurrent use.
type Worker struct {
	cfg     Config
	opts    Options
	metrics *metrics

	mu     sync.RWMutex // guards closed and sends on queue
	closed bool
	queue  chan *Job
	done   chan struct{}
}

// Job is a handle on one submitted request.
type Job struct {
	id     uuid.UUID
	req    Request
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	// Written once by the worker goroutine before done is closed.
	res *Result
	err error
}

// New validates cfg and starts the worker goroutine. Config.Parallelism and
// Config.TraceSteps become the defaults of every job; opts may override
// them.
func New(cfg Config, opts ...Option) (*Worker, error) {
	w, err := newWorker(cfg, opts)
	if err != nil {
		return nil, err
	}
	go w.loop()

	return w, nil
}

// newWorker builds a Worker without starting its goroutine.
func newWorker(cfg Config, opts []Option) (*Worker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(Options{parallelism: cfg.Parallelism, traceSteps: cfg.TraceSteps}, opts)
	w := &Worker{
		cfg:     cfg,
		opts:    o,
		metrics: newMetrics(cfg.MetricsNamespace, o.registerer),
		queue:   make(chan *Job, cfg.QueueSize),
		done:    make(chan struct{}),
	}

	return w, nil
}

// Submit enqueues req without blocking. The job's context derives from
// ctx, so cancelling ctx also cancels the job.
//
// Errors: ErrClosed after Close, ErrQueueFull when the queue is at
// capacity, or the validation error of req.
func (w *Worker) Submit(ctx context.Context, req Request) (*Job, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	jctx, cancel := context.WithCancel(ctx)
	job := &Job{id: uuid.New(), req: req, ctx: jctx, cancel: cancel, done: make(chan struct{})}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		cancel()
		return nil, errors.WithStack(ErrClosed)
	}
	w.metrics.depth.Inc()
	select {
	case w.queue <- job:
		klog.V(1).Infof("worker: job %s (%s) submitted", job.id, req.Mode)
		return job, nil
	default:
		w.metrics.depth.Dec()
		cancel()
		return nil, errors.Wrapf(ErrQueueFull, "capacity %d", w.cfg.QueueSize)
	}
}

// Close stops accepting jobs, lets queued jobs run to completion and waits
// for the worker goroutine to exit. Cancel jobs first for a fast shutdown.
// Close is idempotent.
func (w *Worker) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()
	<-w.done
}

// loop is the single consumer of queue.
func (w *Worker) loop() {
	defer close(w.done)
	for job := range w.queue {
		w.metrics.depth.Dec()
		w.runJob(job)
	}
}

func (w *Worker) runJob(job *Job) {
	defer job.cancel()
	klog.V(1).Infof("worker: job %s (%s) started", job.id, job.req.Mode)

	start := time.Now()
	var (
		res *Result
		err error
	)
	if cause := job.ctx.Err(); cause != nil {
		err = errors.Wrap(cone.Cancelled(cause), "worker: cancelled while queued")
	} else {
		res, err = execute(job.ctx, job.id, job.req, w.opts)
	}
	elapsed := time.Since(start)

	w.metrics.observe(job.req.Mode, outcomeOf(err), elapsed.Seconds())
	logFinished(job.id, job.req.Mode, elapsed, err)

	job.res, job.err = res, err
	close(job.done)
}

// ID identifies the job; Result.ID carries the same value.
func (j *Job) ID() uuid.UUID { return j.id }

// Mode returns the mode of the submitted request.
func (j *Job) Mode() Mode { return j.req.Mode }

// Cancel aborts the job. A job still in the queue finishes immediately; a
// running one stops at its next checkpoint. Either way the error matches
// cone.ErrCancelled and context.Canceled.
func (j *Job) Cancel() { j.cancel() }

// Done is closed once the job has finished.
func (j *Job) Done() <-chan struct{} { return j.done }

// Wait blocks until the job finishes or ctx ends. Ending ctx does not
// cancel the job.
func (j *Job) Wait(ctx context.Context) (*Result, error) {
	select {
	case <-j.done:
		return j.res, j.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
