// Package asyncpool implements the fixed-size worker pool from spec.md
// §4.7: FIFO job submission, one-shot completion per job, and cooperative
// shutdown (a flag plus a closed channel broadcast that wakes every idle
// worker). Submissions after shutdown fail with a ThreadingError rather
// than blocking or panicking.
package asyncpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/fulmenhq/strmetrics/logging"
	"github.com/fulmenhq/strmetrics/simerrors"
)

// job pairs a computation closure with the one-shot channel its result is
// published on.
type job struct {
	fn   func() (interface{}, error)
	done chan Result
}

// Result is the public outcome type returned through a one-shot completion
// channel: Value holds whatever the submitted closure returned, Err holds
// its error (if any).
type Result struct {
	Value interface{}
	Err   error
}

// Pool is a fixed-size worker pool. The zero value is not usable;
// construct with New.
type Pool struct {
	jobs     chan job
	shutdown int32 // atomic bool, 1 once Shutdown has been called
	stop     chan struct{}
	wg       sync.WaitGroup
}

// New starts a Pool with size workers. A size of 0 or less defaults to the
// number of logical CPUs, with a floor of 1, per spec.md §4.7.
func New(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	if size < 1 {
		size = 1
	}

	p := &Pool{
		jobs: make(chan job, 256), // bounded-internally-unbounded FIFO queue
		stop: make(chan struct{}),
	}

	logging.L().Info("asyncpool starting", zap.Int("workers", size))

	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case <-p.stop:
			return
		case j, ok := <-p.jobs:
			if !ok {
				return
			}
			value, err := j.fn()
			if err != nil {
				logging.L().Warn("asyncpool job failed",
					zap.Int("worker_id", id),
					zap.String("kind", string(simerrors.KindOf(err))),
					zap.Error(err),
				)
			}
			j.done <- Result{Value: value, Err: err}
			close(j.done)
		}
	}
}

// Submit enqueues fn and returns a one-shot channel that receives exactly
// one outcome once fn completes. Submitting after Shutdown returns a
// ThreadingError immediately instead of enqueuing.
func (p *Pool) Submit(fn func() (interface{}, error)) (<-chan Result, error) {
	if atomic.LoadInt32(&p.shutdown) == 1 {
		return nil, simerrors.New(simerrors.ThreadingError, "asyncpool: submission after shutdown")
	}

	j := job{fn: fn, done: make(chan Result, 1)}
	select {
	case p.jobs <- j:
		return j.done, nil
	case <-p.stop:
		return nil, simerrors.New(simerrors.ThreadingError, "asyncpool: submission after shutdown")
	}
}

// SubmitAndWait submits fn and blocks until its one-shot completion is
// published, the common case for similarity_async/distance_async, which
// model "suspend the caller until the worker publishes the outcome"
// (spec.md §5) as a synchronous wait on the returned channel rather than
// exposing the channel itself to callers who don't need it.
func (p *Pool) SubmitAndWait(fn func() (interface{}, error)) Result {
	done, err := p.Submit(fn)
	if err != nil {
		return Result{Err: err}
	}
	return <-done
}

// Shutdown stops accepting new submissions, drains in-flight work, and
// waits for every worker to exit. Calling Shutdown more than once is safe;
// only the first call has effect.
func (p *Pool) Shutdown() {
	if !atomic.CompareAndSwapInt32(&p.shutdown, 0, 1) {
		return
	}
	logging.L().Info("asyncpool shutting down")
	close(p.stop)
	p.wg.Wait()
}
