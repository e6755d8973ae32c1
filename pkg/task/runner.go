// Package task provides the shared executor for detached units of work.
// A submitted task never reports a result or error back to its submitter;
// only its side effects (printing, logging) are observable. There is no
// cancellation: once submitted, a task runs to completion.
package task

import "sync"

type Runner struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	wg     sync.WaitGroup
}

// NewRunner starts a pool of workers draining an unbounded FIFO queue.
func NewRunner(workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	r := &Runner{}
	r.cond = sync.NewCond(&r.mu)
	r.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go r.worker()
	}
	return r
}

// Submit enqueues fn for execution on some worker. It never blocks.
// Submissions after Close are dropped.
func (r *Runner) Submit(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.queue = append(r.queue, fn)
	r.cond.Signal()
}

// Close stops intake and waits until every already-submitted task has run.
func (r *Runner) Close() {
	r.mu.Lock()
	r.closed = true
	r.cond.Broadcast()
	r.mu.Unlock()
	r.wg.Wait()
}

func (r *Runner) worker() {
	defer r.wg.Done()
	for {
		r.mu.Lock()
		for len(r.queue) == 0 && !r.closed {
			r.cond.Wait()
		}
		if len(r.queue) == 0 {
			r.mu.Unlock()
			return
		}
		fn := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()
		fn()
	}
}
