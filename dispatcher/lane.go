package dispatcher

import "sync"

// lane is one shard of the dispatcher: a FIFO task queue guarded by
// its own mutex and wakeup condition, drained by exactly one worker
// goroutine. All SUBMIT/CANCEL tasks for a symbol bound to this lane
// execute strictly in enqueue order.
//
// Grounded on original_source/threading/SymbolThreadPool.{hpp,cpp}'s
// ThreadData (queue + mutex + condition_variable), translated into the
// Go idiom of sync.Mutex + sync.Cond. The RingBuffer implementation
// (matching/disruptor_semaphore_batch_safe.go) is a single-producer
// shape tied to one engine per symbol and doesn't generalize to N
// lanes shared across many symbols, so it is not reused here — see
// DESIGN.md.
type lane struct {
	mu    sync.Mutex
	cond  *sync.Cond
	tasks []func()
}

func newLane() *lane {
	l := &lane{}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// enqueue appends task to the lane's queue and wakes the worker.
func (l *lane) enqueue(task func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, task)
	l.mu.Unlock()
	l.cond.Signal()
}

// run drains the lane until stopped() reports true and the queue is
// empty, running each task to completion before pulling the next.
func (l *lane) run(stopped func() bool) {
	for {
		l.mu.Lock()
		for len(l.tasks) == 0 && !stopped() {
			l.cond.Wait()
		}
		if len(l.tasks) == 0 && stopped() {
			l.mu.Unlock()
			return
		}
		task := l.tasks[0]
		l.tasks = l.tasks[1:]
		l.mu.Unlock()

		task()
	}
}

// wake unblocks a worker parked in Wait, used by stop() to let every
// lane observe the running flag has gone false.
func (l *lane) wake() {
	l.cond.Broadcast()
}

func (l *lane) depth() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}
