package mask

// Scheduler defers redraw work to the host's next display frame.
//
// In a browser host RequestFrame maps onto requestAnimationFrame; native hosts
// can run the callback from their draw loop.
type Scheduler interface {
	RequestFrame(fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(fn func())

// RequestFrame calls f(fn).
func (f SchedulerFunc) RequestFrame(fn func()) { f(fn) }

// ImmediateScheduler runs every callback synchronously.
type ImmediateScheduler struct{}

// RequestFrame runs fn at once.
func (ImmediateScheduler) RequestFrame(fn func()) { fn() }

// FrameQueue collects callbacks until the host flushes it once per frame.
type FrameQueue struct {
	pending []func()
}

// RequestFrame queues fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Len returns the number of queued callbacks.
func (q *FrameQueue) Len() int { return len(q.pending) }

// Flush runs the queued callbacks in order. Callbacks queued while flushing
// wait for the next Flush. It returns the number of callbacks run.
func (q *FrameQueue) Flush() int {
	fns := q.pending
	q.pending = nil
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}
