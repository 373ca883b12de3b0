package wpool

import "sync/atomic"

// Descriptor is handed to every worker's function: its own index, the
// pool size, and the synchronisation state shared by every worker of the
// current Launch call (spec.md §5 "descriptor exposes this worker's
// index and the pool size").
type Descriptor struct {
	idx   int
	size  int
	state *launchState
}

type launchState struct {
	barrier *cyclicBarrier
	slots   []interface{}
	abort   int32 // atomic: shared abort_flag (§5 "Cancellation")
}

func newLaunchState(n int) *launchState {
	return &launchState{barrier: newCyclicBarrier(n), slots: make([]interface{}, n)}
}

// Index returns this worker's 0-based position in the pool.
func (d *Descriptor) Index() int { return d.idx }

// Size returns the pool's worker count.
func (d *Descriptor) Size() int { return d.size }

// Barrier blocks until every worker of this Launch call has called it.
func (d *Descriptor) Barrier() { d.state.barrier.wait() }

// RequestAbort sets the shared abort flag (spec.md §5: "allows any
// worker to request a clean abort on resource exhaustion or overflow,
// which all other workers check at the next barrier"). Idempotent.
func (d *Descriptor) RequestAbort() { atomic.StoreInt32(&d.state.abort, 1) }

// Aborted reports whether any worker has called RequestAbort.
func (d *Descriptor) Aborted() bool { return atomic.LoadInt32(&d.state.abort) == 1 }

// Pool is a fixed-size worker pool (spec.md §5 "Worker pool. Fixed
// size.").
type Pool struct {
	size int
}

// NewPool creates a pool of the given fixed worker count. Panics if
// size <= 0.
func NewPool(size int) *Pool {
	if size <= 0 {
		panic("wpool: NewPool(size<=0)")
	}
	return &Pool{size: size}
}

// Size returns the pool's fixed worker count.
func (p *Pool) Size() int { return p.size }

// Launch runs fn once per worker, each invocation receiving a Descriptor
// scoped to this call and the shared argument, and blocks until every
// worker returns (spec.md §5: "launch(context, func, shared_arg)").
// A pool of size 1 runs fn synchronously on the calling goroutine, so a
// deterministic-mode / single-worker context never pays goroutine
// scheduling cost.
// Complexity: O(size) goroutines, one barrier-synchronisation pass per
// Barrier()/Reduce()/Scan() call inside fn.
func (p *Pool) Launch(fn func(d *Descriptor, shared interface{}), shared interface{}) {
	state := newLaunchState(p.size)
	if p.size == 1 {
		fn(&Descriptor{idx: 0, size: 1, state: state}, shared)
		return
	}
	done := make(chan struct{}, p.size)
	for i := 0; i < p.size; i++ {
		go func(idx int) {
			defer func() { done <- struct{}{} }()
			fn(&Descriptor{idx: idx, size: p.size, state: state}, shared)
		}(i)
	}
	for i := 0; i < p.size; i++ {
		<-done
	}
}
