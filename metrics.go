package freelist

// Metrics is a snapshot of a Pool's occupancy: how many slots are
// currently handed out, how many exist in total, and the resulting
// utilization ratio.
type Metrics struct {
	Allocated   int     // slots currently handed out
	Capacity    int     // total slots available for allocation
	Utilization float64 // Allocated / Capacity, 0.0 if Capacity is 0
}

// Len returns the number of slots currently allocated. It walks the
// free list to compute Capacity()-freeListLength(), an O(capacity)
// operation not meant for the hot path. Under a multi-threaded
// discipline this is a best-effort snapshot, not a guarantee: there is
// no ordering promise between distinct handles, so a concurrent
// allocate/release can make the count stale between the read and its
// use. Treat it as a metrics hint, never as a basis for a correctness
// decision (e.g. "Len() == 0 implies safe to release the Pool").
func (p *Pool[T]) Len() int {
	return p.Capacity() - p.freeListLength()
}

func (p *Pool[T]) freeListLength() int {
	n := 0
	for s := p.head.Load(); s != nil; s = s.next.Load() {
		n++
	}
	// The walk includes the sentinel itself (it is always reachable as
	// the final node), which is never counted as a free, allocatable
	// slot; subtract it back out.
	return n - 1
}

// Utilization returns Len()/Capacity(), or 0 if Capacity is 0.
func (p *Pool[T]) Utilization() float64 {
	capacity := p.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(p.Len()) / float64(capacity)
}

// Metrics returns a snapshot of the pool's current occupancy.
func (p *Pool[T]) Metrics() Metrics {
	capacity := p.Capacity()
	allocated := p.Len()
	var util float64
	if capacity > 0 {
		util = float64(allocated) / float64(capacity)
	}
	return Metrics{
		Allocated:   allocated,
		Capacity:    capacity,
		Utilization: util,
	}
}
