package freelist

// releaseStrategy is the releaser half of a Pool: appending a node to
// the tail of the free list after destroying its payload. stRelease and
// mtRelease are its two leaf implementations.
type releaseStrategy[T any] interface {
	release(p *Pool[T], s *slot[T])
}

// stRelease is the single-threaded releaser half: wait-free, valid only
// under the contract that no other goroutine releases into the same
// Pool concurrently.
type stRelease[T any] struct{}

func (stRelease[T]) release(p *Pool[T], s *slot[T]) {
	destroy(s)

	tail := p.tail.Load()
	tail.next.Store(s)
	p.tail.Store(s)
}

// mtRelease is the multi-threaded releaser half: wait-free per release,
// no retry loop, safe under any number of concurrent releasers and
// allocators. It exchanges the old tail for s, then links the old
// tail's next to s; there is a brief window after the exchange and
// before the link publish where an allocator racing the sentinel may
// observe a transient, spurious "exhausted" result even though a free
// slot is in flight.
type mtRelease[T any] struct{}

func (mtRelease[T]) release(p *Pool[T], s *slot[T]) {
	destroy(s)

	prev := p.tail.Swap(s)
	prev.next.Store(s)
}

// destroy clears a slot's payload and detaches it from wherever it was
// linked, preparing it to become the new sentinel. Zeroing value lets
// any references the payload held become collectible.
func destroy[T any](s *slot[T]) {
	var zero T
	s.value = zero
	s.pool = nil
	s.next.Store(nil)
}
