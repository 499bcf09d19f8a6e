package freelist

import "unsafe"

// allocStrategy is the allocator half of a Pool: removing a node from
// the head of the free list and constructing a T into it. stAlloc and
// mtAlloc are its two leaf implementations; a Pool picks one at
// construction time and never switches, as a runtime strategy value
// rather than a distinct Go type per discipline — the algorithm itself
// doesn't change shape between the two, only whether the head CAS can
// fail and retry.
type allocStrategy[T any] interface {
	allocate(p *Pool[T], ctor func() (T, error)) (Handle[T], error)
}

// stAlloc is the single-threaded allocator half: wait-free, no retry
// loop, valid only under the contract that no other goroutine allocates
// from the same Pool concurrently. Because slot[T] keeps next, pool and
// value as distinct fields, constructing T never clobbers the link
// word; the single-allocator contract is still required because head
// is advanced by a plain load followed by a store rather than a CAS, so
// two concurrent allocators could both claim the same slot. Releasers
// never write head, so the contract concerns allocators only.
type stAlloc[T any] struct{}

func (stAlloc[T]) allocate(p *Pool[T], ctor func() (T, error)) (Handle[T], error) {
	h := p.head.Load()
	next := h.next.Load()
	if next == nil {
		return Handle[T]{}, nil
	}

	v, err := ctor()
	if err != nil {
		return Handle[T]{}, err
	}

	h.value = v
	h.pool = unsafe.Pointer(p)
	p.head.Store(next)
	return Handle[T]{ptr: &h.value}, nil
}

// mtAlloc is the multi-threaded allocator half: lock-free, bounded by
// however many times a competing allocator wins the race to advance
// head. A slot is claimed by winning the head CAS before the
// constructor runs; if the constructor fails, the claimed slot is
// unconditionally reinserted at head before the error is returned, so a
// failing constructor never leaks a slot out of the free list.
type mtAlloc[T any] struct{}

func (mtAlloc[T]) allocate(p *Pool[T], ctor func() (T, error)) (Handle[T], error) {
	for {
		h := p.head.Load()
		next := h.next.Load()
		if next == nil {
			return Handle[T]{}, nil
		}
		if !p.head.CompareAndSwap(h, next) {
			continue
		}

		v, err := ctor()
		if err != nil {
			reinsertAtHead(p, h)
			return Handle[T]{}, err
		}

		h.value = v
		h.pool = unsafe.Pointer(p)
		return Handle[T]{ptr: &h.value}, nil
	}
}

// reinsertAtHead unconditionally restores h to the head of the free
// list after a failed construction. h is uniquely owned by the caller
// at this point (it was just claimed by a successful head CAS and has
// not been linked anywhere else), so no other allocator can observe or
// claim it mid-loop; the loop only contends with other allocators' head
// CASes and concurrent releasers appending at the tail.
func reinsertAtHead[T any](p *Pool[T], h *slot[T]) {
	for {
		cur := p.head.Load()
		h.next.Store(cur)
		if p.head.CompareAndSwap(cur, h) {
			return
		}
	}
}
