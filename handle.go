package freelist

// Handle is a move-only owning reference to exactly one allocated slot
// of a Pool. It is pointer-sized: a single field pointing at the T
// payload. The zero Handle is the defined "empty" handle; Allocate
// returns one on exhaustion, and releasing an empty Handle is a no-op.
//
// Handle has no copy-suppression mechanism — Go offers none that would
// meaningfully guard a single-pointer struct — so "move-only" here is a
// calling convention, not a compiler-enforced one: don't retain a copy
// of a Handle past the point you call Release on it.
type Handle[T any] struct {
	ptr *T
}

// Empty reports whether h holds no slot, either because it was returned
// by Allocate under exhaustion or because Release has already run.
func (h Handle[T]) Empty() bool {
	return h.ptr == nil
}

// Ptr returns the address of the payload, valid for as long as h has
// not been released and the owning Pool is still alive. It returns nil
// for an empty handle.
func (h Handle[T]) Ptr() *T {
	return h.ptr
}

// Release returns h's slot to its owning Pool's free list, as if by the
// releaser half the Pool was constructed with. It recovers the owning
// Pool from the intrusive back-pointer written during Allocate rather
// than carrying a separate reference, keeping Handle pointer-sized.
// Release on an empty Handle is a no-op; Release is
// idempotent — after it runs once, h becomes empty, so a second call
// is itself a no-op rather than a double-free.
func (h *Handle[T]) Release() {
	if h.ptr == nil {
		return
	}
	s := payloadToSlot(h.ptr)
	h.ptr = nil

	pool := (*Pool[T])(s.pool)
	pool.release.release(pool, s)
}
