package freelist

import (
	"sync/atomic"
	"unsafe"
)

// slot is one cell of a Pool's backing array. A slot is in exactly one
// of two states, tracked out-of-band by list membership rather than by
// a tag: free, in which case next threads it into the free list, or
// allocated, in which case pool and value hold the live payload.
//
// The two states do not share storage byte-for-byte: Go's garbage
// collector requires every live object's layout to be stable and
// scannable, so next, pool and value are permanent, always-present
// fields rather than a reinterpreted union. next is simply ignored
// while the slot is allocated, and pool/value are simply ignored while
// it is free.
type slot[T any] struct {
	next  atomic.Pointer[slot[T]]
	pool  unsafe.Pointer // back-pointer to the owning *Pool[T]; set only while allocated
	value T
}

// valueOffset is the offset of the value field within slot[T], used by
// payloadToSlot to recover the enclosing slot from a bare payload
// pointer. unsafe.Offsetof type-checks the selector without evaluating
// it, so this costs nothing at call time; the offset is computed per
// instantiation rather than assumed to be a fixed word count, since Go
// may insert alignment padding between pool and value depending on T's
// alignment requirements.
func valueOffset[T any]() uintptr {
	return unsafe.Offsetof((*slot[T])(nil).value)
}

// payloadToSlot recovers the slot enclosing a payload pointer previously
// handed out by Allocate, by subtracting value's offset from the
// pointer and reinterpreting the result as *slot[T].
func payloadToSlot[T any](p *T) *slot[T] {
	return (*slot[T])(unsafe.Pointer(uintptr(unsafe.Pointer(p)) - valueOffset[T]()))
}
