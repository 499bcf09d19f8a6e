// Package freelist implements a fixed-capacity, typed object pool: a
// lock-free free-list allocator that hands out and reclaims uniformly
// sized values in O(1), without touching the general heap once
// constructed.
//
// # Overview
//
// A Pool owns a backing array of N+1 slots threaded into a singly
// linked free list, with a permanent sentinel slot that is never handed
// out. Allocation removes a slot from the head of the list and
// constructs a value into it; release destroys the value and appends
// the slot at the tail. Four concurrency presets cover every
// combination of single/multiple concurrent allocators and
// single/multiple concurrent releasers:
//
//	q := freelist.NewSPSC[Event](1024)  // one allocator,  one releaser
//	q := freelist.NewMPSC[Event](1024)  // many allocators, one releaser
//	q := freelist.NewSPMC[Event](1024)  // one allocator,  many releasers
//	q := freelist.NewMPMC[Event](1024)  // many allocators, many releasers
//
// # Basic Usage
//
//	pool := freelist.NewMPMC[Connection](256)
//
//	h, err := pool.Allocate(func() (Connection, error) {
//	    return Connection{ID: nextID()}, nil
//	})
//	if err != nil {
//	    // the constructor closure itself failed
//	}
//	if h.Empty() {
//	    // pool exhausted; not an error
//	}
//	defer h.Release()
//
//	conn := h.Ptr()
//
// # Choosing a Discipline
//
// NewStatic and NewDynamic take the allocator and releaser disciplines
// explicitly for cases that don't fit one of the four named presets —
// for example an SPMC pool whose allocator side never runs concurrently
// but whose releasers do. Violating a SingleThreaded discipline's
// contract (e.g. two goroutines calling Allocate on an SPSC pool) is
// undefined behavior: it is a caller contract, not something the pool
// detects. MultiThreaded disciplines are safe under any number of
// concurrent callers on that half.
//
// # Exhaustion and Failure
//
// Allocate distinguishes two distinct "nothing happened" outcomes:
// exhaustion (no free slots) returns an empty Handle and a nil error;
// constructor failure (the caller's closure returned a non-nil error)
// returns that error unchanged, with the slot intact in the free list —
// a failed construction never leaks a slot.
//
// # Static vs. Dynamic
//
// NewStatic and NewDynamic differ only in failure mode, not in
// semantics: NewStatic panics on an invalid capacity or an element type
// too small to share storage with the free-list link, approximating a
// compile-time-sized pool where such a failure would have been a
// compile error; NewDynamic returns an error instead, for pools whose
// size is only known at runtime.
//
// # Ownership
//
// A Pool must strictly outlive every Handle it has issued. A Handle
// recovers its owning Pool from an intrusive back-pointer rather than
// carrying a separate reference, so it stays pointer-sized; Release is
// idempotent, and releasing an empty Handle is a no-op.
//
// # Thread Safety
//
// Pool itself requires no external locking under any of the four
// disciplines — the concurrency guarantees are built into Allocate and
// Release directly. What is not safe is violating the discipline a Pool
// was constructed with (e.g. two concurrent allocators against a
// SingleThreaded allocator half).
package freelist
