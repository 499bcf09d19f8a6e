package freelist

import "errors"

// testPayload is a plain two-field value with no failure modes, used
// for the bulk of the allocate/release behavioral tests.
type testPayload struct {
	V1 uint
	V2 uint
}

func newTestPayload(v1, v2 uint) func() (testPayload, error) {
	return func() (testPayload, error) {
		return testPayload{V1: v1, V2: v2}, nil
	}
}

// alignmentPayload combines an unsigned, a bool, and a padding byte,
// chosen to exercise alignment padding between successive slots. On a
// 64-bit platform its size lands exactly at the sizeof(T) >=
// sizeof(link) boundary.
type alignmentPayload struct {
	V1    uint32
	V2    bool
	Blank byte
}

func newAlignmentPayload(v1 uint32, v2 bool) func() (alignmentPayload, error) {
	return func() (alignmentPayload, error) {
		return alignmentPayload{V1: v1, V2: v2, Blank: 'A'}, nil
	}
}

var errConstructionFailed = errors.New("freelist test: construction failed")

// failingPayload is a value whose constructor closure can be made to
// fail on demand, used to exercise the construction-failure recovery
// path.
type failingPayload struct {
	V1     uint
	Throws bool
}

func newFailingPayload(v1 uint, throws bool) func() (failingPayload, error) {
	return func() (failingPayload, error) {
		if throws {
			return failingPayload{}, errConstructionFailed
		}
		return failingPayload{V1: v1, Throws: throws}, nil
	}
}
