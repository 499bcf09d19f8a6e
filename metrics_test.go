package freelist

import "testing"

func TestMetrics(t *testing.T) {
	const n = 4
	p := NewSPSC[testPayload](n)

	if got := p.Metrics(); got.Allocated != 0 || got.Capacity != n || got.Utilization != 0 {
		t.Fatalf("Metrics() on a fresh pool = %+v, want {Allocated:0 Capacity:%d Utilization:0}", got, n)
	}

	var handles []Handle[testPayload]
	for i := 0; i < 3; i++ {
		h, err := p.Allocate(newTestPayload(uint(i), uint(i)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		handles = append(handles, h)
	}

	m := p.Metrics()
	if m.Allocated != 3 {
		t.Fatalf("Allocated = %d, want 3", m.Allocated)
	}
	if m.Capacity != n {
		t.Fatalf("Capacity = %d, want %d", m.Capacity, n)
	}
	wantUtil := 3.0 / float64(n)
	if m.Utilization != wantUtil {
		t.Fatalf("Utilization = %v, want %v", m.Utilization, wantUtil)
	}

	for i := range handles {
		handles[i].Release()
	}
	if got := p.Len(); got != 0 {
		t.Fatalf("Len() after releasing all handles = %d, want 0", got)
	}
}
