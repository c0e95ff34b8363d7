package core

import "testing"

type slot struct {
	n int
}

func TestPoolAcquireUntilFull(t *testing.T) {
	p := NewPool[slot](3)

	for i := 0; i < 3; i++ {
		h, v, ok := p.Acquire()
		if !ok {
			t.Fatalf("Acquire() #%d failed on a pool with free slots", i)
		}
		if int(h) != i {
			t.Errorf("Acquire() #%d returned slot %d, expected lowest free slot %d", i, h, i)
		}
		v.n = i
	}

	if _, _, ok := p.Acquire(); ok {
		t.Error("Acquire() on a full pool should report no slot")
	}
	if p.Len() != 3 || p.Cap() != 3 {
		t.Errorf("Len/Cap = %d/%d, expected 3/3", p.Len(), p.Cap())
	}
}

func TestPoolReleaseReusesSlot(t *testing.T) {
	p := NewPool[slot](4)
	for i := 0; i < 4; i++ {
		_, v, _ := p.Acquire()
		v.n = 100 + i
	}

	p.Release(2)
	p.Release(2) // idempotent
	if p.Len() != 3 {
		t.Fatalf("Len() = %d after releasing one slot, expected 3", p.Len())
	}

	h, v, ok := p.Acquire()
	if !ok || h != 2 {
		t.Fatalf("Acquire() = (%d, %v), expected slot 2", h, ok)
	}
	// Stale state is left for the caller to overwrite.
	if v.n != 102 {
		t.Errorf("reused slot value = %d, expected stale 102", v.n)
	}
}

func TestPoolIterationOrder(t *testing.T) {
	p := NewPool[slot](5)
	for i := 0; i < 5; i++ {
		_, v, _ := p.Acquire()
		v.n = i
	}
	p.Release(1)
	p.Release(3)

	var seen []int
	p.Each(func(h Handle, v *slot) {
		seen = append(seen, v.n)
	})
	expected := []int{0, 2, 4}
	if len(seen) != len(expected) {
		t.Fatalf("Each visited %v, expected %v", seen, expected)
	}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Errorf("Each visited %v, expected %v", seen, expected)
			break
		}
	}

	// Early exit from the range-over-func iterator.
	count := 0
	for range p.All() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("break in All() visited %d slots, expected 1", count)
	}
}

func TestPoolReleaseDuringIteration(t *testing.T) {
	p := NewPool[slot](3)
	for i := 0; i < 3; i++ {
		p.Acquire()
	}

	visited := 0
	for h := range p.All() {
		visited++
		if h == 0 {
			p.Release(1)
		}
	}
	if visited != 2 {
		t.Errorf("visited %d slots, expected 2 (slot 1 released mid-iteration)", visited)
	}
}

func TestPoolClearAndBounds(t *testing.T) {
	p := NewPool[slot](2)
	p.Acquire()
	p.Acquire()
	p.Clear()

	if p.Len() != 0 {
		t.Errorf("Len() = %d after Clear, expected 0", p.Len())
	}
	for h := range p.All() {
		t.Errorf("slot %d still alive after Clear", h)
	}
	p.Release(-1)
	p.Release(99)
	if p.Len() != 0 {
		t.Errorf("Len() = %d after out-of-range Release, expected 0", p.Len())
	}
}
