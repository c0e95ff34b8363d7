package core

import "iter"

// Handle addresses one slot of a Pool.
type Handle int

// Pool is a fixed-capacity set of reusable value slots. Spawning claims the
// first dead slot, despawning clears its alive flag. The slot count never
// changes after construction; when every slot is alive Acquire reports no
// slot and the caller drops the request.
type Pool[T any] struct {
	slots []T
	alive []bool
	count int
}

// NewPool creates a pool with capacity slots, all dead.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{
		slots: make([]T, capacity),
		alive: make([]bool, capacity),
	}
}

// Cap returns the number of slots.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Len returns the number of alive slots.
func (p *Pool[T]) Len() int {
	return p.count
}

// Acquire claims the lowest-index dead slot and marks it alive.
// The slot keeps whatever values it held before; the caller must
// initialize every field it relies on.
func (p *Pool[T]) Acquire() (Handle, *T, bool) {
	for i, alive := range p.alive {
		if alive {
			continue
		}
		p.alive[i] = true
		p.count++
		return Handle(i), &p.slots[i], true
	}
	return -1, nil, false
}

// Release marks the slot dead. Releasing a dead slot is a no-op.
func (p *Pool[T]) Release(h Handle) {
	if !p.valid(h) || !p.alive[h] {
		return
	}
	p.alive[h] = false
	p.count--
}

// All iterates alive slots in slot index order. Slots released during
// iteration are skipped if not yet visited.
func (p *Pool[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for i := range p.slots {
			if !p.alive[i] {
				continue
			}
			if !yield(Handle(i), &p.slots[i]) {
				return
			}
		}
	}
}

// Each calls fn for every alive slot in slot index order.
func (p *Pool[T]) Each(fn func(h Handle, v *T)) {
	for h, v := range p.All() {
		fn(h, v)
	}
}

// Clear marks every slot dead.
func (p *Pool[T]) Clear() {
	clear(p.alive)
	p.count = 0
}

func (p *Pool[T]) valid(h Handle) bool {
	return h >= 0 && int(h) < len(p.slots)
}
