// Package pool is a slot arena for short-lived objects such as dust and
// projectiles. A slot is reused once its object stops existing; slot indices
// are not identities.
package pool

// Poolable is anything that can report whether its slot is in use.
type Poolable interface {
	Exists() bool
}

type Pool[T Poolable] struct {
	items []T
	alloc func() T
}

// New creates a pool with capacity slots, each filled by alloc. alloc must
// return an object that does not exist yet.
func New[T Poolable](capacity int, alloc func() T) *Pool[T] {
	if capacity < 1 {
		capacity = 1
	}
	p := &Pool[T]{alloc: alloc, items: make([]T, 0, capacity)}
	for i := 0; i < capacity; i++ {
		p.items = append(p.items, alloc())
	}
	return p
}

// FreeSlot returns the first non-existing slot. It is a linear scan, O(n) in
// the pool size.
func (p *Pool[T]) FreeSlot() (T, bool) {
	for _, it := range p.items {
		if !it.Exists() {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Grow doubles the capacity. Because capacity doubles, the cost of growing is
// amortized O(1) per acquired slot.
func (p *Pool[T]) Grow() {
	n := len(p.items)
	if n == 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		p.items = append(p.items, p.alloc())
	}
}

// Acquire returns a free slot, growing the pool when every slot is in use. The
// caller reinitializes the returned object in place.
func (p *Pool[T]) Acquire() T {
	if it, ok := p.FreeSlot(); ok {
		return it
	}
	n := len(p.items)
	p.Grow()
	return p.items[n]
}

func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Each visits every slot, existing or not.
func (p *Pool[T]) Each(fn func(T)) {
	for _, it := range p.items {
		fn(it)
	}
}

// Active counts the slots currently in use.
func (p *Pool[T]) Active() int {
	n := 0
	for _, it := range p.items {
		if it.Exists() {
			n++
		}
	}
	return n
}
