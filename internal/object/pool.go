package object

import "github.com/tomz197/shmup/internal/draw"

// Pool is an ordered, bounded collection of live objects of one type.
// A capacity of zero means unbounded.
type Pool[T Object] struct {
	items    []T
	capacity int
}

// NewPool creates an empty pool with the given capacity.
func NewPool[T Object](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Spawn adds obj if the pool has room. A full pool silently drops the request.
func (p *Pool[T]) Spawn(obj T) bool {
	if p.Full() {
		return false
	}
	p.items = append(p.items, obj)
	return true
}

// Advance updates every object for one tick, then removes destroyed ones.
func (p *Pool[T]) Advance(ctx *UpdateContext) {
	for _, obj := range p.items {
		if !obj.IsDestroyed() {
			obj.Update(ctx)
		}
	}
	p.Compact()
}

// Compact removes destroyed objects, preserving the order of survivors.
func (p *Pool[T]) Compact() {
	kept := p.items[:0] // reuse backing array
	for _, obj := range p.items {
		if !obj.IsDestroyed() {
			kept = append(kept, obj)
		}
	}
	clear(p.items[len(kept):])
	p.items = kept
}

// Clear removes every object.
func (p *Pool[T]) Clear() {
	clear(p.items)
	p.items = p.items[:0]
}

// Items returns the pool contents in spawn order. Callers must not modify the slice.
func (p *Pool[T]) Items() []T {
	return p.items
}

// Len returns the number of objects in the pool.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Cap returns the pool capacity, zero if unbounded.
func (p *Pool[T]) Cap() int {
	return p.capacity
}

// Full reports whether a Spawn would be dropped.
func (p *Pool[T]) Full() bool {
	return p.capacity > 0 && len(p.items) >= p.capacity
}

// Draw draws every live object in spawn order.
func (p *Pool[T]) Draw(s draw.Sink) {
	for _, obj := range p.items {
		if !obj.IsDestroyed() {
			obj.Draw(s)
		}
	}
}
