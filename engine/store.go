package engine

import (
	"github.com/lixenwraith/tile-survivor/core"
)

// slot holds one stored value and the generation that currently owns it
type slot[T any] struct {
	value      *T
	generation uint32
	alive      bool
}

// Store is a generational slot map keyed by core.Entity
// Removed slots are recycled with a bumped generation so stale handles resolve to not-found
// Iteration follows insertion order of the live entities
type Store[T any] struct {
	slots []slot[T]
	free  []uint32
	order []core.Entity // Live handles in insertion order
}

// NewStore creates an empty store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		slots: make([]slot[T], 0, 64),
		order: make([]core.Entity, 0, 64),
	}
}

// Insert stores val and returns its handle
func (s *Store[T]) Insert(val T) core.Entity {
	v := new(T)
	*v = val

	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		// Generation 0 is reserved for the nil handle
		s.slots = append(s.slots, slot[T]{generation: 1})
	}

	sl := &s.slots[idx]
	sl.value = v
	sl.alive = true

	e := core.Entity{Index: idx, Generation: sl.generation}
	s.order = append(s.order, e)
	return e
}

// Get returns a pointer to the value for a live handle
// The pointer stays valid until the entity is removed
func (s *Store[T]) Get(e core.Entity) (*T, bool) {
	if e.IsNil() || int(e.Index) >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[e.Index]
	if !sl.alive || sl.generation != e.Generation {
		return nil, false
	}
	return sl.value, true
}

// Contains reports whether the handle refers to a live entity
func (s *Store[T]) Contains(e core.Entity) bool {
	_, ok := s.Get(e)
	return ok
}

// Remove deletes the entity and invalidates its handle
// Returns false for stale or nil handles
func (s *Store[T]) Remove(e core.Entity) bool {
	if _, ok := s.Get(e); !ok {
		return false
	}
	s.release(e.Index)

	for i, h := range s.order {
		if h == e {
			copy(s.order[i:], s.order[i+1:])
			s.order = s.order[:len(s.order)-1]
			break
		}
	}
	return true
}

// release frees a slot and bumps its generation
func (s *Store[T]) release(idx uint32) {
	sl := &s.slots[idx]
	sl.value = nil
	sl.alive = false
	sl.generation++
	if sl.generation == 0 {
		sl.generation = 1
	}
	s.free = append(s.free, idx)
}

// Len returns the number of live entities
func (s *Store[T]) Len() int {
	return len(s.order)
}

// Handles appends all live handles in insertion order to dst
// The result is a snapshot, safe to iterate while inserting or removing
func (s *Store[T]) Handles(dst []core.Entity) []core.Entity {
	return append(dst, s.order...)
}

// Range calls fn for every live entity in insertion order until fn returns false
// fn must not insert or remove entities; use Handles for mutation-safe iteration
func (s *Store[T]) Range(fn func(core.Entity, *T) bool) {
	for _, e := range s.order {
		sl := &s.slots[e.Index]
		if !fn(e, sl.value) {
			return
		}
	}
}

// Clear removes every entity; all outstanding handles become stale
func (s *Store[T]) Clear() {
	for _, e := range s.order {
		s.release(e.Index)
	}
	s.order = s.order[:0]
}
