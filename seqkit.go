// Package seqkit provides an ordered sequence container with checked cursors.
//
// A Sequence is a growable, index addressable ordered sequence of values.
// Positions within a Sequence are referred to by cursors.
// A cursor is a non-owning reference made from a container identity,
// a logical index and a validity epoch, instead of a raw storage address.
// Every structural mutation of the container advances its epoch,
// which turns any later use of a previously obtained cursor
// into a checked ErrStaleCursor failure instead of a silent read
// of shifted or reclaimed storage.
package seqkit

import (
	"iter"
	"slices"

	"github.com/google/uuid"
	"go.llib.dev/frameless/port/ds"
)

// New creates a Sequence from the received values.
func New[T any](vs ...T) *Sequence[T] {
	var s Sequence[T]
	s.Append(vs...)
	return &s
}

// Sequence is a contiguous ordered sequence of T values.
// Elements occupy the logical positions 0..Len()-1 and traversal order is insertion order.
//
// The zero value is a valid empty Sequence.
//
// A Sequence is meant to be owned by a single goroutine.
type Sequence[T any] struct {
	id    uuid.UUID
	vs    []T
	epoch uint64
}

var _ interface {
	ds.Sequence[any]
	ds.Len
	ds.SliceConveratble[any]
} = &Sequence[any]{}

// Len returns the number of elements in the sequence.
func (s *Sequence[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.vs)
}

// Append adds the received values at the end of the sequence.
//
// When the backing storage has to grow, the growth relocates the stored elements,
// and every cursor made before the append becomes stale.
// When the values fit within the current capacity,
// cursors into the range before the append position stay valid,
// though a previously taken end cursor may come to designate the first appended element.
func (s *Sequence[T]) Append(vs ...T) {
	if len(vs) == 0 {
		return
	}
	if cap(s.vs)-len(s.vs) < len(vs) {
		s.epoch++
	}
	s.vs = append(s.vs, vs...)
}

// Insert adds the received values at the given index,
// shifting the elements at and after the index to the right.
// Insert reports whether the index was within range.
//
// Insert is a structural mutation, it invalidates every outstanding cursor.
func (s *Sequence[T]) Insert(index int, vs ...T) bool {
	if index < 0 || len(s.vs) < index {
		return false
	}
	if len(vs) == 0 {
		return true
	}
	s.vs = slices.Insert(s.vs, index, vs...)
	s.epoch++
	return true
}

// Delete removes the element at the given index,
// shifting every element after it one logical position to the left.
// Delete reports whether the index was within range.
//
// Delete is a structural mutation, it invalidates every outstanding cursor.
func (s *Sequence[T]) Delete(index int) bool {
	if index < 0 || len(s.vs) <= index {
		return false
	}
	s.vs = slices.Delete(s.vs, index, index+1)
	s.epoch++
	return true
}

// Lookup returns the element at the given index.
func (s *Sequence[T]) Lookup(index int) (T, bool) {
	if index < 0 || len(s.vs) <= index {
		var zero T
		return zero, false
	}
	return s.vs[index], true
}

// Set replaces the element at the given index.
// Set reports whether the index was within range.
//
// Set changes no length and relocates nothing, cursors stay valid.
func (s *Sequence[T]) Set(index int, val T) bool {
	if index < 0 || len(s.vs) <= index {
		return false
	}
	s.vs[index] = val
	return true
}

// ToSlice returns a copy of the sequence's elements in traversal order.
func (s *Sequence[T]) ToSlice() []T {
	if s == nil {
		return nil
	}
	var out []T
	return append(out, s.vs...)
}

// Values returns an iterator over the sequence's elements in traversal order.
// The iteration stops when a structural mutation made during the traversal
// invalidates it, instead of carrying on over the pre-mutation storage.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		epoch := s.epoch
		for _, v := range s.vs {
			if s.epoch != epoch {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// identity returns the container identity that cursors are bound to.
func (s *Sequence[T]) identity() uuid.UUID {
	if s.id == uuid.Nil {
		s.id = uuid.New()
	}
	return s.id
}
