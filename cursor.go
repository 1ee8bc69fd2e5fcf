package seqkit

import (
	"slices"

	"github.com/google/uuid"
)

// Cursor is a non-owning reference to a logical position within a Sequence.
//
// A Cursor stays valid until the next structural mutation of its container.
// Using a cursor after a structural mutation fails with ErrStaleCursor,
// and using it with a container other than the one that issued it
// fails with ErrForeignCursor.
type Cursor[T any] struct {
	seq   *Sequence[T]
	owner uuid.UUID
	index int
	epoch uint64
}

// Begin returns a cursor that designates the first element of the sequence.
// For an empty sequence Begin equals End.
func (s *Sequence[T]) Begin() Cursor[T] {
	return s.cursorAt(0)
}

// End returns a cursor that designates the one-past-last position of the sequence.
// The end position is not dereferenceable.
func (s *Sequence[T]) End() Cursor[T] {
	return s.cursorAt(len(s.vs))
}

func (s *Sequence[T]) cursorAt(index int) Cursor[T] {
	return Cursor[T]{
		seq:   s,
		owner: s.identity(),
		index: index,
		epoch: s.epoch,
	}
}

// Index returns the logical position the cursor designates.
// Index is usable regardless of the cursor's validity,
// it reports the position as it was when the cursor was made.
func (c Cursor[T]) Index() int {
	return c.index
}

// Value returns the element the cursor designates.
func (c Cursor[T]) Value() (T, error) {
	var zero T
	if err := c.validate(); err != nil {
		return zero, err
	}
	if len(c.seq.vs) <= c.index {
		return zero, ErrOutOfRange.F("dereference at position %d, length is %d", c.index, len(c.seq.vs))
	}
	return c.seq.vs[c.index], nil
}

// Next returns a cursor advanced by one logical position.
// Advancing the end cursor fails with ErrOutOfRange.
func (c Cursor[T]) Next() (Cursor[T], error) {
	if err := c.validate(); err != nil {
		return Cursor[T]{}, err
	}
	if len(c.seq.vs) <= c.index {
		return Cursor[T]{}, ErrOutOfRange.F("advance from position %d, length is %d", c.index, len(c.seq.vs))
	}
	return c.seq.cursorAt(c.index + 1), nil
}

// Equal reports whether the two cursors designate the same logical position.
//
// Both cursors must be valid.
// Comparing against a cursor that was captured before a structural mutation
// fails with ErrStaleCursor instead of returning a boolean,
// so a traversal can not keep running against a stale end bound.
func (c Cursor[T]) Equal(oth Cursor[T]) (bool, error) {
	if err := c.validate(); err != nil {
		return false, err
	}
	if err := oth.validate(); err != nil {
		return false, err
	}
	if c.owner != oth.owner {
		return false, ErrForeignCursor.F("comparing cursors of two different containers")
	}
	return c.index == oth.index, nil
}

func (c Cursor[T]) validate() error {
	if c.seq == nil {
		return ErrStaleCursor.F("uninitialised cursor")
	}
	if c.epoch != c.seq.epoch {
		return ErrStaleCursor.F("position %d: cursor epoch is %d, the container is at %d",
			c.index, c.epoch, c.seq.epoch)
	}
	return nil
}

// RemoveAt removes the element the cursor designates.
//
// RemoveAt is a structural mutation:
// every element after the removed position shifts one logical position to the left,
// and every cursor made before the call becomes stale,
// including the received cursor and any previously captured end cursor.
// Continuing a traversal is only possible with the returned cursor,
// which designates the element that now occupies the removed position,
// or the end position when the removed element was the last one.
func (s *Sequence[T]) RemoveAt(c Cursor[T]) (Cursor[T], error) {
	if err := s.accept(c); err != nil {
		return Cursor[T]{}, err
	}
	if len(s.vs) <= c.index {
		return Cursor[T]{}, ErrOutOfRange.F("remove at position %d, length is %d", c.index, len(s.vs))
	}
	s.vs = slices.Delete(s.vs, c.index, c.index+1)
	s.epoch++
	return s.cursorAt(c.index), nil
}

// SetAt replaces the element the cursor designates.
//
// SetAt writes in place, it is not a structural mutation and cursors stay valid.
func (s *Sequence[T]) SetAt(c Cursor[T], v T) error {
	if err := s.accept(c); err != nil {
		return err
	}
	if len(s.vs) <= c.index {
		return ErrOutOfRange.F("set at position %d, length is %d", c.index, len(s.vs))
	}
	s.vs[c.index] = v
	return nil
}

func (s *Sequence[T]) accept(c Cursor[T]) error {
	if err := c.validate(); err != nil {
		return err
	}
	if c.owner != s.identity() {
		return ErrForeignCursor.F("cursor of position %d belongs to a different container", c.index)
	}
	return nil
}
