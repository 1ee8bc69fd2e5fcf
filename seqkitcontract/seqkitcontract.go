// Package seqkitcontract provides a reusable behavior contract
// for ordered sequence container implementations.
package seqkitcontract

import (
	"fmt"
	"iter"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/iterkit/iterkitcontract"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/ds"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// Sequence validates that a ds.Sequence implementation behaves as
// a growable, index addressable ordered sequence with insertion order traversal.
func Sequence[T any, Subject ds.Sequence[T]](mk func(tb testing.TB) Subject, opts ...SequenceOption[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("smoke", func(t *testcase.T) {
		var (
			seq      = mk(t)
			expected []T
		)
		assert.Equal(t, 0, seqLen[T](seq))
		assert.Empty(t, iterkit.Collect(seq.Values()))

		t.Random.Repeat(3, 7, func() {
			v := c.makeElem(t)
			seq.Append(v)
			expected = append(expected, v)
		})

		assert.Equal(t, len(expected), seqLen[T](seq))
		assert.Equal(t, expected, iterkit.Collect(seq.Values()))

		if cts, ok := any(seq).(ds.SliceConveratble[T]); ok {
			assert.Equal(t, expected, cts.ToSlice())
		}
	})

	s.Test("traversal order is insertion order", func(t *testcase.T) {
		var (
			seq      = mk(t)
			expected []T
		)
		t.Random.Repeat(5, 10, func() {
			v := c.makeElem(t)
			seq.Append(v)
			expected = append(expected, v)
		})
		for i, exp := range expected {
			got, ok := seq.Lookup(i)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		}
	})

	s.Test("lookup out of the current length reports not found", func(t *testcase.T) {
		seq := mk(t)
		seq.Append(c.makeElem(t))

		_, ok := seq.Lookup(seqLen[T](seq))
		assert.False(t, ok)
		_, ok = seq.Lookup(-1)
		assert.False(t, ok)
	})

	s.Test("set replaces in place and keeps the length", func(t *testcase.T) {
		seq := mk(t)
		seq.Append(c.makeElem(t), c.makeElem(t))

		var (
			index = t.Random.IntN(seqLen[T](seq))
			newV  = c.makeElem(t)
		)
		assert.True(t, seq.Set(index, newV))
		assert.Equal(t, 2, seqLen[T](seq))

		got, ok := seq.Lookup(index)
		assert.True(t, ok)
		assert.Equal(t, newV, got)

		assert.False(t, seq.Set(seqLen[T](seq), newV), "setting past the length must be refused")
	})

	s.Test("insert shifts the elements at and after the position to the right", func(t *testcase.T) {
		var (
			seq  = mk(t)
			vs   = []T{c.makeElem(t), c.makeElem(t), c.makeElem(t)}
			newV = c.makeElem(t)
		)
		seq.Append(vs...)

		assert.True(t, seq.Insert(1, newV))
		assert.Equal(t, []T{vs[0], newV, vs[1], vs[2]}, iterkit.Collect(seq.Values()))

		assert.False(t, seq.Insert(seqLen[T](seq)+1, newV), "inserting past one-past-end must be refused")
	})

	s.Test("insert at the length position behaves as append", func(t *testcase.T) {
		var (
			seq  = mk(t)
			newV = c.makeElem(t)
		)
		seq.Append(c.makeElem(t))

		assert.True(t, seq.Insert(seqLen[T](seq), newV))

		got, ok := seq.Lookup(seqLen[T](seq) - 1)
		assert.True(t, ok)
		assert.Equal(t, newV, got)
	})

	s.Test("delete shifts the subsequent elements left by one position", func(t *testcase.T) {
		var (
			seq = mk(t)
			vs  = []T{c.makeElem(t), c.makeElem(t), c.makeElem(t)}
		)
		seq.Append(vs...)

		assert.True(t, seq.Delete(1))
		assert.Equal(t, []T{vs[0], vs[2]}, iterkit.Collect(seq.Values()))
		assert.Equal(t, 2, seqLen[T](seq))

		assert.False(t, seq.Delete(seqLen[T](seq)), "deleting past the length must be refused")
	})

	s.Test("append then delete of the appended element restores the prior contents", func(t *testcase.T) {
		seq := mk(t)
		t.Random.Repeat(1, 5, func() {
			seq.Append(c.makeElem(t))
		})
		prior := iterkit.Collect(seq.Values())

		seq.Append(c.makeElem(t))
		assert.True(t, seq.Delete(seqLen[T](seq)-1))

		assert.Equal(t, prior, iterkit.Collect(seq.Values()))
	})

	s.Describe("#Values", iterkitcontract.IterSeq(func(tb testing.TB) iter.Seq[T] {
		t := testcase.ToT(&tb)
		seq := mk(t)
		t.Random.Repeat(3, 7, func() {
			seq.Append(c.makeElem(t))
		})
		return seq.Values()
	}).Spec)

	return s.AsSuite(fmt.Sprintf("Sequence[%s]", reflectkit.TypeOf[T]().String()))
}

// seqLen reports the subject's length,
// through ds.Len when the subject supports it, by counting otherwise.
func seqLen[T any](seq ds.ReadOnlyList[T]) int {
	if l, ok := any(seq).(ds.Len); ok {
		return l.Len()
	}
	return len(iterkit.Collect(seq.Values()))
}

type SequenceOption[T any] interface {
	option.Option[SequenceConfig[T]]
}

type SequenceConfig[T any] struct {
	MakeElem func(testing.TB) T
}

var _ SequenceOption[int] = SequenceConfig[int]{}

func (c SequenceConfig[T]) Configure(o *SequenceConfig[T]) {
	o.MakeElem = zerokit.Coalesce(c.MakeElem, o.MakeElem)
}

func (c SequenceConfig[T]) makeElem(tb testing.TB) T {
	if c.MakeElem != nil {
		return c.MakeElem(tb)
	}
	t := testcase.ToT(&tb)
	return t.Random.Make(reflectkit.TypeOf[T]()).(T)
}
