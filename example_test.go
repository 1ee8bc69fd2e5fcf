package seqkit_test

import (
	"errors"
	"fmt"

	"go.llib.dev/seqkit"
)

func ExampleSequence() {
	seq := seqkit.New(5, 10, 15)
	seq.Append(20)

	for v := range seq.Values() {
		fmt.Println(v + 1)
	}

	// Output:
	// 6
	// 11
	// 16
	// 21
}

func ExampleSequence_cursorTraversal() {
	seq := seqkit.New("foo", "bar", "baz")

	for cur := seq.Begin(); ; {
		atEnd, err := cur.Equal(seq.End())
		if err != nil {
			panic(err)
		}
		if atEnd {
			break
		}
		v, _ := cur.Value()
		fmt.Println(v)
		cur, err = cur.Next()
		if err != nil {
			panic(err)
		}
	}

	// Output:
	// foo
	// bar
	// baz
}

func ExampleSequence_RemoveAt() {
	seq := seqkit.New(1, 2, 3, 4)

	cur, err := seq.Begin().Next() // cursor of the element with value 2
	if err != nil {
		panic(err)
	}

	// the removal invalidates every previously made cursor,
	// continuing is only possible with the returned cursor
	cur, err = seq.RemoveAt(cur)
	if err != nil {
		panic(err)
	}

	v, _ := cur.Value()
	fmt.Println(v)
	fmt.Println(seq.ToSlice())

	// Output:
	// 3
	// [1 3 4]
}

func ExampleSequence_RemoveAt_staleCursorDetection() {
	seq := seqkit.New(1, 2, 3, 4)

	cur, _ := seq.Begin().Next()

	// the returned continuation cursor is deliberately discarded here,
	// which is the classic iterator invalidation mistake
	_, _ = seq.RemoveAt(cur)

	_, err := cur.Value()
	fmt.Println(errors.Is(err, seqkit.ErrStaleCursor))

	// Output:
	// true
}
