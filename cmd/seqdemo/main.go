// Command seqdemo replays a classic iterator invalidation bug
// on top of a sequence container whose cursors detect staleness.
//
// It traverses the sequence [1, 2, 3, 4] the way the infamous
// vector-erase loop does: the end bound is captured once up front,
// every element greater than one is removed mid traversal,
// and the loop keeps using the cursors it made before the removal.
// With checked cursors the first use after the removal fails with a
// diagnostic and a non-zero exit code instead of reading shifted storage.
package main

import (
	"context"
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/seqkit"
)

func main() {
	cli.Main(context.Background(), DemoCommand{})
}

type DemoCommand struct{}

func (cmd DemoCommand) Summary() string {
	return "replay an iterator invalidation bug against checked cursors"
}

func (cmd DemoCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	if err := cmd.run(w); err != nil {
		w.ExitCode(cli.ExitCodeError)
		fmt.Fprintf(errOut(w), "seqdemo: %s\n", err)
	}
}

func (cmd DemoCommand) run(out io.Writer) error {
	seq := seqkit.New(1, 2, 3, 4)

	end := seq.End() // captured once, the way the faulty loop does it
	cur := seq.Begin()
	for {
		atEnd, err := cur.Equal(end)
		if err != nil {
			return fmt.Errorf("comparing against the cached end bound: %w", err)
		}
		if atEnd {
			break
		}

		v, err := cur.Value()
		if err != nil {
			return fmt.Errorf("dereference at position %d: %w", cur.Index(), err)
		}

		if 1 < v {
			// the continuation cursor is discarded,
			// faithfully replaying the original mistake
			if _, err := seq.RemoveAt(cur); err != nil {
				return fmt.Errorf("removal at position %d: %w", cur.Index(), err)
			}
		}

		if err := seq.SetAt(cur, v+1); err != nil {
			return fmt.Errorf("increment at position %d: %w", cur.Index(), err)
		}
		fmt.Fprintln(out, v+1)

		next, err := cur.Next()
		if err != nil {
			return fmt.Errorf("advance from position %d: %w", cur.Index(), err)
		}
		cur = next
	}
	return nil
}

func errOut(w cli.ResponseWriter) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok {
		if o := ew.Stderr(); o != nil {
			return o
		}
	}
	return w
}
