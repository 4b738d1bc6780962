// Package splice applies a sorted, verified changeset to content,
// producing the rewritten bytes in a single linear pass.
package splice

import (
	"errors"
	"fmt"

	"github.com/signadot/reprint/change"
	"github.com/signadot/reprint/debug"
)

// ErrUnordered reports a precondition violation: Apply was handed
// changes that were not sorted, or not verified for overlap. Callers
// get a verified set from change.Verify.
var ErrUnordered = errors.New("splice: changes not ordered")

// OutOfRangeError reports a change whose offsets exceed the content
// length at application time. Offsets are caller supplied and go stale
// when the file changes under them.
type OutOfRangeError struct {
	Change change.Change
	Size   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("change %s out of range for input of %d bytes",
		e.Change, e.Size)
}

// Apply splices src with the changes and returns the rewritten buffer.
// src is not modified. The changes must be sorted and non-overlapping,
// as produced by change.Verify.
//
// An offset equal to len(src) is valid: a change with
// Start == End == len(src) is a pure insertion at the end of the
// content, and a change whose End is len(src) replaces through the end.
func Apply(src []byte, changes change.Set) ([]byte, error) {
	out := make([]byte, 0, grown(len(src), changes))
	pos := 0
	for _, c := range changes {
		if c.Start > len(src) || c.End > len(src) || c.End < c.Start {
			return nil, &OutOfRangeError{Change: c, Size: len(src)}
		}
		if c.Start < pos {
			return nil, ErrUnordered
		}
		if debug.Splice() {
			debug.Logf("splice %s <- %q (pos %d)\n", c, c.Text, pos)
		}
		out = append(out, src[pos:c.Start]...)
		out = append(out, c.Text...)
		pos = c.End
	}
	out = append(out, src[pos:]...)
	return out, nil
}

// grown estimates the output size so the buffer is allocated once.
func grown(n int, changes change.Set) int {
	n += changes.Delta()
	if n < 0 {
		return 0
	}
	return n
}
