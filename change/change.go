// Package change defines byte-range edits and changeset verification.
//
// A Change replaces the half-open span [Start, End) of some content with
// Text. A Set is verified and sorted with Verify before being handed to
// the splice package; verification is pure and does no I/O.
package change

import (
	"cmp"
	"fmt"
	"slices"
)

// Change is a single byte-range replacement. Start and End are byte
// offsets into the original content with Start <= End; Text may be
// empty (pure deletion), or a span may be empty (pure insertion when
// Start == End).
type Change struct {
	Start int
	End   int
	Text  string
}

// Delta is the signed difference in content length the change introduces.
func (c Change) Delta() int {
	return len(c.Text) - (c.End - c.Start)
}

func (c Change) String() string {
	return fmt.Sprintf("%d--%d", c.Start, c.End)
}

// Compare orders changes by the full (Start, End) tuple. Ordering on
// Start alone would make two changes with the same start but different
// ends compare equal, leaving their relative order to the sort.
func Compare(a, b Change) int {
	if d := cmp.Compare(a.Start, b.Start); d != 0 {
		return d
	}
	return cmp.Compare(a.End, b.End)
}

// Set is an ordered collection of changes applied to one file in one
// operation.
type Set []Change

// Delta sums the per-change deltas, giving the size difference between
// the rewritten content and the original.
func (s Set) Delta() int {
	ttl := 0
	for _, c := range s {
		ttl += c.Delta()
	}
	return ttl
}

// MalformedError reports a change whose end precedes its start, or a
// negative offset.
type MalformedError struct {
	Change Change
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed change at %d: end %d precedes start %d",
		e.Change.Start, e.Change.End, e.Change.Start)
}

// OverlapError reports two changes whose spans intersect, or two
// changes at an identical span whose application order would be
// ambiguous.
type OverlapError struct {
	Prev, Next Change
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping changes: %s overlaps %s", e.Prev, e.Next)
}

// Verify sorts a copy of s and checks that every change is well formed
// and that no two spans overlap. Adjacent spans (one change's End equal
// to the next's Start) are fine. The input is not modified; the sorted
// copy is returned on success.
func Verify(s Set) (Set, error) {
	sorted := slices.Clone(s)
	slices.SortStableFunc(sorted, Compare)
	for i, c := range sorted {
		if c.Start < 0 || c.End < c.Start {
			return nil, &MalformedError{Change: c}
		}
		if i == 0 {
			continue
		}
		prev := sorted[i-1]
		if c.Start < prev.End || (c.Start == prev.Start && c.End == prev.End) {
			return nil, &OverlapError{Prev: prev, Next: c}
		}
	}
	return sorted, nil
}
