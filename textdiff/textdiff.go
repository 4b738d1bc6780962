// Package textdiff computes changesets from before/after content.
//
// Changes produces the byte-range edits that turn one buffer into
// another. The result is sorted and non-overlapping by construction, so
// it always passes change.Verify; applying it with splice.Apply
// reproduces the target content exactly.
package textdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/reprint/change"
)

// Changes diffs from against to and returns the changeset that rewrites
// from into to. Runs of adjacent deletions and insertions collapse into
// a single replacement change.
func Changes(from, to []byte) change.Set {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(string(from), string(to), false)

	var set change.Set
	pos := 0
	open := false
	var cur change.Change
	emit := func() {
		if open {
			set = append(set, cur)
			open = false
		}
	}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual:
			emit()
			pos += len(diff.Text)
		case diffpatch.DiffDelete:
			if !open {
				cur = change.Change{Start: pos, End: pos}
				open = true
			}
			pos += len(diff.Text)
			cur.End = pos
		case diffpatch.DiffInsert:
			if !open {
				cur = change.Change{Start: pos, End: pos}
				open = true
			}
			cur.Text += diff.Text
		}
	}
	emit()
	return set
}
