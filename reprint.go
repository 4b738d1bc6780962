// Package reprint rewrites a file by applying a set of byte-range
// changes and durably replacing it on disk.
//
// # Usage
//
//	cs := change.Set{{Start: 7, End: 12, Text: "Rust"}}
//	if err := reprint.Reprint("hello.txt", cs); err != nil {
//		// the file is untouched unless err is a *durable.RenameError
//	}
//
// The original content survives every failure: validation and
// application run before any file is opened for writing, and the
// durable replacement keeps the pre-edit file at a .bk sibling path.
//
// # Related Packages
//
//   - github.com/signadot/reprint/change - changeset model and verification
//   - github.com/signadot/reprint/splice - changeset application
//   - github.com/signadot/reprint/durable - on-disk replacement
package reprint

import (
	"fmt"
	"os"

	"github.com/signadot/reprint/change"
	"github.com/signadot/reprint/debug"
	"github.com/signadot/reprint/durable"
	"github.com/signadot/reprint/splice"
)

// ReadError reports that the target file could not be opened or read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("could not read %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Reprint applies changes to the file at path and replaces it on disk,
// keeping the previous content at durable.BackupPath(path). The
// changeset may be supplied in any order; it is verified and sorted
// first, with no file touched on a verification failure. A single
// Reprint per path at a time is the caller's responsibility; no
// locking is done here.
func Reprint(path string, changes change.Set) error {
	_, out, err := rewrite(path, changes)
	if err != nil {
		return err
	}
	return durable.Replace(path, out)
}

// Preview applies changes to the file's current content without
// writing anything, returning the content before and after.
func Preview(path string, changes change.Set) (before, after []byte, err error) {
	return rewrite(path, changes)
}

func rewrite(path string, changes change.Set) (src, out []byte, err error) {
	sorted, err := change.Verify(changes)
	if err != nil {
		return nil, nil, err
	}
	if debug.Verify() {
		debug.Logf("verified %d changes for %q (delta %d)\n",
			len(sorted), path, sorted.Delta())
	}
	src, err = os.ReadFile(path)
	if err != nil {
		return nil, nil, &ReadError{Path: path, Err: err}
	}
	out, err = splice.Apply(src, sorted)
	if err != nil {
		return nil, nil, err
	}
	return src, out, nil
}
