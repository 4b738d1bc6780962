// Package durable replaces a file's content on disk such that at every
// observable instant either the old or the new content is recoverable,
// under the original path or a sibling backup path.
//
// The protocol is write-temp, rename-original-to-backup, rename-temp
// into place. The two renames are not atomic as a pair: a crash between
// them leaves the canonical path empty while both contents survive
// under the sibling paths. Closing that window would need a directory
// entry swap the portable API does not offer, and would change the
// recovery states callers already rely on.
package durable

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/signadot/reprint/debug"
)

const (
	tmpSuffix = ".tmp"
	bakSuffix = ".bk"
)

// TempPath derives the sibling path the new content is staged at.
func TempPath(path string) string {
	return path + tmpSuffix
}

// BackupPath derives the sibling path the pre-edit content is kept at.
// The backup persists after a successful Replace.
func BackupPath(path string) string {
	return path + bakSuffix
}

// CollisionError reports a leftover temp or backup file from a prior
// failed or concurrent run. Replace refuses to overwrite it.
type CollisionError struct {
	Path string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("file %q already exists", e.Path)
}

// WriteError reports a failure writing or syncing the temp file. The
// original file is untouched.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// RenameStage identifies which rename of the replacement protocol
// failed.
type RenameStage int

const (
	// StageBackup is the rename of the original file to the backup
	// path. On failure the original file is still present under its
	// own name and nothing has been promoted.
	StageBackup RenameStage = iota

	// StagePromote is the rename of the temp file onto the original
	// path. On failure the canonical path holds nothing: the new
	// content sits at the temp path and the original content at the
	// backup path, and recovery needs manual intervention.
	StagePromote
)

// RenameError reports a failed rename step. Callers must treat
// StagePromote as the severe case; errors.As on the error and checking
// Stage tells the two apart.
type RenameError struct {
	Stage    RenameStage
	From, To string
	Err      error
}

func (e *RenameError) Error() string {
	if e.Stage == StagePromote {
		return fmt.Sprintf("could not rename %q to %q: %v; new content is at %q and the original at %q, recover manually",
			e.From, e.To, e.Err, e.From, BackupPath(e.To))
	}
	return fmt.Sprintf("could not rename %q to %q: %v", e.From, e.To, e.Err)
}

func (e *RenameError) Unwrap() error { return e.Err }

// Replace writes data to path's temp sibling, syncs it, moves the
// current file to the backup path, and promotes the temp file onto
// path. On success the backup remains on disk as a recovery artifact.
// On failure before the first rename the original file is untouched; a
// temp file may linger.
func Replace(path string, data []byte) error {
	tmp, bak := TempPath(path), BackupPath(path)
	for _, p := range []string{tmp, bak} {
		if _, err := os.Lstat(p); err == nil {
			return &CollisionError{Path: p}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not stat %q: %w", p, err)
		}
	}

	if debug.Write() {
		debug.Logf("write %d bytes to %q\n", len(data), tmp)
	}
	if err := writeTemp(tmp, data); err != nil {
		return &WriteError{Path: tmp, Err: err}
	}

	if debug.Write() {
		debug.Logf("rename %q -> %q\n", path, bak)
	}
	if err := os.Rename(path, bak); err != nil {
		return &RenameError{Stage: StageBackup, From: path, To: bak, Err: err}
	}

	if debug.Write() {
		debug.Logf("rename %q -> %q\n", tmp, path)
	}
	if err := os.Rename(tmp, path); err != nil {
		return &RenameError{Stage: StagePromote, From: tmp, To: path, Err: err}
	}
	return nil
}

func writeTemp(tmp string, data []byte) error {
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
