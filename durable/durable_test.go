package durable_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/signadot/reprint/durable"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	writeFile(t, path, "old content")

	if err := durable.Replace(path, []byte("new content")); err != nil {
		t.Fatalf("Replace() error = %v", err)
	}
	if got := readFile(t, path); got != "new content" {
		t.Errorf("target = %q, want %q", got, "new content")
	}
	if got := readFile(t, durable.BackupPath(path)); got != "old content" {
		t.Errorf("backup = %q, want %q", got, "old content")
	}
	if _, err := os.Lstat(durable.TempPath(path)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file still present after success: %v", err)
	}
}

func TestReplaceCollision(t *testing.T) {
	tests := []struct {
		name     string
		leftover func(path string) string
	}{
		{name: "temp leftover", leftover: durable.TempPath},
		{name: "backup leftover", leftover: durable.BackupPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "hello.txt")
			writeFile(t, path, "old content")
			leftover := tt.leftover(path)
			writeFile(t, leftover, "stale")

			err := durable.Replace(path, []byte("new content"))
			var ce *durable.CollisionError
			if !errors.As(err, &ce) {
				t.Fatalf("Replace() error = %v, want CollisionError", err)
			}
			if ce.Path != leftover {
				t.Errorf("CollisionError.Path = %q, want %q", ce.Path, leftover)
			}
			if got := readFile(t, path); got != "old content" {
				t.Errorf("target modified on collision: %q", got)
			}
			if got := readFile(t, leftover); got != "stale" {
				t.Errorf("leftover modified on collision: %q", got)
			}
		})
	}
}

func TestReplaceMissingTarget(t *testing.T) {
	// The backup rename fails when there is nothing to back up; the
	// temp file may linger.
	dir := t.TempDir()
	path := filepath.Join(dir, "absent.txt")

	err := durable.Replace(path, []byte("new content"))
	var re *durable.RenameError
	if !errors.As(err, &re) {
		t.Fatalf("Replace() error = %v, want RenameError", err)
	}
	if re.Stage != durable.StageBackup {
		t.Errorf("RenameError.Stage = %v, want StageBackup", re.Stage)
	}
	if got := readFile(t, durable.TempPath(path)); got != "new content" {
		t.Errorf("temp content = %q, want %q", got, "new content")
	}
	if _, err := os.Lstat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("target appeared despite failure: %v", err)
	}
}

func TestReplaceUnwritableDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory permissions work differently on windows")
	}
	if os.Getuid() == 0 {
		t.Skip("directory permissions do not bind root")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	writeFile(t, path, "old content")
	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	err := durable.Replace(path, []byte("new content"))
	var we *durable.WriteError
	if !errors.As(err, &we) {
		t.Fatalf("Replace() error = %v, want WriteError", err)
	}
	if got := readFile(t, path); got != "old content" {
		t.Errorf("target modified on write failure: %q", got)
	}
}

func TestPaths(t *testing.T) {
	if got := durable.TempPath("a/b.txt"); got != "a/b.txt.tmp" {
		t.Errorf("TempPath() = %q", got)
	}
	if got := durable.BackupPath("a/b.txt"); got != "a/b.txt.bk" {
		t.Errorf("BackupPath() = %q", got)
	}
}
