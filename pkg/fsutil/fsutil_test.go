package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/htmldiff/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content and metadata", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "old.html")
		if err := os.WriteFile(path, []byte("<p>hi</p>"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		content, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(content) != "<p>hi</p>" {
			t.Errorf("content = %q", content)
		}
		if info.Size != int64(len(content)) {
			t.Errorf("Size = %d, want %d", info.Size, len(content))
		}
		if info.Path != path {
			t.Errorf("Path = %q, want %q", info.Path, path)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.html"))
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, _, err := fsutil.ReadFile(ctx, "whatever")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestSameContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) *fsutil.FileInfo {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		return info
	}

	a := write("a.html", "same")
	b := write("b.html", "same")
	c := write("c.html", "different")

	if !fsutil.SameContent(a, b) {
		t.Error("SameContent(a, b) = false, want true")
	}
	if fsutil.SameContent(a, c) {
		t.Error("SameContent(a, c) = true, want false")
	}
	if fsutil.SameContent(a, nil) {
		t.Error("SameContent(a, nil) = true, want false")
	}
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "nested", "diff.html")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if stat.Mode().Perm() != fsutil.DefaultFileMode {
			t.Errorf("mode = %v, want %v", stat.Mode().Perm(), fsutil.DefaultFileMode)
		}
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "diff.html")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("one"), 0o600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("two"), 0o600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1", len(entries))
		}
		got, _ := os.ReadFile(path)
		if string(got) != "two" {
			t.Errorf("content = %q, want %q", got, "two")
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "diff.html")

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("a"), 0)
	if err != nil || !written {
		t.Fatalf("first write = %v, %v; want true, nil", written, err)
	}

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("a"), 0)
	if err != nil || written {
		t.Fatalf("unchanged write = %v, %v; want false, nil", written, err)
	}

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("b"), 0)
	if err != nil || !written {
		t.Fatalf("changed write = %v, %v; want true, nil", written, err)
	}
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "diff.html")

	created, err := fsutil.CreateBackup(ctx, path)
	if err != nil || created {
		t.Fatalf("backup of missing file = %v, %v; want false, nil", created, err)
	}

	if err := os.WriteFile(path, []byte("previous"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	created, err = fsutil.CreateBackup(ctx, path)
	if err != nil || !created {
		t.Fatalf("CreateBackup() = %v, %v; want true, nil", created, err)
	}

	got, err := os.ReadFile(fsutil.BackupPath(path))
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(got) != "previous" {
		t.Errorf("backup content = %q, want %q", got, "previous")
	}
}

func FuzzWriteAtomic(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("<html><body>x</body></html>"))
	f.Add([]byte("\x00\x01\x02\x03"))

	f.Fuzz(func(t *testing.T, content []byte) {
		path := filepath.Join(t.TempDir(), "out.html")
		if err := fsutil.WriteAtomic(context.Background(), path, content, 0); err != nil {
			t.Fatalf("WriteAtomic failed: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content mismatch: got %q, want %q", got, content)
		}
	})
}
