package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "a", "b", "c")

	if err := EnsureDir(dir, DirPerm); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}

	// Second call on an existing directory succeeds.
	if err := EnsureDir(dir, DirPerm); err != nil {
		t.Errorf("EnsureDir on existing dir failed: %v", err)
	}
}

func TestEnsureDirOverFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "occupied")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := EnsureDir(path, DirPerm); err == nil {
		t.Fatal("expected error when a file occupies the path")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "metadata.json")

	if err := WriteFileAtomic(path, []byte("first"), FilePerm); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second"), FilePerm); err != nil {
		t.Fatalf("WriteFileAtomic overwrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}

	// No temp files are left behind.
	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory has %v, want only metadata.json", names)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != FilePerm {
			t.Errorf("permissions = %o, want %o", perm, FilePerm)
		}
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "missing", "file.json")

	if err := WriteFileAtomic(path, []byte("x"), FilePerm); err == nil {
		t.Fatal("expected error when parent directory is missing")
	}
}

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "lesson.md")
	if err := os.WriteFile(path, []byte("# Lesson"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, 0600); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("permissions = %o, want %o", perm, 0600)
		}
	}
}
