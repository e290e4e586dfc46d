package filesystem_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/scopedpath/pkg/scopedpath/filesystem"
)

func TestOSFileSystem(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "scopedpath-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer func() {
		if err := os.RemoveAll(tempDir); err != nil {
			t.Logf("Warning: failed to remove temp dir: %v", err)
		}
	}()

	osfs := filesystem.NewOSFileSystem()

	t.Run("WriteFile and Lstat", func(t *testing.T) {
		path := filepath.Join(tempDir, "test.txt")
		content := []byte("Hello, World!")

		if err := osfs.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		info, err := osfs.Lstat(path)
		if err != nil {
			t.Fatalf("Lstat failed: %v", err)
		}
		if info.IsDir() {
			t.Errorf("Expected file, got directory")
		}
		if info.Size() != int64(len(content)) {
			t.Errorf("Expected size %d, got %d", len(content), info.Size())
		}
	})

	t.Run("MkdirAll and Lstat", func(t *testing.T) {
		dirPath := filepath.Join(tempDir, "nested", "deep", "directory")

		if err := osfs.MkdirAll(dirPath, 0755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}

		info, err := osfs.Lstat(dirPath)
		if err != nil {
			t.Fatalf("Lstat failed: %v", err)
		}
		if !info.IsDir() {
			t.Errorf("Expected directory, got file")
		}
	})

	t.Run("Lstat does not follow symlinks", func(t *testing.T) {
		target := filepath.Join(tempDir, "link-target")
		if err := osfs.MkdirAll(target, 0755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}
		link := filepath.Join(tempDir, "link")
		if err := os.Symlink(target, link); err != nil {
			t.Fatalf("Symlink failed: %v", err)
		}

		info, err := osfs.Lstat(link)
		if err != nil {
			t.Fatalf("Lstat failed: %v", err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			t.Errorf("Expected symlink mode, got %v", info.Mode())
		}
		if info.IsDir() {
			t.Errorf("Expected Lstat to report the link itself, not the target directory")
		}
	})

	t.Run("Remove", func(t *testing.T) {
		path := filepath.Join(tempDir, "removable.txt")
		if err := osfs.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		if err := osfs.Remove(path); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if _, err := osfs.Lstat(path); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Expected entry to be gone, stat err: %v", err)
		}
	})

	t.Run("Remove nonexistent", func(t *testing.T) {
		err := osfs.Remove(filepath.Join(tempDir, "never-existed"))
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Expected fs.ErrNotExist, got %v", err)
		}
	})

	t.Run("RemoveAll", func(t *testing.T) {
		dirPath := filepath.Join(tempDir, "tree")
		if err := osfs.MkdirAll(filepath.Join(dirPath, "sub"), 0755); err != nil {
			t.Fatalf("MkdirAll failed: %v", err)
		}
		if err := osfs.WriteFile(filepath.Join(dirPath, "sub", "f"), []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		if err := osfs.RemoveAll(dirPath); err != nil {
			t.Fatalf("RemoveAll failed: %v", err)
		}
		if _, err := osfs.Lstat(dirPath); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Expected tree to be gone, stat err: %v", err)
		}
	})

	t.Run("RemoveAll nonexistent", func(t *testing.T) {
		if err := osfs.RemoveAll(filepath.Join(tempDir, "never-existed")); err != nil {
			t.Errorf("Expected RemoveAll on absent path to succeed, got %v", err)
		}
	})
}
