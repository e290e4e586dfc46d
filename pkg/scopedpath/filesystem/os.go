package filesystem

import (
	"io/fs"
	"os"
)

// OSFileSystem implements FileSystem directly over the host filesystem.
// Paths are used as given, absolute or relative to the working directory.
type OSFileSystem struct{}

// NewOSFileSystem creates a new host-backed filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Lstat implements StatFS.
func (osfs *OSFileSystem) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

// WriteFile implements WriteFS.
func (osfs *OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// MkdirAll implements WriteFS.
func (osfs *OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Remove implements WriteFS.
func (osfs *OSFileSystem) Remove(name string) error {
	return os.Remove(name)
}

// RemoveAll implements WriteFS.
func (osfs *OSFileSystem) RemoveAll(name string) error {
	return os.RemoveAll(name)
}
