package filesystem

import (
	"io/fs"
)

// StatFS provides entry metadata. Lstat does not follow symlinks, so a
// symlink is reported as itself rather than as its target.
type StatFS interface {
	Lstat(name string) (fs.FileInfo, error)
}

// WriteFS defines the write operations needed to create and remove entries.
type WriteFS interface {
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	RemoveAll(name string) error
}

// FileSystem combines metadata and write operations.
type FileSystem interface {
	StatFS
	WriteFS
}
