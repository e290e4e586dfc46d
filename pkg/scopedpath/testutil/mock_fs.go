package testutil

import (
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"
)

// mockEntry represents one entry in the mock filesystem.
type mockEntry struct {
	data    []byte
	mode    fs.FileMode
	modTime time.Time
	dir     bool
}

// MockFS is an in-memory implementation of filesystem.FileSystem for tests.
// Entries live in a flat path-keyed map; a path is also treated as a
// directory when other entries live beneath it. Individual operations can be
// told to fail, which is how the silent-cleanup contract is exercised without
// fighting the host filesystem's permissions.
type MockFS struct {
	mu    sync.RWMutex
	files map[string]*mockEntry

	// FailLstat, FailRemove and FailRemoveAll, when set, are returned (inside
	// a *fs.PathError) from the corresponding operation for every path.
	FailLstat     error
	FailRemove    error
	FailRemoveAll error
}

// NewMockFS creates a new empty mock filesystem.
func NewMockFS() *MockFS {
	return &MockFS{
		files: make(map[string]*mockEntry),
	}
}

// Lstat implements filesystem.StatFS.
func (mfs *MockFS) Lstat(name string) (fs.FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	if mfs.FailLstat != nil {
		return nil, &fs.PathError{Op: "lstat", Path: name, Err: mfs.FailLstat}
	}

	name = filepath.Clean(name)
	if entry, ok := mfs.files[name]; ok {
		return newMockFileInfo(name, entry), nil
	}
	if mfs.hasChildren(name) {
		return newMockFileInfo(name, &mockEntry{mode: 0755, dir: true}), nil
	}
	return nil, &fs.PathError{Op: "lstat", Path: name, Err: fs.ErrNotExist}
}

// WriteFile implements filesystem.WriteFS.
func (mfs *MockFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	name = filepath.Clean(name)
	if entry, ok := mfs.files[name]; ok && entry.dir {
		return &fs.PathError{Op: "writefile", Path: name, Err: syscall.EISDIR}
	}
	mfs.files[name] = &mockEntry{
		data:    append([]byte(nil), data...),
		mode:    perm,
		modTime: time.Now(),
	}
	return nil
}

// MkdirAll implements filesystem.WriteFS.
func (mfs *MockFS) MkdirAll(path string, perm fs.FileMode) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	path = filepath.Clean(path)
	for p := path; ; p = filepath.Dir(p) {
		if entry, ok := mfs.files[p]; ok && !entry.dir {
			return &fs.PathError{Op: "mkdirall", Path: p, Err: syscall.ENOTDIR}
		}
		if _, ok := mfs.files[p]; !ok {
			mfs.files[p] = &mockEntry{mode: perm, modTime: time.Now(), dir: true}
		}
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}
	return nil
}

// Remove implements filesystem.WriteFS. Like os.Remove it refuses to remove
// a non-empty directory.
func (mfs *MockFS) Remove(name string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if mfs.FailRemove != nil {
		return &fs.PathError{Op: "remove", Path: name, Err: mfs.FailRemove}
	}

	name = filepath.Clean(name)
	_, exists := mfs.files[name]
	if !exists && !mfs.hasChildren(name) {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	if mfs.hasChildren(name) {
		return &fs.PathError{Op: "remove", Path: name, Err: syscall.ENOTEMPTY}
	}
	delete(mfs.files, name)
	return nil
}

// RemoveAll implements filesystem.WriteFS. Like os.RemoveAll it succeeds on
// absent paths.
func (mfs *MockFS) RemoveAll(name string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	if mfs.FailRemoveAll != nil {
		return &fs.PathError{Op: "removeall", Path: name, Err: mfs.FailRemoveAll}
	}

	name = filepath.Clean(name)
	delete(mfs.files, name)
	prefix := name + string(filepath.Separator)
	for p := range mfs.files {
		if strings.HasPrefix(p, prefix) {
			delete(mfs.files, p)
		}
	}
	return nil
}

// Exists reports whether an entry exists at path, for test assertions.
func (mfs *MockFS) Exists(path string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	path = filepath.Clean(path)
	if _, ok := mfs.files[path]; ok {
		return true
	}
	return mfs.hasChildren(path)
}

// hasChildren reports whether any entry lives beneath path. Callers hold the
// lock.
func (mfs *MockFS) hasChildren(path string) bool {
	prefix := path + string(filepath.Separator)
	for p := range mfs.files {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// mockFileInfo implements fs.FileInfo for mock entries.
type mockFileInfo struct {
	name  string
	entry *mockEntry
}

func newMockFileInfo(path string, entry *mockEntry) *mockFileInfo {
	return &mockFileInfo{name: filepath.Base(path), entry: entry}
}

func (fi *mockFileInfo) Name() string       { return fi.name }
func (fi *mockFileInfo) Size() int64        { return int64(len(fi.entry.data)) }
func (fi *mockFileInfo) ModTime() time.Time { return fi.entry.modTime }
func (fi *mockFileInfo) IsDir() bool        { return fi.entry.dir }
func (fi *mockFileInfo) Sys() interface{}   { return nil }

func (fi *mockFileInfo) Mode() fs.FileMode {
	if fi.entry.dir {
		return fi.entry.mode | fs.ModeDir
	}
	return fi.entry.mode
}
