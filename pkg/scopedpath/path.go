package scopedpath

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/scopedpath/pkg/scopedpath/filesystem"
)

// Path owns a filesystem path and removes the entry at that path when it is
// closed, unless Keep was called first. Directories are removed recursively;
// files, symlinks and other single entries are removed as entries, without
// following links. Create instances with New, NewFS, Temp, TempIn or
// WriteTemp; the zero value has no filesystem attached.
//
// Construction never touches the filesystem and the wrapped path does not
// have to exist: closing a path whose entry is already gone is a successful
// no-op. The usual shape is
//
//	p := scopedpath.New(dir)
//	defer p.Close()
type Path struct {
	path  string
	armed bool
	fsys  filesystem.FileSystem
}

// New wraps path in a scoped deletable path. The entry at path, if any exists
// by then, is removed when the returned value is closed.
func New(path string) *Path {
	return NewFS(path, filesystem.NewOSFileSystem())
}

// NewFS is New with an explicit filesystem, for removal that should go
// through something other than the host filesystem.
func NewFS(path string, fsys filesystem.FileSystem) *Path {
	return &Path{path: path, armed: true, fsys: fsys}
}

// Path returns the wrapped path.
func (p *Path) Path() string {
	return p.path
}

// String implements fmt.Stringer, returning the wrapped path.
func (p *Path) String() string {
	return p.path
}

// Join returns the wrapped path joined with elem. The result is a plain
// string, not a new scoped path.
func (p *Path) Join(elem ...string) string {
	return filepath.Join(append([]string{p.path}, elem...)...)
}

// Base returns the last element of the wrapped path.
func (p *Path) Base() string {
	return filepath.Base(p.path)
}

// Ext returns the file name extension of the wrapped path.
func (p *Path) Ext() string {
	return filepath.Ext(p.path)
}

// Dir returns all but the last element of the wrapped path.
func (p *Path) Dir() string {
	return filepath.Dir(p.path)
}

// Exists reports whether an entry currently exists at the wrapped path.
func (p *Path) Exists() bool {
	_, err := p.fsys.Lstat(p.path)
	return err == nil
}

// IsDir reports whether the wrapped path currently refers to a directory.
func (p *Path) IsDir() bool {
	info, err := p.fsys.Lstat(p.path)
	return err == nil && info.IsDir()
}

// Keep cancels the pending removal and returns the wrapped path. The entry
// survives Close from here on; there is no way to re-arm the instance.
func (p *Path) Keep() string {
	p.armed = false
	return p.path
}

// Close removes the entry at the wrapped path if the instance is still armed,
// and disarms it either way, so at most one removal attempt happens per
// instance. Close never reports failure: it runs in defer position, often
// while an earlier error is already in flight, so a fault here is logged at
// warn level and dropped. Use Remove when the caller needs the error.
func (p *Path) Close() error {
	if !p.armed {
		return nil
	}
	p.armed = false
	if err := p.remove(); err != nil {
		Logger().Warn().Err(err).Str("path", p.path).Msg("scoped path cleanup failed")
	}
	return nil
}

// Remove removes the entry at the wrapped path and disarms the instance, so a
// later Close is a no-op. Unlike Close it propagates failure, wrapped in a
// *RemoveError. Removing a path whose entry is already gone succeeds.
func (p *Path) Remove() error {
	p.armed = false
	if err := p.remove(); err != nil {
		return &RemoveError{Path: p.path, Err: err}
	}
	return nil
}

func (p *Path) remove() error {
	info, err := p.fsys.Lstat(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		// Type check failed for some other reason. RemoveAll covers both
		// files and directories and tolerates absence.
		return p.fsys.RemoveAll(p.path)
	}

	if info.IsDir() {
		return p.fsys.RemoveAll(p.path)
	}

	if err := p.fsys.Remove(p.path); err != nil {
		// Vanished between the type check and the removal: already clean.
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return p.fsys.RemoveAll(p.path)
	}
	return nil
}
