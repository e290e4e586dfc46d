package scopedpath

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/arthur-debert/scopedpath/pkg/scopedpath/filesystem"
)

// tempCounter makes names from the same process distinct.
var tempCounter atomic.Uint64

// Temp returns an armed scoped path at a fresh, unique name under the system
// temp directory. Only the name is generated; nothing is created on disk, so
// the caller decides whether the entry becomes a file or a directory.
func Temp() *Path {
	return TempIn(os.TempDir())
}

// TempIn is Temp with a caller-chosen parent directory.
func TempIn(dir string) *Path {
	return New(tempPath(dir))
}

// TempFS is Temp over an explicit filesystem.
func TempFS(fsys filesystem.FileSystem) *Path {
	return NewFS(tempPath(os.TempDir()), fsys)
}

func tempPath(dir string) string {
	seq := tempCounter.Add(1)
	return filepath.Join(dir, fmt.Sprintf("scopedpath-%d-%d", os.Getpid(), seq))
}

// WriteTemp writes data to a fresh scoped temp file and returns its path,
// armed. On a write failure the half-created entry is cleaned up before the
// error is returned.
func WriteTemp(data []byte) (*Path, error) {
	p := Temp()
	if err := p.fsys.WriteFile(p.path, data, 0644); err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("failed to write temp file %s: %w", p.path, err)
	}
	return p, nil
}
