package scopedpath

import (
	"path/filepath"
	"strings"

	"github.com/gammazero/toposort"

	"github.com/arthur-debert/scopedpath/pkg/scopedpath/filesystem"
)

// Sweeper owns a set of scoped paths and releases them together, for
// teardowns that produce more than one entry.
//
// Removal order is child before parent: tracked paths nested under other
// tracked paths are ordered by a topological sort of the nesting relation,
// and unrelated paths go in reverse tracking order, like stacked defers.
type Sweeper struct {
	paths []*Path
	fsys  filesystem.FileSystem
}

// NewSweeper creates a sweeper backed by the host filesystem.
func NewSweeper() *Sweeper {
	return &Sweeper{fsys: filesystem.NewOSFileSystem()}
}

// NewSweeperFS creates a sweeper over an explicit filesystem. Paths created
// through Track share it.
func NewSweeperFS(fsys filesystem.FileSystem) *Sweeper {
	return &Sweeper{fsys: fsys}
}

// Add places already-wrapped paths under the sweeper's ownership.
func (s *Sweeper) Add(paths ...*Path) {
	s.paths = append(s.paths, paths...)
}

// Track wraps path, places it under the sweeper's ownership, and returns it.
func (s *Sweeper) Track(path string) *Path {
	p := NewFS(path, s.fsys)
	s.paths = append(s.paths, p)
	return p
}

// Keep disarms every tracked path.
func (s *Sweeper) Keep() {
	for _, p := range s.paths {
		p.Keep()
	}
}

// Sweep removes every tracked path that is still armed and propagates
// failures, aggregated in a *SweepError. A failed path does not stop the
// others; paths already removed or kept are skipped.
func (s *Sweeper) Sweep() error {
	var errs []error
	for _, p := range s.ordered() {
		if !p.armed {
			continue
		}
		if err := p.Remove(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return &SweepError{Errors: errs}
	}
	return nil
}

// Close is the silent variant of Sweep for use in defer position: failures
// are logged through each path's Close, never returned.
func (s *Sweeper) Close() error {
	for _, p := range s.ordered() {
		_ = p.Close()
	}
	return nil
}

// ordered returns the tracked paths child before parent. Nested paths are
// sorted topologically; whatever the sort does not mention keeps reverse
// tracking order.
func (s *Sweeper) ordered() []*Path {
	reversed := make([]*Path, 0, len(s.paths))
	for i := len(s.paths) - 1; i >= 0; i-- {
		reversed = append(reversed, s.paths[i])
	}

	// Several wrappers may carry the same path string; they travel together.
	index := make(map[string][]*Path, len(reversed))
	for _, p := range reversed {
		index[p.path] = append(index[p.path], p)
	}

	edges := make([]toposort.Edge, 0)
	for _, child := range reversed {
		for _, parent := range reversed {
			if child.path != parent.path && isNested(child.path, parent.path) {
				// Edge is [2]interface{} where element 0 comes before
				// element 1, so the child is removed before its parent.
				edges = append(edges, toposort.Edge{child.path, parent.path})
			}
		}
	}
	if len(edges) == 0 {
		return reversed
	}

	sortedPaths, err := toposort.Toposort(edges)
	if err != nil {
		// The nesting relation cannot cycle, but a sort failure still must
		// not lose paths.
		return reversed
	}

	ordered := make([]*Path, 0, len(reversed))
	seen := make(map[string]bool, len(reversed))
	for _, pathInterface := range sortedPaths {
		pathStr, ok := pathInterface.(string)
		if !ok {
			continue
		}
		if seen[pathStr] {
			continue
		}
		seen[pathStr] = true
		ordered = append(ordered, index[pathStr]...)
	}
	for _, p := range reversed {
		if seen[p.path] {
			continue
		}
		seen[p.path] = true
		ordered = append(ordered, index[p.path]...)
	}
	return ordered
}

// isNested reports whether child lies strictly under parent.
func isNested(child, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
