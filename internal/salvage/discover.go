package salvage

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// DefaultPattern matches salvage reward assets.
const DefaultPattern = "SALV_*.asset"

// Discoverer lists the asset files directly inside a directory whose names
// match a filename pattern.
type Discoverer struct {
	pattern string
	logger  *zap.Logger
}

// NewDiscoverer validates pattern (doublestar syntax, no directory
// separators) and returns a Discoverer for it.
func NewDiscoverer(pattern string, logger *zap.Logger) (*Discoverer, error) {
	if pattern == "" || strings.ContainsAny(pattern, "/"+string(filepath.Separator)) {
		return nil, fmt.Errorf("%w %q: must be a bare filename pattern", ErrBadPattern, pattern)
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w %q", ErrBadPattern, pattern)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discoverer{pattern: pattern, logger: logger}, nil
}

// Pattern returns the filename pattern.
func (d *Discoverer) Pattern() string { return d.pattern }

// Match reports whether a file name matches the pattern.
func (d *Discoverer) Match(name string) bool {
	ok, err := doublestar.Match(d.pattern, name)
	return err == nil && ok
}

// Discover yields the matching paths under root in lexical name order.
// The directory is listed once when iteration starts; each entry is
// resolved only as it is reached. A root that cannot be listed yields
// nothing, and entries that fail to resolve are skipped.
func (d *Discoverer) Discover(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		names, err := listNames(root)
		if err != nil {
			if len(names) == 0 {
				d.logger.Debug("cannot list salvage directory", zap.String("root", root), zap.Error(err))
				return
			}
			d.logger.Debug("directory listing incomplete", zap.String("root", root), zap.Error(err))
		}
		sort.Strings(names)

		for _, name := range names {
			if !d.Match(name) {
				continue
			}
			path := filepath.Join(root, name)
			if _, err := os.Lstat(path); err != nil {
				d.logger.Debug("skipping unresolvable entry", zap.String("path", path), zap.Error(err))
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

func listNames(root string) ([]string, error) {
	f, err := os.Open(root)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Readdirnames(-1)
}
