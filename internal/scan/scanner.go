package scan

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/handiism/bulktag/internal/model"
	"github.com/handiism/bulktag/internal/store"
	"golang.org/x/sync/errgroup"
)

// LoadError records one file the scanner found but could not load.
type LoadError struct {
	Path string
	Err  error
}

// Scanner discovers audio files under a folder and loads their tags.
//
// Files are matched by extension, loaded concurrently through the
// TagStore (bounded by maxLoads) and returned in deterministic sorted
// path order. Files whose tags fail to load are reported separately
// and never abort the scan.
//
// Example:
//
//	sc := scan.NewScanner(st, []string{".mp3"}, 8)
//	items, failures, err := sc.Scan(ctx, "/music")
type Scanner struct {
	store      store.TagStore
	extensions map[string]bool
	maxLoads   int
}

// NewScanner creates a Scanner reading tags through st.
//
// Extensions are matched case-insensitively and must include the dot
// (".mp3"). maxLoads bounds concurrent Load calls; values below one
// fall back to one.
func NewScanner(st store.TagStore, extensions []string, maxLoads int) *Scanner {
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}
	if maxLoads < 1 {
		maxLoads = 1
	}
	return &Scanner{store: st, extensions: exts, maxLoads: maxLoads}
}

// Scan walks root recursively and returns one Item per matching file
// whose tags loaded, plus a LoadError per file that matched but
// failed to load.
//
// The walk error return is non-nil only when the root itself cannot
// be traversed; unreadable subdirectories are skipped.
func (s *Scanner) Scan(ctx context.Context, root string) ([]*model.Item, []LoadError, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		if s.extensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	sort.Strings(paths)

	items := make([]*model.Item, len(paths))
	errs := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxLoads)
	for i, path := range paths {
		i, path := i, path // capture
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			record, err := s.store.Load(path)
			if err != nil {
				errs[i] = err
				return nil // Continue with other files
			}
			items[i] = model.NewItem(path, record)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var loaded []*model.Item
	var failures []LoadError
	for i := range paths {
		if errs[i] != nil {
			failures = append(failures, LoadError{Path: paths[i], Err: errs[i]})
			continue
		}
		loaded = append(loaded, items[i])
	}

	return loaded, failures, nil
}
