// Package walker finds documentation pages under a site or source tree.
package walker

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// DefaultMaxFileSize is the maximum page size to read (4 MB).
const DefaultMaxFileSize int64 = 4 << 20

// FileInfo holds metadata about a single page discovered during traversal.
type FileInfo struct {
	Path    string // Absolute path on disk.
	RelPath string // Slash-separated path relative to the root directory.
	Size    int64  // File size in bytes.
	Kind    Kind   // Page format.
}

// Config controls the behaviour of the Walk function.
type Config struct {
	RootDir     string   // Root directory to walk.
	Include     []string // Glob patterns; only matching files are included.
	Exclude     []string // Glob patterns; matching files are excluded.
	MaxFileSize int64    // Files larger than this are skipped (0 = use default).
}

// Walk traverses the directory tree rooted at cfg.RootDir and returns every
// HTML or Markdown page that passes filtering, sorted by RelPath.
func Walk(cfg Config) ([]FileInfo, error) {
	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}

	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var files []FileInfo

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		if d.IsDir() {
			if path != root && shouldExcludeDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		kind := DetectKind(d.Name())
		if kind == KindUnknown {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if !MatchesInclude(relPath, cfg.Include) || MatchesExclude(relPath, cfg.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil || info.Size() > maxSize {
			return nil
		}

		files = append(files, FileInfo{
			Path:    path,
			RelPath: filepath.ToSlash(relPath),
			Size:    info.Size(),
			Kind:    kind,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}
