package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"fragdoc/internal/domain"
	"fragdoc/internal/port"
	"github.com/bmatcuk/doublestar/v4"
)

type Walker struct {
	includes []string
	excludes []string
}

func NewWalker(includes, excludes []string) *Walker {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	return &Walker{
		includes: includes,
		excludes: excludes,
	}
}

// Walk returns the selected files under root in lexical order of their
// relative paths. Any traversal failure aborts the walk.
func (w *Walker) Walk(root string) ([]port.FileInfo, error) {
	var files []port.FileInfo

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, &domain.ScanError{Path: root, Err: err}
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, &domain.ScanError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &domain.ScanError{Path: root, Err: fmt.Errorf("not a directory")}
	}

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return &domain.ScanError{Path: path, Err: err}
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return &domain.ScanError{Path: path, Err: err}
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if relPath != "." && w.shouldExclude(relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if w.shouldInclude(relPath) && !w.shouldExclude(relPath) {
			files = append(files, port.FileInfo{
				Path:    path,
				RelPath: relPath,
				Size:    info.Size(),
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})
	return files, nil
}

func (w *Walker) shouldInclude(path string) bool {
	for _, pattern := range w.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (w *Walker) shouldExclude(path string) bool {
	for _, pattern := range w.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &domain.ScanError{Path: path, Err: err}
	}
	return string(data), nil
}
