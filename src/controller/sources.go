package controller

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"srcmetrics/src/util"
)

// FileSources is the set of source files under one root. Buffers are read
// on first use and kept for the rest of the run.
type FileSources struct {
	root  string
	files []string

	mu    sync.Mutex
	cache map[string][]byte
}

// CollectSources walks path and keeps files whose extension is listed.
// A path naming a single file yields just that file. Names are slash
// separated and relative to the root.
func CollectSources(path string, extensions []string) (*FileSources, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading source path: %w", err)
	}

	src := &FileSources{cache: make(map[string][]byte)}
	if !info.IsDir() {
		src.root = filepath.Dir(path)
		src.files = []string{filepath.Base(path)}
		return src, nil
	}

	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToLower(ext)] = true
	}

	src.root = path
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != path && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !wanted[strings.ToLower(filepath.Ext(p))] {
			return nil
		}
		rel, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		src.files = append(src.files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", path, err)
	}

	sort.Strings(src.files)
	util.Debug("Collected %d source files under %s", len(src.files), path)
	return src, nil
}

// Files returns the source names in sorted order
func (s *FileSources) Files() []string {
	return s.files
}

// Buffer returns the content of the named file
func (s *FileSources) Buffer(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if buf, ok := s.cache[name]; ok {
		return buf, nil
	}
	buf, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(name)))
	if err != nil {
		return nil, err
	}
	s.cache[name] = buf
	return buf, nil
}
