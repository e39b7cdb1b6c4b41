package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileSource serves raw match documents from a local directory of *.json
// files. Keys are file names relative to the directory.
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource { return &FileSource{dir: dir} }

func (s *FileSource) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list match documents in %s: %w", s.dir, err)
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		keys = append(keys, e.Name())
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *FileSource) Fetch(_ context.Context, key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, key))
}
