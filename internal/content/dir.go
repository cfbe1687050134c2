package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirSource reads documents from a local directory, for development.
type DirSource struct {
	dir string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Fetch(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(path)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("fetch %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	return data, nil
}
