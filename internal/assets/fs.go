package assets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FSFetcher resolves theme asset paths against a local directory. Used in
// offline/dev deployments where the static-asset server is just a folder.
type FSFetcher struct{ base string }

func NewFSFetcher(base string) (*FSFetcher, error) {
	if base == "" {
		return nil, errors.New("empty asset dir")
	}
	info, err := os.Stat(base)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset dir %s is not a directory", base)
	}
	return &FSFetcher{base: base}, nil
}

func (f *FSFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(filepath.Join(f.base, filepath.Clean("/"+path)))
}
