package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// LocalBackend reads images from a directory on the local filesystem.
type LocalBackend struct {
	root string
}

var _ Backend = (*LocalBackend)(nil)

func NewLocalBackend(root string) *LocalBackend {
	return &LocalBackend{filepath.Clean(root)}
}

func (b *LocalBackend) Read(ctx context.Context, imagePath string) ([]byte, error) {
	fullPath, err := b.resolve(imagePath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSourceNotFound
		}
		return nil, err
	}

	if info.IsDir() {
		return nil, ErrSourceNotFound
	}

	return os.ReadFile(fullPath)
}

func (b *LocalBackend) resolve(imagePath string) (string, error) {
	fullPath := filepath.Join(b.root, filepath.FromSlash(imagePath))

	rel, err := filepath.Rel(b.root, fullPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrSourceNotFound
	}

	return fullPath, nil
}
