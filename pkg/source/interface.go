package source

import (
	"context"
	"errors"
)

// Backend reads original images from one storage location.
type Backend interface {
	Read(ctx context.Context, imagePath string) ([]byte, error)
}

// Repository resolves an image on a named disk to its original bytes.
type Repository interface {
	Fetch(ctx context.Context, disk, imagePath string) ([]byte, error)
}

var (
	ErrSourceNotFound = errors.New("source image not found")
	ErrUnknownDisk    = errors.New("unknown disk")
)
