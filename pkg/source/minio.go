package source

import (
	"context"
	"errors"
	"path"

	dbconnections "github.com/thebartekbanach/imglide/pkg/connections"
)

// MinioBackend reads images from a minio (or any S3 compatible) bucket.
type MinioBackend struct {
	conn   dbconnections.MinioBlockStorageConnection
	prefix string
}

var _ Backend = (*MinioBackend)(nil)

func NewMinioBackend(conn dbconnections.MinioBlockStorageConnection, prefix string) *MinioBackend {
	return &MinioBackend{conn, prefix}
}

func (b *MinioBackend) Read(ctx context.Context, imagePath string) ([]byte, error) {
	data, _, err := b.conn.GetObject(ctx, path.Join(b.prefix, imagePath))
	if err != nil {
		if errors.Is(err, dbconnections.ErrObjectNotFound) {
			return nil, ErrSourceNotFound
		}
		return nil, err
	}

	return data, nil
}
