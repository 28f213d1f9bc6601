package dbconnections

import (
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type InvalidationsDBConnection interface {
	Collection(collectionName string) *mongo.Collection
}

type ObjectInfo struct {
	Name         string
	Size         int64
	ContentType  string
	LastModified time.Time
}

type MinioBlockStorageConnection interface {
	GetObject(ctx context.Context, objectName string) ([]byte, ObjectInfo, error)
	PutObject(ctx context.Context, objectName string, objectSize int64, mimeType string, reader io.Reader) error
	DeleteObject(ctx context.Context, objectName string) error
	ListObjects(ctx context.Context, prefix string) ([]string, error)
}
