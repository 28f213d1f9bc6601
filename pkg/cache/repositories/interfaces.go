package cacherepositories

import (
	"context"
	"time"

	"github.com/thebartekbanach/imglide/pkg/request"
)

// CachedImage is one stored transformation result.
type CachedImage struct {
	Key         request.CacheKey
	Disk        string
	ImagePath   string
	Data        []byte
	ContentType string
	CreatedAt   time.Time
}

type CachedImagesStorage interface {
	Get(ctx context.Context, disk, imagePath string, key request.CacheKey) (CachedImage, error)
	Save(ctx context.Context, image CachedImage) error
	// DeleteAllOfImage removes every cached variant of one source image and
	// returns the hex keys of removed entries.
	DeleteAllOfImage(ctx context.Context, disk, imagePath string) ([]string, error)
}

type InvalidationModel struct {
	Disk string `json:"disk" bson:"disk"`

	RequestedInvalidations []string `json:"requestedInvalidations" bson:"requestedInvalidations"`
	DoneInvalidations      []string `json:"doneInvalidations" bson:"doneInvalidations"`
	InvalidatedEntries     []string `json:"invalidatedEntries" bson:"invalidatedEntries"`

	InvalidationError *string   `json:"invalidationError" bson:"invalidationError"`
	InvalidationDate  time.Time `json:"invalidationDate" bson:"invalidationDate"`
}

type InvalidationsRepository interface {
	CreateInvalidation(ctx context.Context, invalidation InvalidationModel) error
	GetLatestInvalidation(ctx context.Context, disk string) (InvalidationModel, error)
}
