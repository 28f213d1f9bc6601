package cache

import (
	"context"

	cacherepositories "github.com/thebartekbanach/imglide/pkg/cache/repositories"
	"github.com/thebartekbanach/imglide/pkg/request"
)

type CacheService interface {
	Get(ctx context.Context, disk, imagePath string, key request.CacheKey) (cacherepositories.CachedImage, error)
	Save(ctx context.Context, image cacherepositories.CachedImage) error
	InvalidateAllEntriesForImage(ctx context.Context, disk, imagePath string) ([]string, error)
}

type InvalidationService interface {
	GetLastKnownInvalidation(ctx context.Context, disk string) (cacherepositories.InvalidationModel, error)
	Invalidate(ctx context.Context, disk string, imagePaths []string) (cacherepositories.InvalidationModel, error)
}
