package cache

import (
	"context"
	"errors"
	"time"

	cacherepositories "github.com/thebartekbanach/imglide/pkg/cache/repositories"
	"github.com/thebartekbanach/imglide/pkg/request"
)

type cacheService struct {
	imagesStorage cacherepositories.CachedImagesStorage
	now           func() time.Time
}

var _ CacheService = (*cacheService)(nil)

func NewCacheService(imagesStorage cacherepositories.CachedImagesStorage) CacheService {
	return &cacheService{imagesStorage, time.Now}
}

func (s *cacheService) Get(ctx context.Context, disk, imagePath string, key request.CacheKey) (cacherepositories.CachedImage, error) {
	image, err := s.imagesStorage.Get(ctx, disk, imagePath, key)
	if err != nil {
		if errors.Is(err, cacherepositories.ErrImageNotFound) {
			return cacherepositories.CachedImage{}, ErrEntryNotFound
		}
		return cacherepositories.CachedImage{}, err
	}

	return image, nil
}

// Save stores the image, replacing any entry stored under the same key.
func (s *cacheService) Save(ctx context.Context, image cacherepositories.CachedImage) error {
	if image.Key.Digest == "" {
		return ErrMissingKey
	}

	if image.CreatedAt.IsZero() {
		image.CreatedAt = s.now().UTC()
	}

	return s.imagesStorage.Save(ctx, image)
}

func (s *cacheService) InvalidateAllEntriesForImage(ctx context.Context, disk, imagePath string) ([]string, error) {
	return s.imagesStorage.DeleteAllOfImage(ctx, disk, imagePath)
}

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrMissingKey    = errors.New("cache entry has no key")
)
