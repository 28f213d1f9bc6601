package cache

import (
	"context"
	"time"

	cacherepositories "github.com/thebartekbanach/imglide/pkg/cache/repositories"
	"github.com/thebartekbanach/imglide/pkg/request"
)

type InvalidationServiceImplementation struct {
	invalidationsRepository cacherepositories.InvalidationsRepository
	cacheService            CacheService
}

var _ InvalidationService = (*InvalidationServiceImplementation)(nil)

func NewInvalidationService(invalidationsRepository cacherepositories.InvalidationsRepository, cacheService CacheService) InvalidationService {
	return &InvalidationServiceImplementation{invalidationsRepository, cacheService}
}

func (s *InvalidationServiceImplementation) GetLastKnownInvalidation(ctx context.Context, disk string) (cacherepositories.InvalidationModel, error) {
	return s.invalidationsRepository.GetLatestInvalidation(ctx, disk)
}

// Invalidate removes every cached variant of the given images and records
// the run. Processing stops at the first failing image; the record then
// carries the error and the images done so far.
func (s *InvalidationServiceImplementation) Invalidate(ctx context.Context, disk string, imagePaths []string) (cacherepositories.InvalidationModel, error) {
	if len(imagePaths) == 0 {
		return cacherepositories.InvalidationModel{}, cacherepositories.ErrNothingToInvalidate
	}

	cleanPaths := make([]string, 0, len(imagePaths))
	for _, imagePath := range imagePaths {
		cleanPath, err := request.CleanPath(imagePath)
		if err != nil {
			return cacherepositories.InvalidationModel{}, err
		}
		cleanPaths = append(cleanPaths, cleanPath)
	}

	invalidationInfo := cacherepositories.InvalidationModel{
		Disk:                   disk,
		RequestedInvalidations: cleanPaths,
		DoneInvalidations:      []string{},
		InvalidatedEntries:     []string{},
	}

	var invalidationError error

	for _, imagePath := range cleanPaths {
		invalidatedEntries, err := s.cacheService.InvalidateAllEntriesForImage(ctx, disk, imagePath)
		invalidationInfo.InvalidatedEntries = append(invalidationInfo.InvalidatedEntries, invalidatedEntries...)

		if err != nil {
			invalidationError = err
			errText := err.Error()
			invalidationInfo.InvalidationError = &errText
			break
		}

		invalidationInfo.DoneInvalidations = append(invalidationInfo.DoneInvalidations, imagePath)
	}

	invalidationInfo.InvalidationDate = time.Now()
	if err := s.invalidationsRepository.CreateInvalidation(ctx, invalidationInfo); err != nil {
		return invalidationInfo, err
	}

	return invalidationInfo, invalidationError
}
