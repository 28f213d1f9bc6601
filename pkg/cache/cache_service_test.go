package cache_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/thebartekbanach/imglide/pkg/cache"
	cacherepositories "github.com/thebartekbanach/imglide/pkg/cache/repositories"
	mock_cacherepositories "github.com/thebartekbanach/imglide/pkg/cache/repositories/mocks"
	"github.com/thebartekbanach/imglide/pkg/request"
)

func TestCacheService_GetCorrectlyGetsImageFromStorage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockImagesStorage := mock_cacherepositories.NewMockCachedImagesStorage(mockCtrl)
	key := request.NewCacheKey("", "a.jpg", nil)
	testData := []byte("test data")

	mockImagesStorage.EXPECT().Get(gomock.Any(), "", "a.jpg", key).Return(cacherepositories.CachedImage{Key: key, Data: testData}, nil)

	cacheService := cache.NewCacheService(mockImagesStorage)
	image, err := cacheService.Get(context.Background(), "", "a.jpg", key)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !bytes.Equal(image.Data, testData) {
		t.Errorf("Expected %v, got %v", testData, image.Data)
	}
}

func TestCacheService_GetShouldReturnErrorIfEntryNotFound(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockImagesStorage := mock_cacherepositories.NewMockCachedImagesStorage(mockCtrl)
	key := request.NewCacheKey("", "a.jpg", nil)

	mockImagesStorage.EXPECT().Get(gomock.Any(), "", "a.jpg", key).Return(cacherepositories.CachedImage{}, cacherepositories.ErrImageNotFound)

	cacheService := cache.NewCacheService(mockImagesStorage)
	_, err := cacheService.Get(context.Background(), "", "a.jpg", key)

	if err != cache.ErrEntryNotFound {
		t.Errorf("Expected ErrEntryNotFound error, got: %v", err)
	}
}

func TestCacheService_GetShouldForwardStorageErrors(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockImagesStorage := mock_cacherepositories.NewMockCachedImagesStorage(mockCtrl)
	storageErr := errors.New("disk error")

	mockImagesStorage.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(cacherepositories.CachedImage{}, storageErr)

	cacheService := cache.NewCacheService(mockImagesStorage)
	_, err := cacheService.Get(context.Background(), "", "a.jpg", request.NewCacheKey("", "a.jpg", nil))

	if err != storageErr {
		t.Errorf("Expected storage error, got: %v", err)
	}
}

func TestCacheService_SaveShouldFillCreationDate(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockImagesStorage := mock_cacherepositories.NewMockCachedImagesStorage(mockCtrl)
	image := cacherepositories.CachedImage{
		Key:         request.NewCacheKey("", "a.jpg", nil),
		ImagePath:   "a.jpg",
		Data:        []byte{0x1, 0x2, 0x3},
		ContentType: "image/jpeg",
	}

	mockImagesStorage.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, saved cacherepositories.CachedImage) error {
		if saved.CreatedAt.IsZero() {
			t.Errorf("Expected creation date to be set")
		}
		if !bytes.Equal(saved.Data, image.Data) {
			t.Errorf("Expected %v, got %v", image.Data, saved.Data)
		}
		return nil
	})

	cacheService := cache.NewCacheService(mockImagesStorage)
	if err := cacheService.Save(context.Background(), image); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestCacheService_SaveShouldRejectImageWithoutKey(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockImagesStorage := mock_cacherepositories.NewMockCachedImagesStorage(mockCtrl)

	cacheService := cache.NewCacheService(mockImagesStorage)
	err := cacheService.Save(context.Background(), cacherepositories.CachedImage{ImagePath: "a.jpg"})

	if err != cache.ErrMissingKey {
		t.Errorf("Expected ErrMissingKey error, got: %v", err)
	}
}

func TestCacheService_SaveShouldReturnErrorReturnedByStorage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockImagesStorage := mock_cacherepositories.NewMockCachedImagesStorage(mockCtrl)
	saveErr := errors.New("disk full")

	mockImagesStorage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(saveErr)

	cacheService := cache.NewCacheService(mockImagesStorage)
	err := cacheService.Save(context.Background(), cacherepositories.CachedImage{Key: request.NewCacheKey("", "a.jpg", nil)})

	if err != saveErr {
		t.Errorf("Expected error returned by storage, got: %v", err)
	}
}

func TestCacheService_InvalidateAllEntriesForImageDelegatesToStorage(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockImagesStorage := mock_cacherepositories.NewMockCachedImagesStorage(mockCtrl)

	mockImagesStorage.EXPECT().DeleteAllOfImage(gomock.Any(), "uploads", "a.jpg").Return([]string{"abc"}, nil)

	cacheService := cache.NewCacheService(mockImagesStorage)
	removed, err := cacheService.InvalidateAllEntriesForImage(context.Background(), "uploads", "a.jpg")

	if err != nil || len(removed) != 1 || removed[0] != "abc" {
		t.Errorf("Unexpected result: %v, %v", removed, err)
	}
}
