package cacherepositories

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	dbconnections "github.com/thebartekbanach/imglide/pkg/connections"
	"github.com/thebartekbanach/imglide/pkg/request"
)

const genericContentType = "application/octet-stream"

type minioImagesStorage struct {
	conn dbconnections.MinioBlockStorageConnection
}

var _ CachedImagesStorage = (*minioImagesStorage)(nil)

func NewMinioImagesStorage(conn dbconnections.MinioBlockStorageConnection) CachedImagesStorage {
	return &minioImagesStorage{conn}
}

func (s *minioImagesStorage) Get(ctx context.Context, disk, imagePath string, key request.CacheKey) (CachedImage, error) {
	data, info, err := s.conn.GetObject(ctx, entryName(disk, imagePath, key))
	if err != nil {
		if errors.Is(err, dbconnections.ErrObjectNotFound) {
			return CachedImage{}, ErrImageNotFound
		}
		return CachedImage{}, err
	}

	contentType := info.ContentType
	if contentType == "" || contentType == genericContentType {
		contentType = mimetype.Detect(data).String()
	}

	return CachedImage{
		Key:         key,
		Disk:        disk,
		ImagePath:   imagePath,
		Data:        data,
		ContentType: contentType,
		CreatedAt:   info.LastModified,
	}, nil
}

func (s *minioImagesStorage) Save(ctx context.Context, image CachedImage) error {
	name := entryName(image.Disk, image.ImagePath, image.Key)
	return s.conn.PutObject(ctx, name, int64(len(image.Data)), image.ContentType, bytes.NewReader(image.Data))
}

func (s *minioImagesStorage) DeleteAllOfImage(ctx context.Context, disk, imagePath string) ([]string, error) {
	prefix := imagePrefix(disk, imagePath) + "/"
	names, err := s.conn.ListObjects(ctx, prefix)
	if err != nil {
		return nil, err
	}

	removed := []string{}
	for _, name := range names {
		entry := strings.TrimPrefix(name, prefix)
		// nested objects belong to other images
		if !isEntryName(entry) {
			continue
		}

		if err := s.conn.DeleteObject(ctx, name); err != nil {
			return removed, err
		}
		removed = append(removed, entry)
	}

	return removed, nil
}

var (
	ErrImageNotFound = errors.New("image not found")
)
