package cacherepositories

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/thebartekbanach/imglide/pkg/request"
)

const (
	metadataSuffix = ".json"
	tempPattern    = ".tmp-*"
)

type entryMetadata struct {
	ContentType string    `json:"contentType"`
	CreatedAt   time.Time `json:"createdAt"`
}

type filesystemImagesStorage struct {
	root *CacheRoot
}

var _ CachedImagesStorage = (*filesystemImagesStorage)(nil)

func NewFilesystemImagesStorage(root *CacheRoot) CachedImagesStorage {
	return &filesystemImagesStorage{root}
}

func (s *filesystemImagesStorage) Get(ctx context.Context, disk, imagePath string, key request.CacheKey) (CachedImage, error) {
	if err := s.root.Ensure(); err != nil {
		return CachedImage{}, err
	}

	entryPath := s.localPath(entryName(disk, imagePath, key))
	data, err := os.ReadFile(entryPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return CachedImage{}, ErrImageNotFound
		}
		return CachedImage{}, err
	}

	image := CachedImage{
		Key:       key,
		Disk:      disk,
		ImagePath: imagePath,
		Data:      data,
	}

	if metadata, err := readMetadata(entryPath + metadataSuffix); err == nil {
		image.ContentType = metadata.ContentType
		image.CreatedAt = metadata.CreatedAt
	}

	// entries written by older versions have no sidecar
	if image.ContentType == "" {
		image.ContentType = mimetype.Detect(data).String()
	}
	if image.CreatedAt.IsZero() {
		if info, err := os.Stat(entryPath); err == nil {
			image.CreatedAt = info.ModTime()
		}
	}

	return image, nil
}

func (s *filesystemImagesStorage) Save(ctx context.Context, image CachedImage) error {
	if err := s.root.Ensure(); err != nil {
		return err
	}

	entryPath := s.localPath(entryName(image.Disk, image.ImagePath, image.Key))
	if err := os.MkdirAll(filepath.Dir(entryPath), cacheRootPerm); err != nil {
		return err
	}

	metadata, err := json.Marshal(entryMetadata{image.ContentType, image.CreatedAt})
	if err != nil {
		return err
	}

	// metadata goes first, so a visible entry always has its sidecar
	if err := writeFileAtomic(entryPath+metadataSuffix, metadata); err != nil {
		return err
	}

	return writeFileAtomic(entryPath, image.Data)
}

func (s *filesystemImagesStorage) DeleteAllOfImage(ctx context.Context, disk, imagePath string) ([]string, error) {
	if err := s.root.Ensure(); err != nil {
		return nil, err
	}

	dir := s.localPath(imagePrefix(disk, imagePath))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	removed := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isEntryName(name) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return removed, err
		}

		entryPath := filepath.Join(dir, name)
		if err := os.Remove(entryPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return removed, err
		}
		if err := os.Remove(entryPath + metadataSuffix); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return removed, err
		}

		removed = append(removed, name)
	}

	// fails while other images are nested below, which is fine
	_ = os.Remove(dir)

	return removed, nil
}

func (s *filesystemImagesStorage) localPath(name string) string {
	return filepath.Join(s.root.Path(), filepath.FromSlash(name))
}

func readMetadata(path string) (entryMetadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return entryMetadata{}, err
	}

	var metadata entryMetadata
	err = json.Unmarshal(raw, &metadata)
	return metadata, err
}

// writeFileAtomic replaces path with content through a temp file in the same
// directory, so readers never observe a partial write.
func writeFileAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), tempPattern)
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}
