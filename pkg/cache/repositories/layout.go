package cacherepositories

import (
	"encoding/hex"
	"path"
	"strings"

	"github.com/thebartekbanach/imglide/pkg/request"
)

const (
	defaultNamespace = "default"
	// variantsDir holds the entries of one image. Image path segments never
	// map to this name, so entry files and image directories cannot collide.
	variantsDir = "_v"
)

// namespace keeps entries of different disks apart, so "a.jpg" on the
// default disk never shares a directory with "a.jpg" on a named disk.
func namespace(disk string) string {
	if disk == "" {
		return defaultNamespace
	}
	return "disk-" + disk
}

// imagePrefix is the directory holding every cached variant of an image.
func imagePrefix(disk, imagePath string) string {
	return path.Join(namespace(disk), escapeSegments(imagePath), variantsDir)
}

func entryName(disk, imagePath string, key request.CacheKey) string {
	return path.Join(imagePrefix(disk, imagePath), key.Encoded())
}

// escapeSegments doubles the leading underscore of every segment starting
// with one, which keeps segments out of the reserved variantsDir name.
func escapeSegments(imagePath string) string {
	segments := strings.Split(imagePath, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, "_") {
			segments[i] = "_" + segment
		}
	}
	return strings.Join(segments, "/")
}

func isEntryName(name string) bool {
	if len(name) != 64 {
		return false
	}
	_, err := hex.DecodeString(name)
	return err == nil
}
