package request

import (
	"errors"
	"net/url"
	"path"
	"strings"

	digest "github.com/opencontainers/go-digest"
)

// SignatureParam is the query parameter carrying the request signature.
const SignatureParam = "s"

// ImageRequest is an immutable request for a transformed image.
type ImageRequest struct {
	path     string
	params   url.Values
	rawQuery string
}

// New builds a request for imagePath from a raw query string.
func New(imagePath, rawQuery string) (ImageRequest, error) {
	cleanPath, err := CleanPath(imagePath)
	if err != nil {
		return ImageRequest{}, err
	}

	params, err := url.ParseQuery(rawQuery)
	if err != nil {
		return ImageRequest{}, ErrInvalidQuery
	}

	return ImageRequest{cleanPath, params, rawQuery}, nil
}

// FromParams builds a request from already parsed parameters.
func FromParams(imagePath string, params url.Values) (ImageRequest, error) {
	cleanPath, err := CleanPath(imagePath)
	if err != nil {
		return ImageRequest{}, err
	}

	copied := copyValues(params)
	return ImageRequest{cleanPath, copied, copied.Encode()}, nil
}

func (r ImageRequest) Path() string {
	return r.path
}

func (r ImageRequest) RawQuery() string {
	return r.rawQuery
}

// Params returns a copy of the request parameters.
func (r ImageRequest) Params() url.Values {
	return copyValues(r.params)
}

// CleanPath normalizes an image path and rejects anything that could escape
// the storage root.
func CleanPath(imagePath string) (string, error) {
	trimmed := strings.TrimLeft(strings.ReplaceAll(imagePath, `\`, "/"), "/")
	if trimmed == "" {
		return "", ErrInvalidPath
	}

	for _, segment := range strings.Split(trimmed, "/") {
		if segment == ".." {
			return "", ErrInvalidPath
		}
	}

	cleaned := path.Clean(trimmed)
	if cleaned == "." || strings.ContainsRune(cleaned, 0) {
		return "", ErrInvalidPath
	}

	return cleaned, nil
}

// EscapePath escapes every segment of imagePath for use in a URL path.
func EscapePath(imagePath string) string {
	segments := strings.Split(imagePath, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

// StripEmpty drops every parameter whose values are all empty and removes empty
// values from the remaining ones.
func StripEmpty(params url.Values) url.Values {
	stripped := url.Values{}
	for key, values := range params {
		if key == "" {
			continue
		}

		for _, value := range values {
			if !isEmptyValue(value) {
				stripped[key] = append(stripped[key], value)
			}
		}
	}

	return stripped
}

// isEmptyValue reports whether a parameter value means "unset". "0" counts
// as unset, so w=0 and a missing w name the same transformation.
func isEmptyValue(value string) bool {
	return value == "" || value == "0"
}

// WithoutSignature returns params without the signature parameter.
func WithoutSignature(params url.Values) url.Values {
	result := copyValues(params)
	result.Del(SignatureParam)
	return result
}

// CacheKey identifies one transformation of one source image.
type CacheKey struct {
	digest.Digest
}

// NewCacheKey derives the key from the disk, image path and parameters.
// Parameters are stripped of empty values and the signature, then serialized
// sorted by name, so equivalent requests share one key.
func NewCacheKey(disk, imagePath string, params url.Values) CacheKey {
	normalized := WithoutSignature(StripEmpty(params))
	canonical := disk + "\n" + imagePath + "\n" + normalized.Encode()
	return CacheKey{digest.FromString(canonical)}
}

func copyValues(values url.Values) url.Values {
	copied := make(url.Values, len(values))
	for key, list := range values {
		copied[key] = append([]string(nil), list...)
	}
	return copied
}

var (
	ErrInvalidPath  = errors.New("invalid image path")
	ErrInvalidQuery = errors.New("invalid query string")
)
