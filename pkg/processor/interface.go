package processor

import (
	"context"
	"errors"
)

// Result is an encoded, transformed image.
type Result struct {
	Data        []byte
	ContentType string
}

type ProcessingService interface {
	ProcessImage(ctx context.Context, source []byte, spec Spec) (Result, error)
}

var (
	ErrInvalidParameters = errors.New("invalid transformation parameters")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrCorruptSource means the source is in a known format but cannot be
	// decoded.
	ErrCorruptSource = errors.New("corrupt source image")
)
