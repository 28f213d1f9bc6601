package nativeprocessor

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thebartekbanach/imglide/pkg/processor"
)

func sourcePNG(t *testing.T, w, h int) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodedSize(t *testing.T, data []byte) (int, int) {
	img, err := imaging.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestProcessor_ProcessImageDimensions(t *testing.T) {
	source := sourcePNG(t, 200, 100)

	tests := []struct {
		name  string
		spec  processor.Spec
		wantW int
		wantH int
	}{
		{name: "no resize", spec: processor.Spec{Fit: processor.FitContain}, wantW: 200, wantH: 100},
		{name: "contain by width", spec: processor.Spec{Width: 100, Fit: processor.FitContain}, wantW: 100, wantH: 50},
		{name: "contain by height", spec: processor.Spec{Height: 25, Fit: processor.FitContain}, wantW: 50, wantH: 25},
		{name: "contain both bounds", spec: processor.Spec{Width: 100, Height: 100, Fit: processor.FitContain}, wantW: 100, wantH: 50},
		{name: "contain upscales", spec: processor.Spec{Width: 400, Fit: processor.FitContain}, wantW: 400, wantH: 200},
		{name: "max never upscales", spec: processor.Spec{Width: 400, Fit: processor.FitMax}, wantW: 200, wantH: 100},
		{name: "max downscales", spec: processor.Spec{Width: 50, Fit: processor.FitMax}, wantW: 50, wantH: 25},
		{name: "fill pads to bounds", spec: processor.Spec{Width: 100, Height: 100, Fit: processor.FitFill}, wantW: 100, wantH: 100},
		{name: "stretch ignores ratio", spec: processor.Spec{Width: 50, Height: 50, Fit: processor.FitStretch}, wantW: 50, wantH: 50},
		{name: "stretch keeps missing dimension", spec: processor.Spec{Width: 50, Fit: processor.FitStretch}, wantW: 50, wantH: 100},
		{name: "crop to exact size", spec: processor.Spec{Width: 60, Height: 60, Fit: processor.FitCrop}, wantW: 60, wantH: 60},
		{name: "crop with one dimension", spec: processor.Spec{Width: 60, Fit: processor.FitCrop, CropPosition: "left"}, wantW: 60, wantH: 30},
	}

	proc := NewProcessor()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := proc.ProcessImage(context.Background(), source, tc.spec)
			require.NoError(t, err)
			assert.Equal(t, "image/png", result.ContentType)

			w, h := decodedSize(t, result.Data)
			assert.Equal(t, tc.wantW, w)
			assert.Equal(t, tc.wantH, h)
		})
	}
}

func TestProcessor_ProcessImageEncodesRequestedFormat(t *testing.T) {
	source := sourcePNG(t, 20, 20)
	proc := NewProcessor()

	for format, contentType := range map[processor.Format]string{
		processor.FormatJPG:  "image/jpeg",
		processor.FormatPJPG: "image/jpeg",
		processor.FormatGIF:  "image/gif",
		processor.FormatBMP:  "image/bmp",
		processor.FormatTIFF: "image/tiff",
	} {
		result, err := proc.ProcessImage(context.Background(), source, processor.Spec{Fit: processor.FitContain, Format: format, Quality: 80})
		require.NoError(t, err, format)
		assert.Equal(t, contentType, result.ContentType, format)

		w, h := decodedSize(t, result.Data)
		assert.Equal(t, 20, w)
		assert.Equal(t, 20, h)
	}
}

func TestProcessor_ProcessImageRejectsWebpOutput(t *testing.T) {
	_, err := NewProcessor().ProcessImage(context.Background(), sourcePNG(t, 10, 10), processor.Spec{Format: processor.FormatWEBP})

	assert.True(t, errors.Is(err, processor.ErrUnsupportedFormat))
}

func TestProcessor_ProcessImageRejectsUndecodableSource(t *testing.T) {
	_, err := NewProcessor().ProcessImage(context.Background(), []byte("definitely not an image"), processor.Spec{})

	assert.True(t, errors.Is(err, processor.ErrUnsupportedFormat))
}

func TestProcessor_ProcessImageReportsCorruptSource(t *testing.T) {
	truncated := sourcePNG(t, 10, 10)
	truncated = truncated[:len(truncated)/2]

	_, err := NewProcessor().ProcessImage(context.Background(), truncated, processor.Spec{})

	assert.ErrorIs(t, err, processor.ErrCorruptSource)
	assert.False(t, errors.Is(err, processor.ErrUnsupportedFormat))
}

func TestProcessor_ProcessImageHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProcessor().ProcessImage(ctx, sourcePNG(t, 10, 10), processor.Spec{Width: 5})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessor_ResultIsDeterministic(t *testing.T) {
	source := sourcePNG(t, 64, 32)
	spec := processor.Spec{Width: 32, Fit: processor.FitContain, Format: processor.FormatPNG}
	proc := NewProcessor()

	first, err := proc.ProcessImage(context.Background(), source, spec)
	require.NoError(t, err)
	second, err := proc.ProcessImage(context.Background(), source, spec)
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
}
