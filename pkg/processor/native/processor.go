package nativeprocessor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/thebartekbanach/imglide/pkg/processor"
	_ "golang.org/x/image/webp"
)

type Processor struct {
	filter imaging.ResampleFilter
}

var _ processor.ProcessingService = (*Processor)(nil)

func NewProcessor() *Processor {
	return &Processor{imaging.Lanczos}
}

func (p *Processor) ProcessImage(ctx context.Context, source []byte, spec processor.Spec) (processor.Result, error) {
	img, err := imaging.Decode(bytes.NewReader(source), imaging.AutoOrientation(true))
	if errors.Is(err, image.ErrFormat) {
		return processor.Result{}, fmt.Errorf("%w: %s", processor.ErrUnsupportedFormat, err)
	}
	if err != nil {
		return processor.Result{}, fmt.Errorf("%w: %s", processor.ErrCorruptSource, err)
	}

	if img.Bounds().Empty() {
		return processor.Result{}, fmt.Errorf("%w: empty image", processor.ErrCorruptSource)
	}

	if err := ctx.Err(); err != nil {
		return processor.Result{}, err
	}

	format, contentType, err := outputFormat(spec, source)
	if err != nil {
		return processor.Result{}, err
	}

	transformed := p.transform(img, spec)

	if err := ctx.Err(); err != nil {
		return processor.Result{}, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, transformed, format, imaging.JPEGQuality(spec.Quality)); err != nil {
		return processor.Result{}, err
	}

	return processor.Result{Data: buf.Bytes(), ContentType: contentType}, nil
}

func (p *Processor) transform(img image.Image, spec processor.Spec) image.Image {
	if !spec.HasResize() {
		return img
	}

	srcW, srcH := img.Bounds().Dx(), img.Bounds().Dy()

	switch spec.Fit {
	case processor.FitStretch:
		w, h := spec.Width, spec.Height
		if w == 0 {
			w = srcW
		}
		if h == 0 {
			h = srcH
		}
		return imaging.Resize(img, w, h, p.filter)

	case processor.FitCrop:
		w, h := fillDimensions(srcW, srcH, spec.Width, spec.Height)
		return imaging.Fill(img, w, h, cropAnchor(spec.CropPosition), p.filter)

	case processor.FitMax:
		w, h := containDimensions(srcW, srcH, spec.Width, spec.Height)
		if w >= srcW && h >= srcH {
			return img
		}
		return imaging.Resize(img, w, h, p.filter)

	case processor.FitFill:
		w, h := containDimensions(srcW, srcH, spec.Width, spec.Height)
		canvasW, canvasH := spec.Width, spec.Height
		if canvasW == 0 {
			canvasW = w
		}
		if canvasH == 0 {
			canvasH = h
		}
		resized := imaging.Resize(img, w, h, p.filter)
		return imaging.PasteCenter(imaging.New(canvasW, canvasH, color.White), resized)

	default:
		w, h := containDimensions(srcW, srcH, spec.Width, spec.Height)
		return imaging.Resize(img, w, h, p.filter)
	}
}

// containDimensions scales the source to fit inside w x h keeping the
// aspect ratio. A zero bound is derived from the other one.
func containDimensions(srcW, srcH, w, h int) (int, int) {
	scaleW := float64(w) / float64(srcW)
	scaleH := float64(h) / float64(srcH)

	scale := math.Min(scaleW, scaleH)
	if w == 0 {
		scale = scaleH
	} else if h == 0 {
		scale = scaleW
	}

	return atLeastOne(float64(srcW) * scale), atLeastOne(float64(srcH) * scale)
}

func fillDimensions(srcW, srcH, w, h int) (int, int) {
	if w == 0 {
		w = atLeastOne(float64(srcW) * float64(h) / float64(srcH))
	}
	if h == 0 {
		h = atLeastOne(float64(srcH) * float64(w) / float64(srcW))
	}
	return w, h
}

func atLeastOne(v float64) int {
	rounded := int(math.Round(v))
	if rounded < 1 {
		return 1
	}
	return rounded
}

func cropAnchor(position string) imaging.Anchor {
	switch position {
	case "top-left":
		return imaging.TopLeft
	case "top":
		return imaging.Top
	case "top-right":
		return imaging.TopRight
	case "left":
		return imaging.Left
	case "right":
		return imaging.Right
	case "bottom-left":
		return imaging.BottomLeft
	case "bottom":
		return imaging.Bottom
	case "bottom-right":
		return imaging.BottomRight
	}
	return imaging.Center
}

// outputFormat resolves the encoder. Without an explicit format the source
// format is kept; sources without an encoder (webp) fall back to png.
func outputFormat(spec processor.Spec, source []byte) (imaging.Format, string, error) {
	switch spec.Format {
	case processor.FormatJPG, processor.FormatPJPG:
		return imaging.JPEG, spec.ContentType(), nil
	case processor.FormatPNG:
		return imaging.PNG, spec.ContentType(), nil
	case processor.FormatGIF:
		return imaging.GIF, spec.ContentType(), nil
	case processor.FormatBMP:
		return imaging.BMP, spec.ContentType(), nil
	case processor.FormatTIFF:
		return imaging.TIFF, spec.ContentType(), nil
	case processor.FormatWEBP:
		return 0, "", fmt.Errorf("%w: webp encoding is not available", processor.ErrUnsupportedFormat)
	}

	detected := mimetype.Detect(source)
	if format, err := imaging.FormatFromExtension(detected.Extension()); err == nil {
		return format, detected.String(), nil
	}

	return imaging.PNG, "image/png", nil
}
