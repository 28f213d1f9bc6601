package processor

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Fit string

const (
	FitContain Fit = "contain"
	FitMax     Fit = "max"
	FitFill    Fit = "fill"
	FitStretch Fit = "stretch"
	FitCrop    Fit = "crop"
)

type Format string

const (
	FormatJPG  Format = "jpg"
	FormatPJPG Format = "pjpg"
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatWEBP Format = "webp"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

const (
	DefaultQuality = 90
	MaxDimension   = 8192
)

// Spec describes one transformation. Zero Width or Height means the
// dimension follows the source aspect ratio; empty Format keeps the source
// format.
type Spec struct {
	Width        int    `validate:"gte=0,lte=8192"`
	Height       int    `validate:"gte=0,lte=8192"`
	Fit          Fit    `validate:"oneof=contain max fill stretch crop"`
	CropPosition string `validate:"omitempty,oneof=top-left top top-right left center right bottom-left bottom bottom-right"`
	Format       Format `validate:"omitempty,oneof=jpg pjpg png gif webp bmp tiff"`
	Quality      int    `validate:"gte=0,lte=100"`
}

var specValidator = validator.New()

// ParseSpec reads w, h, fit, fm and q from params. Other parameters are
// ignored.
func ParseSpec(params url.Values) (Spec, error) {
	spec := Spec{
		Fit:     FitContain,
		Format:  Format(strings.ToLower(params.Get("fm"))),
		Quality: DefaultQuality,
	}

	var err error
	if spec.Width, err = parseInt(params, "w", 0); err != nil {
		return Spec{}, err
	}
	if spec.Height, err = parseInt(params, "h", 0); err != nil {
		return Spec{}, err
	}
	if spec.Quality, err = parseInt(params, "q", DefaultQuality); err != nil {
		return Spec{}, err
	}

	if fit := strings.ToLower(params.Get("fit")); fit != "" {
		if position, isCrop := strings.CutPrefix(fit, string(FitCrop)+"-"); isCrop {
			spec.Fit = FitCrop
			spec.CropPosition = position
		} else {
			spec.Fit = Fit(fit)
		}
	}

	if err := specValidator.Struct(spec); err != nil {
		return Spec{}, fmt.Errorf("%w: %s", ErrInvalidParameters, err)
	}

	return spec, nil
}

// HasResize reports whether the dimensions change.
func (s Spec) HasResize() bool {
	return s.Width > 0 || s.Height > 0
}

// ContentType returns the MIME type of the output format, or "" when
// the source format is kept.
func (s Spec) ContentType() string {
	switch s.Format {
	case FormatJPG, FormatPJPG:
		return "image/jpeg"
	case FormatPNG:
		return "image/png"
	case FormatGIF:
		return "image/gif"
	case FormatWEBP:
		return "image/webp"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	}
	return ""
}

func parseInt(params url.Values, name string, fallback int) (int, error) {
	raw := params.Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidParameters, name)
	}
	return value, nil
}
