package imaginaryprocessor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/thebartekbanach/imglide/pkg/processor"
)

type Config struct {
	ImaginaryServiceURL string
}

type httpRequestFunc func(req *http.Request) (*http.Response, error)

// Processor delegates transformations to an h2non/imaginary service by
// posting the source image to one of its endpoints.
type Processor struct {
	config      Config
	makeRequest httpRequestFunc
}

var _ processor.ProcessingService = (*Processor)(nil)

func NewProcessor(config Config) *Processor {
	return &Processor{config, http.DefaultClient.Do}
}

func (proc *Processor) ProcessImage(ctx context.Context, source []byte, spec processor.Spec) (processor.Result, error) {
	endpoint, query, err := buildOperation(spec)
	if err != nil {
		return processor.Result{}, err
	}

	req, err := proc.buildRequest(ctx, endpoint, query, source)
	if err != nil {
		return processor.Result{}, err
	}

	response, err := proc.makeRequest(req)
	if err != nil {
		return processor.Result{}, err
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusOK:
	case response.StatusCode == http.StatusUnsupportedMediaType:
		return processor.Result{}, processor.ErrUnsupportedFormat
	case response.StatusCode >= 400 && response.StatusCode < 500:
		return processor.Result{}, fmt.Errorf("%w: imaginary responded with %d", processor.ErrInvalidParameters, response.StatusCode)
	default:
		return processor.Result{}, fmt.Errorf("%w: %d", ErrResponseStatusNotOK, response.StatusCode)
	}

	contentType := response.Header.Get("Content-Type")
	if contentType == "" {
		return processor.Result{}, ErrUnknownContentType
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return processor.Result{}, err
	}

	return processor.Result{Data: data, ContentType: contentType}, nil
}

func (proc *Processor) buildRequest(ctx context.Context, endpoint string, query url.Values, source []byte) (*http.Request, error) {
	target := strings.TrimRight(proc.config.ImaginaryServiceURL, "/") + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(source))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", mimetype.Detect(source).String())
	return req, nil
}

// buildOperation maps a spec onto an imaginary endpoint and its query.
func buildOperation(spec processor.Spec) (string, url.Values, error) {
	query := url.Values{}

	switch spec.Format {
	case "":
	case processor.FormatJPG:
		query.Set("type", "jpeg")
	case processor.FormatPJPG:
		query.Set("type", "jpeg")
		query.Set("interlace", "true")
	case processor.FormatPNG, processor.FormatGIF, processor.FormatWEBP, processor.FormatTIFF:
		query.Set("type", string(spec.Format))
	default:
		return "", nil, fmt.Errorf("%w: %s", processor.ErrUnsupportedFormat, spec.Format)
	}

	if spec.Quality > 0 {
		query.Set("quality", strconv.Itoa(spec.Quality))
	}

	if !spec.HasResize() {
		if query.Get("type") == "" {
			query.Set("type", "auto")
		}
		return "/convert", query, nil
	}

	if spec.Width > 0 {
		query.Set("width", strconv.Itoa(spec.Width))
	}
	if spec.Height > 0 {
		query.Set("height", strconv.Itoa(spec.Height))
	}

	switch spec.Fit {
	case processor.FitCrop:
		query.Set("gravity", cropGravity(spec.CropPosition))
		return "/crop", query, nil
	case processor.FitStretch:
		query.Set("force", "true")
		return "/resize", query, nil
	case processor.FitFill:
		query.Set("embed", "true")
		return "/resize", query, nil
	case processor.FitMax:
		query.Set("nocrop", "true")
		return "/resize", query, nil
	}

	if spec.Width > 0 && spec.Height > 0 {
		return "/fit", query, nil
	}
	return "/resize", query, nil
}

func cropGravity(position string) string {
	switch position {
	case "top", "top-left", "top-right":
		return "north"
	case "bottom", "bottom-left", "bottom-right":
		return "south"
	case "left":
		return "west"
	case "right":
		return "east"
	}
	return "centre"
}

var (
	ErrResponseStatusNotOK = errors.New("response status not OK")
	ErrUnknownContentType  = errors.New("unknown response content type")
)
