package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/thebartekbanach/imglide/pkg/request"
)

var ErrResponseStatusNotOK = errors.New("response status not OK")

type httpGetFunc func(ctx context.Context, url string) (resp *http.Response, err error)

// HTTPBackend reads images from a remote web server rooted at baseURL.
type HTTPBackend struct {
	baseURL string
	getter  httpGetFunc
}

var _ Backend = (*HTTPBackend)(nil)

func NewHTTPBackend(baseURL string) *HTTPBackend {
	getFunc := func(ctx context.Context, url string) (resp *http.Response, err error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		return http.DefaultClient.Do(req)
	}

	return &HTTPBackend{strings.TrimRight(baseURL, "/"), getFunc}
}

func (b *HTTPBackend) Read(ctx context.Context, imagePath string) ([]byte, error) {
	response, err := b.getter(ctx, b.baseURL+"/"+request.EscapePath(imagePath))
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return nil, ErrSourceNotFound
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrResponseStatusNotOK, response.StatusCode)
	}

	return io.ReadAll(response.Body)
}
