package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cacherepositories "github.com/thebartekbanach/imglide/pkg/cache/repositories"
	mock_cache "github.com/thebartekbanach/imglide/pkg/cache/mocks"
	"github.com/thebartekbanach/imglide/pkg/config"
	"github.com/thebartekbanach/imglide/pkg/processor"
	"github.com/thebartekbanach/imglide/pkg/proxy"
	"github.com/thebartekbanach/imglide/pkg/request"
	"github.com/thebartekbanach/imglide/pkg/source"
)

type stubProxy struct {
	image   cacherepositories.CachedImage
	err     error
	allowed bool

	disk string
	req  request.ImageRequest
}

var _ proxy.ProxyService = (*stubProxy)(nil)

func (p *stubProxy) Handle(ctx context.Context, disk string, req request.ImageRequest) (cacherepositories.CachedImage, error) {
	p.disk = disk
	p.req = req
	return p.image, p.err
}

func (p *stubProxy) SplitRequestPath(requestPath string) (string, string) {
	return "uploads", requestPath
}

func (p *stubProxy) AllowsOrigin(origin string) bool {
	return p.allowed
}

func testConfig() *config.Config {
	return &config.Config{
		Disks: map[string]config.DiskConfig{
			"uploads": {Driver: "local", Path: "/tmp"},
		},
		Server: config.ServerConfig{RequestTimeout: time.Second},
	}
}

func testImage() cacherepositories.CachedImage {
	return cacherepositories.CachedImage{
		Data:        []byte("image-bytes"),
		ContentType: "image/png",
		CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func serveRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestImageRoute_ServesImage(t *testing.T) {
	proxyService := &stubProxy{image: testImage(), allowed: true}
	e := newRouter(testConfig(), proxyService, nil)

	rec := serveRequest(e, httptest.NewRequest(http.MethodGet, "/photo.png?w=100&h=", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image-bytes", rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "11", rec.Header().Get("Content-Length"))
	assert.Equal(t, cacheControlValue, rec.Header().Get("Cache-Control"))
	assert.Equal(t, "Wed, 01 May 2024 12:00:00 GMT", rec.Header().Get("Last-Modified"))
	assert.NotEmpty(t, rec.Header().Get("Expires"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	assert.Equal(t, "uploads", proxyService.disk)
	assert.Equal(t, "photo.png", proxyService.req.Path())
	assert.Equal(t, "w=100&h=", proxyService.req.RawQuery())
}

func TestImageRoute_HeadRequest(t *testing.T) {
	e := newRouter(testConfig(), &stubProxy{image: testImage(), allowed: true}, nil)

	rec := serveRequest(e, httptest.NewRequest(http.MethodHead, "/photo.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}

func TestImageRoute_NotModified(t *testing.T) {
	e := newRouter(testConfig(), &stubProxy{image: testImage(), allowed: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/photo.png", nil)
	req.Header.Set("If-Modified-Since", "Wed, 01 May 2024 12:00:00 GMT")
	rec := serveRequest(e, req)

	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestImageRoute_ModifiedAfterClientCopy(t *testing.T) {
	e := newRouter(testConfig(), &stubProxy{image: testImage(), allowed: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/photo.png", nil)
	req.Header.Set("If-Modified-Since", "Tue, 30 Apr 2024 12:00:00 GMT")
	rec := serveRequest(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestImageRoute_ForbiddenOrigin(t *testing.T) {
	proxyService := &stubProxy{image: testImage(), allowed: false}
	e := newRouter(testConfig(), proxyService, nil)

	req := httptest.NewRequest(http.MethodGet, "/photo.png", nil)
	req.Header.Set("Origin", "https://evil.test")
	rec := serveRequest(e, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, proxyService.disk)
}

func TestImageRoute_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid signature", proxy.ErrInvalidSignature, http.StatusForbidden},
		{"invalid parameters", fmt.Errorf("%w: w", processor.ErrInvalidParameters), http.StatusBadRequest},
		{"unsupported format", fmt.Errorf("%w: %w", proxy.ErrProcessingFailed, processor.ErrUnsupportedFormat), http.StatusBadRequest},
		{"missing source", source.ErrSourceNotFound, http.StatusNotFound},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"corrupt source", fmt.Errorf("%w: %w", proxy.ErrProcessingFailed, processor.ErrCorruptSource), http.StatusBadGateway},
		{"engine failure", fmt.Errorf("%w: %w", proxy.ErrProcessingFailed, errors.New("boom")), http.StatusBadGateway},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newRouter(testConfig(), &stubProxy{err: tc.err, allowed: true}, nil)

			rec := serveRequest(e, httptest.NewRequest(http.MethodGet, "/photo.png", nil))

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestImageRoute_InvalidPath(t *testing.T) {
	e := newRouter(testConfig(), &stubProxy{image: testImage(), allowed: true}, nil)

	rec := serveRequest(e, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthRoute(t *testing.T) {
	e := newRouter(testConfig(), &stubProxy{}, nil)

	rec := serveRequest(e, httptest.NewRequest(http.MethodGet, "/_health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestInvalidationRoutes_DisabledWithoutService(t *testing.T) {
	e := newRouter(testConfig(), &stubProxy{}, nil)

	rec := serveRequest(e, httptest.NewRequest(http.MethodDelete, "/_cache?paths=photo.png", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestInvalidationRoute_Invalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invalidationService := mock_cache.NewMockInvalidationService(ctrl)
	invalidationService.EXPECT().
		Invalidate(gomock.Any(), "uploads", []string{"a.png", "b.png"}).
		Return(cacherepositories.InvalidationModel{
			Disk:                   "uploads",
			RequestedInvalidations: []string{"a.png", "b.png"},
			DoneInvalidations:      []string{"a.png", "b.png"},
			InvalidatedEntries:     []string{"entry"},
		}, nil)

	e := newRouter(testConfig(), &stubProxy{}, invalidationService)

	query := url.Values{"disk": {"uploads"}, "paths": {"a.png", "b.png"}}
	rec := serveRequest(e, httptest.NewRequest(http.MethodDelete, "/_cache?"+query.Encode(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"doneInvalidations":["a.png","b.png"]`)
}

func TestInvalidationRoute_Validation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"unknown disk", "disk=other&paths=a.png"},
		{"missing paths", "disk=uploads"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			e := newRouter(testConfig(), &stubProxy{}, mock_cache.NewMockInvalidationService(ctrl))

			rec := serveRequest(e, httptest.NewRequest(http.MethodDelete, "/_cache?"+tc.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestInvalidationRoute_InvalidPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invalidationService := mock_cache.NewMockInvalidationService(ctrl)
	invalidationService.EXPECT().
		Invalidate(gomock.Any(), "", []string{"../x.png"}).
		Return(cacherepositories.InvalidationModel{}, request.ErrInvalidPath)

	e := newRouter(testConfig(), &stubProxy{}, invalidationService)

	rec := serveRequest(e, httptest.NewRequest(http.MethodDelete, "/_cache?paths=../x.png", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidationRoute_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	message := "disk full"
	invalidationService := mock_cache.NewMockInvalidationService(ctrl)
	invalidationService.EXPECT().
		Invalidate(gomock.Any(), "", []string{"a.png"}).
		Return(cacherepositories.InvalidationModel{InvalidationError: &message}, errors.New(message))

	e := newRouter(testConfig(), &stubProxy{}, invalidationService)

	rec := serveRequest(e, httptest.NewRequest(http.MethodDelete, "/_cache?paths=a.png", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), message)
}

func TestInvalidationRoute_RequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invalidationService := mock_cache.NewMockInvalidationService(ctrl)
	invalidationService.EXPECT().
		Invalidate(gomock.Any(), "", []string{"a.png"}).
		Return(cacherepositories.InvalidationModel{}, nil)

	cfg := testConfig()
	cfg.Invalidation.Token = "secret-token"
	e := newRouter(cfg, &stubProxy{}, invalidationService)

	rec := serveRequest(e, httptest.NewRequest(http.MethodDelete, "/_cache?paths=a.png", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodDelete, "/_cache?paths=a.png", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = serveRequest(e, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, "/_cache?paths=a.png", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	rec = serveRequest(e, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLatestInvalidationRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invalidationService := mock_cache.NewMockInvalidationService(ctrl)
	gomock.InOrder(
		invalidationService.EXPECT().
			GetLastKnownInvalidation(gomock.Any(), "uploads").
			Return(cacherepositories.InvalidationModel{Disk: "uploads", DoneInvalidations: []string{"a.png"}}, nil),
		invalidationService.EXPECT().
			GetLastKnownInvalidation(gomock.Any(), "").
			Return(cacherepositories.InvalidationModel{}, cacherepositories.ErrInvalidationNotFound),
	)

	e := newRouter(testConfig(), &stubProxy{}, invalidationService)

	rec := serveRequest(e, httptest.NewRequest(http.MethodGet, "/_cache/latest?disk=uploads", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"disk":"uploads"`)

	rec = serveRequest(e, httptest.NewRequest(http.MethodGet, "/_cache/latest", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
