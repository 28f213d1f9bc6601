package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	cacherepositories "github.com/thebartekbanach/imglide/pkg/cache/repositories"
	"github.com/thebartekbanach/imglide/pkg/processor"
	"github.com/thebartekbanach/imglide/pkg/proxy"
	"github.com/thebartekbanach/imglide/pkg/request"
	"github.com/thebartekbanach/imglide/pkg/source"
)

const (
	cacheMaxAge       = 365 * 24 * time.Hour
	cacheControlValue = "public, max-age=31536000"
)

func writeImage(c echo.Context, image cacherepositories.CachedImage) error {
	header := c.Response().Header()
	header.Set(echo.HeaderCacheControl, cacheControlValue)
	header.Set("Expires", time.Now().Add(cacheMaxAge).UTC().Format(http.TimeFormat))

	if !image.CreatedAt.IsZero() {
		lastModified := image.CreatedAt.UTC().Truncate(time.Second)
		header.Set(echo.HeaderLastModified, lastModified.Format(http.TimeFormat))

		if notModifiedSince(c.Request(), lastModified) {
			return c.NoContent(http.StatusNotModified)
		}
	}

	header.Set(echo.HeaderContentLength, strconv.Itoa(len(image.Data)))
	return c.Blob(http.StatusOK, image.ContentType, image.Data)
}

func notModifiedSince(r *http.Request, lastModified time.Time) bool {
	raw := r.Header.Get(echo.HeaderIfModifiedSince)
	if raw == "" {
		return false
	}

	since, err := http.ParseTime(raw)
	if err != nil {
		return false
	}

	return !lastModified.After(since)
}

// imageRequestError maps errors of the image pipeline onto HTTP responses.
func imageRequestError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, proxy.ErrInvalidSignature):
		return echo.NewHTTPError(http.StatusForbidden, "invalid signature")
	case errors.Is(err, request.ErrInvalidPath), errors.Is(err, request.ErrInvalidQuery):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, processor.ErrInvalidParameters), errors.Is(err, processor.ErrUnsupportedFormat):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, source.ErrSourceNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "image not found")
	case errors.Is(err, context.DeadlineExceeded):
		return echo.NewHTTPError(http.StatusGatewayTimeout, "image processing timed out")
	case errors.Is(err, context.Canceled):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "request canceled")
	case errors.Is(err, proxy.ErrProcessingFailed):
		log.Error().Err(err).Msg("image processing failed")
		return echo.NewHTTPError(http.StatusBadGateway, "image processing failed")
	}

	log.Error().Err(err).Msg("unexpected error when handling image request")
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
