package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/thebartekbanach/imglide/pkg/cache"
	cacherepositories "github.com/thebartekbanach/imglide/pkg/cache/repositories"
	"github.com/thebartekbanach/imglide/pkg/proxy"
	"github.com/thebartekbanach/imglide/pkg/request"
)

func handleImageRequest(proxyService proxy.ProxyService, timeout time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()

		if !proxyService.AllowsOrigin(r.Header.Get(echo.HeaderOrigin)) {
			return echo.NewHTTPError(http.StatusForbidden, "request origin not allowed")
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		disk, imagePath := proxyService.SplitRequestPath(r.URL.Path)
		req, err := request.New(imagePath, r.URL.RawQuery)
		if err != nil {
			return imageRequestError(err)
		}

		image, err := proxyService.Handle(ctx, disk, req)
		if err != nil {
			return imageRequestError(err)
		}

		return writeImage(c, image)
	}
}

func handleInvalidationRequest(invalidationService cache.InvalidationService, disks []string) echo.HandlerFunc {
	return func(c echo.Context) error {
		disk := c.QueryParam("disk")
		if !isKnownDisk(disks, disk) {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown disk")
		}

		paths := c.QueryParams()["paths"]
		if len(paths) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "paths query parameter is required")
		}

		result, err := invalidationService.Invalidate(c.Request().Context(), disk, paths)
		if errors.Is(err, request.ErrInvalidPath) || errors.Is(err, cacherepositories.ErrNothingToInvalidate) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}

		if err != nil {
			log.Error().Err(err).Str("disk", disk).Msg("error ocurred when invalidating")
			return c.JSON(http.StatusInternalServerError, result)
		}

		log.Info().Str("disk", disk).Int("entries", len(result.InvalidatedEntries)).Msg("cache invalidated")
		return c.JSON(http.StatusOK, result)
	}
}

func handleLatestInvalidationInfoRequest(invalidationService cache.InvalidationService, disks []string) echo.HandlerFunc {
	return func(c echo.Context) error {
		disk := c.QueryParam("disk")
		if !isKnownDisk(disks, disk) {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown disk")
		}

		result, err := invalidationService.GetLastKnownInvalidation(c.Request().Context(), disk)
		if errors.Is(err, cacherepositories.ErrInvalidationNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "no invalidation recorded for this disk")
		}

		if err != nil {
			log.Error().Err(err).Str("disk", disk).Msg("error ocurred when getting last known invalidation")
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot get last known invalidation")
		}

		return c.JSON(http.StatusOK, result)
	}
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func isKnownDisk(disks []string, disk string) bool {
	if disk == "" {
		return true
	}

	for _, known := range disks {
		if known == disk {
			return true
		}
	}

	return false
}
