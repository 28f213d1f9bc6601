package main

import (
	"crypto/subtle"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/thebartekbanach/imglide/pkg/cache"
	"github.com/thebartekbanach/imglide/pkg/config"
	"github.com/thebartekbanach/imglide/pkg/logging"
	"github.com/thebartekbanach/imglide/pkg/proxy"
)

// newRouter builds the HTTP surface. Invalidation routes exist only when an
// invalidation service is available.
func newRouter(cfg *config.Config, proxyService proxy.ProxyService, invalidationService cache.InvalidationService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(logging.RequestLogger())
	e.Use(middleware.Recover())

	e.GET("/_health", handleHealth)

	if invalidationService != nil {
		disks := cfg.DiskNames()
		invalidation := e.Group("/_cache")
		if cfg.Invalidation.Token != "" {
			invalidation.Use(bearerTokenAuth(cfg.Invalidation.Token))
		}

		invalidation.DELETE("", handleInvalidationRequest(invalidationService, disks))
		invalidation.GET("/latest", handleLatestInvalidationInfoRequest(invalidationService, disks))
	}

	e.Match([]string{http.MethodGet, http.MethodHead}, "/*", handleImageRequest(proxyService, cfg.Server.RequestTimeout))

	return e
}

func bearerTokenAuth(token string) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(key string, c echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1, nil
		},
	})
}
