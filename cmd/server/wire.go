//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/thebartekbanach/imglide/pkg/cache"
	cacherepositories "github.com/thebartekbanach/imglide/pkg/cache/repositories"
	"github.com/thebartekbanach/imglide/pkg/config"
	"github.com/thebartekbanach/imglide/pkg/proxy"
)

func InitializeCache(ctx context.Context, cfg *config.Config) (cache.CacheService, error) {
	wire.Build(
		InitializeCacheRoot,
		InitializeImagesStorage,
		cache.NewCacheService,
	)

	return nil, nil
}

func InitializeInvalidator(ctx context.Context, cfg *config.Config, cacheService cache.CacheService) (cache.InvalidationService, func(), error) {
	wire.Build(
		InitializeInvalidationsDBConnection,
		cacherepositories.NewInvalidationsRepository,
		cache.NewInvalidationService,
	)

	return nil, nil, nil
}

func InitializeProxy(ctx context.Context, cfg *config.Config, cacheService cache.CacheService) (proxy.ProxyService, error) {
	wire.Build(
		InitializeVerifier,
		InitializeSourceRepository,
		InitializeProcessingService,
		InitializeProxyConfig,
		proxy.NewProxyService,
	)

	return nil, nil
}
