package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	cacherepositories "github.com/thebartekbanach/imglide/pkg/cache/repositories"
	"github.com/thebartekbanach/imglide/pkg/config"
	dbconnections "github.com/thebartekbanach/imglide/pkg/connections"
	"github.com/thebartekbanach/imglide/pkg/processor"
	imaginaryprocessor "github.com/thebartekbanach/imglide/pkg/processor/imaginary"
	nativeprocessor "github.com/thebartekbanach/imglide/pkg/processor/native"
	"github.com/thebartekbanach/imglide/pkg/proxy"
	"github.com/thebartekbanach/imglide/pkg/signature"
	"github.com/thebartekbanach/imglide/pkg/source"
)

const connectionTimeout = time.Minute

func InitializeCacheRoot(cfg *config.Config) *cacherepositories.CacheRoot {
	return cacherepositories.NewCacheRoot(cfg.Cache.Path)
}

// InitializeImagesStorage prepares the cache backend. The filesystem root is
// bootstrapped here, before the server accepts any request.
func InitializeImagesStorage(ctx context.Context, cfg *config.Config, root *cacherepositories.CacheRoot) (cacherepositories.CachedImagesStorage, error) {
	switch cfg.Cache.Driver {
	case "minio":
		minioConfig := cfg.Cache.Minio
		conn, err := InitializeMinioConnection(ctx, dbconnections.MinioBlockStorageProductionConnectionConfig{
			Endpoint:  minioConfig.Endpoint,
			AccessKey: minioConfig.AccessKey,
			SecretKey: minioConfig.SecretKey,
			Bucket:    minioConfig.Bucket,
			Location:  minioConfig.Location,
			UseSSL:    minioConfig.UseSSL,
		})
		if err != nil {
			return nil, err
		}

		log.Info().Str("bucket", minioConfig.Bucket).Msg("using minio cache storage")
		return cacherepositories.NewMinioImagesStorage(conn), nil

	default:
		if err := root.Ensure(); err != nil {
			return nil, fmt.Errorf("cannot initialize cache root %s: %w", root.Path(), err)
		}

		log.Info().Str("path", root.Path()).Msg("using filesystem cache storage")
		return cacherepositories.NewFilesystemImagesStorage(root), nil
	}
}

func InitializeMinioConnection(ctx context.Context, minioConfig dbconnections.MinioBlockStorageProductionConnectionConfig) (dbconnections.MinioBlockStorageConnection, error) {
	ctx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()

	if minioConfig.Location == "" {
		minioConfig.Location = "us-east-1"
	}

	conn, err := dbconnections.NewMinioBlockStorageProductionConnection(ctx, minioConfig)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to minio at %s: %w", minioConfig.Endpoint, err)
	}

	return &conn, nil
}

func InitializeSourceRepository(ctx context.Context, cfg *config.Config) (source.Repository, error) {
	disks := make(map[string]source.Backend, len(cfg.Disks))

	for _, name := range cfg.DiskNames() {
		disk := cfg.Disks[name]

		switch disk.Driver {
		case "minio":
			conn, err := InitializeMinioConnection(ctx, dbconnections.MinioBlockStorageProductionConnectionConfig{
				Endpoint:  disk.Endpoint,
				AccessKey: disk.AccessKey,
				SecretKey: disk.SecretKey,
				Bucket:    disk.Bucket,
				Location:  disk.Location,
				UseSSL:    disk.UseSSL,
			})
			if err != nil {
				return nil, fmt.Errorf("disk %s: %w", name, err)
			}
			disks[name] = source.NewMinioBackend(conn, disk.Prefix)

		case "http":
			disks[name] = source.NewHTTPBackend(disk.URL)

		default:
			disks[name] = source.NewLocalBackend(disk.Path)
		}

		log.Info().Str("disk", name).Str("driver", disk.Driver).Msg("disk registered")
	}

	return source.NewRegistry(source.NewLocalBackend(cfg.Source.Path), disks), nil
}

func InitializeProcessingService(cfg *config.Config) processor.ProcessingService {
	if cfg.Processor.Driver == "imaginary" {
		return imaginaryprocessor.NewProcessor(imaginaryprocessor.Config{
			ImaginaryServiceURL: cfg.Processor.ImaginaryURL,
		})
	}

	return nativeprocessor.NewProcessor()
}

func InitializeVerifier(cfg *config.Config) signature.Verifier {
	return signature.NewSigner(cfg.Secure.Secret)
}

func InitializeProxyConfig(cfg *config.Config) proxy.ProxyServiceConfig {
	return proxy.ProxyServiceConfig{
		Disks:             cfg.DiskNames(),
		UseSecureURLs:     cfg.Secure.UseSecureURLs,
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		ProcessingTimeout: cfg.Processor.Timeout,
	}
}

func InitializeInvalidationsDBConnection(ctx context.Context, cfg *config.Config) (dbconnections.InvalidationsDBConnection, func(), error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectionTimeout)
	defer cancel()

	conn, err := dbconnections.NewInvalidationsDBProductionConnection(connectCtx, dbconnections.InvalidationsDBConfig{
		ConnectionString: cfg.Mongo.URI,
		Database:         cfg.Mongo.Database,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("cannot connect to mongodb: %w", err)
	}

	cleanup := func() {
		if err := conn.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("error when disconnecting from mongodb")
		}
	}

	return conn, cleanup, nil
}
