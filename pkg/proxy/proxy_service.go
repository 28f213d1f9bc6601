package proxy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/ryanuber/go-glob"
	"github.com/thebartekbanach/imglide/pkg/cache"
	cacherepositories "github.com/thebartekbanach/imglide/pkg/cache/repositories"
	"github.com/thebartekbanach/imglide/pkg/processor"
	"github.com/thebartekbanach/imglide/pkg/request"
	"github.com/thebartekbanach/imglide/pkg/signature"
	"github.com/thebartekbanach/imglide/pkg/source"
	"golang.org/x/sync/singleflight"
)

type ProxyServiceConfig struct {
	Disks          []string
	UseSecureURLs  bool
	AllowedOrigins []string
	// ProcessingTimeout bounds one shared computation. Zero disables it.
	ProcessingTimeout time.Duration
}

type proxyService struct {
	config    ProxyServiceConfig
	disks     map[string]struct{}
	verifier  signature.Verifier
	cache     cache.CacheService
	sources   source.Repository
	processor processor.ProcessingService
	inFlight  singleflight.Group
	now       func() time.Time
}

var _ ProxyService = (*proxyService)(nil)

func NewProxyService(
	config ProxyServiceConfig,
	verifier signature.Verifier,
	cache cache.CacheService,
	sources source.Repository,
	processor processor.ProcessingService,
) ProxyService {
	disks := make(map[string]struct{}, len(config.Disks))
	for _, disk := range config.Disks {
		if disk != "" {
			disks[disk] = struct{}{}
		}
	}

	return &proxyService{
		config:    config,
		disks:     disks,
		verifier:  verifier,
		cache:     cache,
		sources:   sources,
		processor: processor,
		now:       time.Now,
	}
}

func (p *proxyService) Handle(ctx context.Context, rawDisk string, req request.ImageRequest) (cacherepositories.CachedImage, error) {
	disk := p.normalizeDisk(rawDisk)
	imagePath := req.Path()
	params := request.StripEmpty(req.Params())

	if p.config.UseSecureURLs {
		provided := params.Get(request.SignatureParam)
		if !p.verifier.Verify(signature.SigningPath(disk, imagePath), params, provided) {
			return cacherepositories.CachedImage{}, ErrInvalidSignature
		}
	}

	spec, err := processor.ParseSpec(params)
	if err != nil {
		return cacherepositories.CachedImage{}, err
	}

	key := request.NewCacheKey(disk, imagePath, params)
	logger := log.With().Str("disk", disk).Str("path", imagePath).Str("key", key.Encoded()).Logger()

	image, err := p.cache.Get(ctx, disk, imagePath, key)
	if err == nil {
		logger.Debug().Msg("cache hit")
		return image, nil
	}
	if !errors.Is(err, cache.ErrEntryNotFound) {
		logger.Warn().Err(err).Msg("cache read failed, recomputing image")
	}

	// the computation must survive the first caller giving up, so other
	// waiters and the cache still get the result
	results := p.inFlight.DoChan(key.String(), func() (interface{}, error) {
		computeCtx := context.WithoutCancel(ctx)
		if p.config.ProcessingTimeout > 0 {
			var cancel context.CancelFunc
			computeCtx, cancel = context.WithTimeout(computeCtx, p.config.ProcessingTimeout)
			defer cancel()
		}

		return p.produce(computeCtx, disk, imagePath, key, spec)
	})

	select {
	case <-ctx.Done():
		return cacherepositories.CachedImage{}, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return cacherepositories.CachedImage{}, result.Err
		}
		if result.Shared {
			logger.Debug().Msg("shared in-flight result")
		}
		return result.Val.(cacherepositories.CachedImage), nil
	}
}

func (p *proxyService) produce(
	ctx context.Context,
	disk, imagePath string,
	key request.CacheKey,
	spec processor.Spec,
) (cacherepositories.CachedImage, error) {
	logger := log.With().Str("disk", disk).Str("path", imagePath).Str("key", key.Encoded()).Logger()

	// an earlier leader may have finished between our miss and this call
	if image, err := p.cache.Get(ctx, disk, imagePath, key); err == nil {
		return image, nil
	}

	original, err := p.sources.Fetch(ctx, disk, imagePath)
	if err != nil {
		return cacherepositories.CachedImage{}, err
	}

	result, err := p.processor.ProcessImage(ctx, original, spec)
	if err != nil {
		return cacherepositories.CachedImage{}, fmt.Errorf("%w: %w", ErrProcessingFailed, err)
	}

	image := cacherepositories.CachedImage{
		Key:         key,
		Disk:        disk,
		ImagePath:   imagePath,
		Data:        result.Data,
		ContentType: result.ContentType,
		CreatedAt:   p.now().UTC(),
	}

	if err := p.cache.Save(ctx, image); err != nil {
		logger.Warn().Err(err).Msg("cannot save image to cache")
	} else {
		logger.Info().Int("bytes", len(image.Data)).Msg("image transformed and cached")
	}

	return image, nil
}

func (p *proxyService) SplitRequestPath(requestPath string) (string, string) {
	trimmed := strings.TrimLeft(requestPath, "/")

	segments := strings.SplitN(trimmed, "/", 2)
	if len(segments) == 2 && segments[1] != "" {
		if _, known := p.disks[segments[0]]; known {
			return segments[0], segments[1]
		}
	}

	return "", trimmed
}

func (p *proxyService) AllowsOrigin(origin string) bool {
	if origin == "" || len(p.config.AllowedOrigins) == 0 {
		return true
	}

	for _, allowedOrigin := range p.config.AllowedOrigins {
		if glob.Glob(allowedOrigin, origin) {
			return true
		}
	}

	return false
}

// normalizeDisk maps anything outside the whitelist to the default disk.
func (p *proxyService) normalizeDisk(disk string) string {
	if _, known := p.disks[disk]; known {
		return disk
	}
	return ""
}

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrProcessingFailed = errors.New("image processing failed")
)
