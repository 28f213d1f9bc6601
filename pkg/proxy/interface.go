package proxy

import (
	"context"

	cacherepositories "github.com/thebartekbanach/imglide/pkg/cache/repositories"
	"github.com/thebartekbanach/imglide/pkg/request"
)

type ProxyService interface {
	// Handle returns the transformed image for req on the given disk,
	// computing it at most once per cache key at a time.
	Handle(ctx context.Context, disk string, req request.ImageRequest) (cacherepositories.CachedImage, error)
	// SplitRequestPath separates a leading whitelisted disk segment from
	// the image path.
	SplitRequestPath(requestPath string) (disk, imagePath string)
	AllowsOrigin(origin string) bool
}
