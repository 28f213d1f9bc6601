package cacherepositories

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed stubs/gitignore.txt
var gitignoreStub []byte

const (
	cacheRootPerm    = 0o777
	sentinelFileName = ".gitignore"
)

// CacheRoot is the directory holding all filesystem cache entries.
// Ensure prepares it at most once per process.
type CacheRoot struct {
	path string
	once sync.Once
	err  error
}

func NewCacheRoot(path string) *CacheRoot {
	return &CacheRoot{path: path}
}

func (r *CacheRoot) Path() string {
	return r.path
}

// Ensure creates the root directory and the sentinel .gitignore. The
// sentinel is written only when missing; an existing one is left untouched.
func (r *CacheRoot) Ensure() error {
	r.once.Do(func() {
		r.err = r.bootstrap()
	})
	return r.err
}

func (r *CacheRoot) bootstrap() error {
	if err := os.MkdirAll(r.path, cacheRootPerm); err != nil {
		return err
	}

	sentinel := filepath.Join(r.path, sentinelFileName)
	file, err := os.OpenFile(sentinel, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return err
	}
	defer file.Close()

	if _, err := file.Write(gitignoreStub); err != nil {
		return err
	}

	log.Info().Str("path", r.path).Msg("cache root initialized")
	return nil
}
