package cli

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/colplot/pkg/cache"
	"github.com/matzehuels/colplot/pkg/pipeline"
)

// appName is the application name used for cache directories.
const appName = "colplot"

// newRunner creates a pipeline runner backed by the standard cache. With
// noCache set, datasets and artifacts are rebuilt on every invocation.
func newRunner(logger *log.Logger, noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), nil, logger)
}

// newCache opens the file cache, falling back to a null cache when the
// cache directory cannot be resolved or created.
func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// cacheDir returns the cache directory using the XDG standard
// (~/.cache/colplot/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
