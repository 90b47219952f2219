package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colplot/pkg/cache"
	"github.com/matzehuels/colplot/pkg/gallery"
	"github.com/matzehuels/colplot/pkg/pipeline"
	"github.com/matzehuels/colplot/pkg/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string // listen address
	redis    string // redis address for the artifact cache
	mongo    string // mongodb URI for the gallery store
	cacheDir string // file cache directory override
	noCache  bool   // disable artifact caching
}

// newServeCmd creates the serve command running the HTTP figure server.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: server.DefaultAddr}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP figure server",
		Long: `Serve starts an HTTP server that renders figures on demand and keeps a
gallery of rendered figures.

By default artifacts are cached on disk and gallery records live in
memory. Point --redis at a Redis server for a shared artifact cache, and
--mongo at a MongoDB deployment for a persistent gallery.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "redis address for the artifact cache (e.g. localhost:6379)")
	cmd.Flags().StringVar(&opts.mongo, "mongo", "", "mongodb URI for the gallery store (e.g. mongodb://localhost:27017)")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "artifact cache directory (default ~/.cache/colplot)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable artifact caching")

	return cmd
}

// runServe wires the cache, store, and runner together and serves until the
// context is cancelled.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	c, cacheDesc, err := serveCache(ctx, opts)
	if err != nil {
		return err
	}
	defer c.Close()

	store, storeDesc, err := serveStore(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	// Server keys get their own namespace so gallery deletes never evict
	// entries written by plain CLI renders sharing the cache directory.
	keyer := cache.NewScopedKeyer(nil, "server:")

	srv := server.New(server.Config{
		Addr:   opts.addr,
		Runner: pipeline.NewRunner(c, keyer, logger),
		Store:  store,
		Cache:  c,
		Logger: logger,
	})

	printInfo("Starting colplot server")
	printKeyValue("Address", opts.addr)
	printKeyValue("Cache", cacheDesc)
	printKeyValue("Gallery", storeDesc)
	printLink(serverURL(opts.addr))

	return srv.ListenAndServe(ctx)
}

// serveCache selects the artifact cache backend from flags.
func serveCache(ctx context.Context, opts *serveOpts) (cache.Cache, string, error) {
	if opts.noCache {
		return cache.NewNullCache(), "disabled", nil
	}
	if opts.redis != "" {
		c, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: opts.redis})
		if err != nil {
			return nil, "", err
		}
		return c, "redis " + opts.redis, nil
	}

	dir := opts.cacheDir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			return nil, "", err
		}
		dir = d
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, "", err
	}
	return c, "file " + dir, nil
}

// serveStore selects the gallery store backend from flags.
func serveStore(ctx context.Context, opts *serveOpts) (gallery.Store, string, error) {
	if opts.mongo != "" {
		s, err := gallery.NewMongoStore(ctx, gallery.MongoConfig{URI: opts.mongo})
		if err != nil {
			return nil, "", err
		}
		return s, "mongodb " + opts.mongo, nil
	}
	return gallery.NewMemoryStore(), "memory", nil
}

// serverURL turns a listen address into a browsable URL.
func serverURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
