package cli

import (
	"github.com/spf13/cobra"

	"github.com/sunnyyao/crocheo-blog/internal/server"
	pkgcache "github.com/sunnyyao/crocheo-blog/pkg/cache"
	"github.com/sunnyyao/crocheo-blog/pkg/config"
	"github.com/sunnyyao/crocheo-blog/pkg/pipeline"
	"github.com/sunnyyao/crocheo-blog/pkg/store"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pattern API over HTTP",
		Long: `Serve runs the crocheo HTTP API. The cache backend (file, redis, or
none) and the pattern store backend (memory or mongo) come from the config
file; --addr overrides the configured listen address.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			stageCache, err := serverCache(cmd, cfg)
			if err != nil {
				return err
			}

			st, err := serverStore(cmd, cfg)
			if err != nil {
				return err
			}
			defer st.Close(cmd.Context())
			prog.done("Initialized cache and store backends")

			srv := server.New(server.Config{
				Addr:   addr,
				Logger: logger,
				Store:  st,
				Runner: pipeline.NewRunner(stageCache, pkgcache.NewScopedKeyer(nil, "srv:"), logger),
			})
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")

	return cmd
}

// serverCache builds the configured cache backend.
func serverCache(cmd *cobra.Command, cfg config.Config) (pkgcache.Cache, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		return pkgcache.NewRedisCache(cmd.Context(), pkgcache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	case config.CacheBackendNone:
		return pkgcache.NewNullCache(), nil
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return pkgcache.NewNullCache(), nil
			}
			dir = d
		}
		return pkgcache.NewFileCache(dir)
	}
}

// serverStore builds the configured pattern store backend.
func serverStore(cmd *cobra.Command, cfg config.Config) (store.Store, error) {
	if cfg.Store.Backend == config.StoreBackendMongo {
		return store.NewMongoStore(cmd.Context(), store.MongoConfig{
			URI:      cfg.Store.MongoURI,
			Database: cfg.Store.MongoDatabase,
		})
	}
	return store.NewMemoryStore(), nil
}
