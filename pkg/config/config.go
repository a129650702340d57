// Package config loads the crocheo configuration file.
//
// Configuration lives in a TOML file, by default at
// ~/.config/crocheo/config.toml. Every value has a sensible default, so a
// missing file is not an error. CLI flags override file values; the file
// overrides built-in defaults.
//
// Example:
//
//	[defaults]
//	rounds = 6
//	pitch = "proportional"
//	palette = "meadow"
//
//	[server]
//	addr = ":8080"
//
//	[cache]
//	backend = "redis"
//
//	[cache.redis]
//	addr = "localhost:6379"
//
//	[[palettes]]
//	name = "hand-dyed"
//	colors = ["#d8315b", "#3e92cc", "#fffaff"]
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sunnyyao/crocheo-blog/pkg/errors"
	"github.com/sunnyyao/crocheo-blog/pkg/palette"
)

// Cache backend names.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Store backend names.
const (
	StoreBackendMemory = "memory"
	StoreBackendMongo  = "mongo"
)

// Config is the full configuration file.
type Config struct {
	Defaults Defaults          `toml:"defaults"`
	Server   Server            `toml:"server"`
	Cache    Cache             `toml:"cache"`
	Store    Store             `toml:"store"`
	Palettes []palette.Palette `toml:"palettes"`
}

// Defaults are the build parameters used when flags don't specify them.
type Defaults struct {
	Rounds           int     `toml:"rounds"`
	FoundationRadius float64 `toml:"foundation_radius"`
	Spacing          float64 `toml:"spacing"`
	StitchHeight     float64 `toml:"stitch_height"`
	StitchWidth      float64 `toml:"stitch_width"`
	Pitch            string  `toml:"pitch"`
	Palette          string  `toml:"palette"`
	ColorMode        string  `toml:"color_mode"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Cache selects and configures the stage cache backend.
type Cache struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
	Redis   Redis  `toml:"redis"`
}

// Redis configures the redis cache backend.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Store selects and configures the saved-pattern store backend.
type Store struct {
	Backend       string `toml:"backend"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Defaults: Defaults{
			Pitch:     "fixed",
			Palette:   palette.DefaultName,
			ColorMode: string(palette.ModeSequential),
		},
		Server: Server{Addr: ":8080"},
		Cache: Cache{
			Backend: CacheBackendFile,
			Redis:   Redis{Addr: "localhost:6379"},
		},
		Store: Store{Backend: StoreBackendMemory},
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "crocheo", "config.toml"), nil
}

// Load reads the config file at path, layered over the defaults.
// An empty path means the standard location; a missing file yields the
// defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks backend selections and palette definitions.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheBackendFile, CacheBackendRedis, CacheBackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid cache backend: %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case StoreBackendMemory, StoreBackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"invalid store backend: %q (must be one of: memory, mongo)", c.Store.Backend)
	}
	if c.Store.Backend == StoreBackendMongo && c.Store.MongoURI == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "store backend mongo requires mongo_uri")
	}
	for _, p := range c.Palettes {
		if p.Name == "" || len(p.Colors) == 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "palette entries need a name and colors")
		}
	}
	return nil
}

// RegisterPalettes adds the file's custom palettes to the registry.
func (c *Config) RegisterPalettes() error {
	for _, p := range c.Palettes {
		if err := palette.Register(p); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "register palette %q", p.Name)
		}
	}
	return nil
}
