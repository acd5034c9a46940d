// Package config loads coho's configuration from TOML files.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "coho"

type Config struct {
	// Tagger tunes the scrape post-processing and combining behavior.
	Tagger TaggerConfig `koanf:"tagger"`

	// Cache settings for the scrape cache.
	Cache CacheConfig `koanf:"cache"`
}

// TaggerConfig holds metadata processing settings.
type TaggerConfig struct {
	BlacklistedGenres      []string `koanf:"blacklisted_genres"`       // genres dropped at scrape time
	StripUselessVersions   *bool    `koanf:"strip_useless_versions"`   // strip "(Original Mix)" noise (default: true)
	VariousArtistThreshold int      `koanf:"various_artist_threshold"` // remixer count for a generic "(Remixed)" suffix (default: 4)
}

// CacheConfig holds scrape-cache settings.
type CacheConfig struct {
	Path    string `koanf:"path"`     // database path (default: under the user data dir)
	TTLDays int    `koanf:"ttl_days"` // entry lifetime in days (default: 7)
}

// Load reads config files in priority order (later files win) and applies
// defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

func configPaths() []string {
	paths := []string{}

	// 1. ~/.config/coho/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName, "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func applyDefaults(cfg *Config) {
	if cfg.Tagger.BlacklistedGenres == nil {
		cfg.Tagger.BlacklistedGenres = []string{"Soundtrack", "Asian Music"}
	}
	if cfg.Tagger.VariousArtistThreshold <= 0 {
		cfg.Tagger.VariousArtistThreshold = 4
	}
	if cfg.Cache.TTLDays <= 0 {
		cfg.Cache.TTLDays = 7
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = filepath.Join(xdg.DataHome, appName, "scrapes.db")
	}
}

// StripUselessVersions returns the setting with its default applied.
func (c *TaggerConfig) StripUselessVersionsOrDefault() bool {
	if c.StripUselessVersions == nil {
		return true
	}
	return *c.StripUselessVersions
}

// CacheTTL returns the cache entry lifetime as a duration.
func (c *CacheConfig) CacheTTL() time.Duration {
	return time.Duration(c.TTLDays) * 24 * time.Hour
}
