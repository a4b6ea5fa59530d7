// Package config loads runtime configuration for an xoxide session from
// .xoxide.yaml, XOXIDE_* environment variables, and CLI flags, in that
// order of increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all app-level settings. The heuristic rule set is not here:
// it is domain data persisted per profile, not session configuration.
type Config struct {
	// XPlaneRoot is the installation root containing Custom Scenery.
	XPlaneRoot string `mapstructure:"xplane_root"`
	// Profile selects the per-profile heuristics and override map.
	Profile string `mapstructure:"profile"`
	// RegionFocus nudges packs for one region a notch earlier in the order.
	RegionFocus string `mapstructure:"region_focus"`
	// CachePath overrides the descriptor cache location.
	CachePath string `mapstructure:"cache_path"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("xplane_root", "")
	viper.SetDefault("profile", "default")
	viper.SetDefault("region_focus", "")
	viper.SetDefault("cache_path", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// CustomSceneryDir returns the Custom Scenery directory of the installation.
func (c Config) CustomSceneryDir() string {
	return filepath.Join(c.XPlaneRoot, "Custom Scenery")
}

// ManifestPath returns the scenery_packs.ini location.
func (c Config) ManifestPath() string {
	return filepath.Join(c.CustomSceneryDir(), "scenery_packs.ini")
}

// ResolvedCachePath returns the descriptor cache path, defaulting to the
// installation's xoxide output directory.
func (c Config) ResolvedCachePath() string {
	if c.CachePath != "" {
		return c.CachePath
	}
	return filepath.Join(c.XPlaneRoot, "Output", "xoxide", "descriptors.db")
}

// Validate checks that the configured installation root exists and looks
// like an X-Plane install.
func (c Config) Validate() error {
	if c.XPlaneRoot == "" {
		return fmt.Errorf("config: xplane_root not set (flag --root, env XOXIDE_XPLANE_ROOT, or .xoxide.yaml)")
	}
	if _, err := os.Stat(c.CustomSceneryDir()); err != nil {
		return fmt.Errorf("config: no Custom Scenery under %s: %w", c.XPlaneRoot, err)
	}
	return nil
}
