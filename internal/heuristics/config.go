package heuristics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the per-profile heuristics file inside the installation's
// xoxide directory.
const ConfigFileName = "heuristics.toml"

// ErrNoConfig indicates no heuristics file exists for the profile; callers
// are expected to fall back to DefaultConfig rather than abort.
var ErrNoConfig = errors.New("heuristics config not found")

// ConfigPath returns the per-installation, per-profile location of the
// heuristics file. An empty profile maps to "default".
func ConfigPath(installRoot, profile string) string {
	if profile == "" {
		profile = "default"
	}
	return filepath.Join(installRoot, "Output", "xoxide", profile, ConfigFileName)
}

// LoadConfig reads the heuristics file at path. A missing file yields
// ErrNoConfig; parse failures surface wrapped so the caller can distinguish
// a hand-edit gone wrong from a fresh install.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, ErrNoConfig
		}
		return Config{}, fmt.Errorf("heuristics: read %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("heuristics: parse %s: %w", path, err)
	}
	if cfg.Overrides == nil {
		cfg.Overrides = make(map[string]uint8)
	}
	return cfg, nil
}

// LoadOrDefault loads the profile's config, substituting the shipped
// defaults when no file exists yet.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, ErrNoConfig) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// SaveConfig writes the config to path, creating parent directories.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("heuristics: create config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("heuristics: encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("heuristics: write %s: %w", path, err)
	}
	return nil
}

// MergeOverrides folds src's pins into dst, src winning on conflicts. Used
// when importing another profile's pins.
func MergeOverrides(dst, src map[string]uint8) map[string]uint8 {
	if dst == nil {
		dst = make(map[string]uint8, len(src))
	}
	for name, score := range src {
		dst[name] = score
	}
	return dst
}
