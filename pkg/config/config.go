// Package config loads optional project configuration from a
// .filerank.toml file.
//
// The file is discovered in the first root path of a run (or named
// explicitly via --config). CLI flags override file values; unset
// values fall back to built-in defaults.
//
// Example:
//
//	extensions = [".js", ".ts"]
//	ignore_dirs = ["generated", "fixtures"]
//	deps_first = true
//
//	[cache]
//	ttl = "30m"
//	disabled = false
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/filerank/pkg/errors"
)

// Filename is the config file name probed in the first root path.
const Filename = ".filerank.toml"

// Config holds project-level settings.
type Config struct {
	// Extensions restricts ranking edges to targets with these
	// suffixes. Empty means the provider's full supported set.
	Extensions []string `toml:"extensions"`

	// IgnoreDirs lists directory basenames skipped during discovery,
	// in addition to the provider's built-in skip set.
	IgnoreDirs []string `toml:"ignore_dirs"`

	// DepsFirst makes dependency-first ordering the default.
	DepsFirst bool `toml:"deps_first"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig controls the discovery cache.
type CacheConfig struct {
	// TTL bounds how long cached discovery results stay valid.
	// Zero keeps the built-in default.
	TTL Duration `toml:"ttl"`

	// Disabled turns the discovery cache off entirely.
	Disabled bool `toml:"disabled"`
}

// Duration is a time.Duration that unmarshals from a TOML string such
// as "30m" or "1h".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	if err := errors.ValidateExtensions(cfg.Extensions); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid extensions in %s", path)
	}
	return &cfg, nil
}

// Locate probes the first root path for a config file and returns its
// path. The second return reports whether one was found.
func Locate(roots []string) (string, bool) {
	if len(roots) == 0 {
		return "", false
	}
	root := roots[0]
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		root = filepath.Dir(root)
	}
	path := filepath.Join(root, Filename)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
