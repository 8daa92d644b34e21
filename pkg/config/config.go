// Package config loads patchup's runtime configuration. Values are
// layered: built-in defaults, then an optional config file, then
// PATCHUP_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/patchup/pkg/errors"
	"github.com/arthur-debert/patchup/pkg/logging"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "PATCHUP_"

// candidateFiles are the config file names probed in the working
// directory when no explicit path is given, first hit wins.
var candidateFiles = []string{
	".patchup.toml",
	"patchup.toml",
	".patchup.yaml",
	"patchup.yaml",
}

// Config holds the runtime configuration for a patchup run.
type Config struct {
	// TempDir is the working directory the patching toolchain drops
	// its artifacts into, including the patch manifest.
	TempDir string `koanf:"temp_dir"`

	// ManifestFile is the manifest file name inside TempDir.
	ManifestFile string `koanf:"manifest_file"`
}

// ManifestPath returns the patch manifest location for this run.
func (c *Config) ManifestPath() string {
	return filepath.Join(c.TempDir, c.ManifestFile)
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"temp_dir":      filepath.Join(xdg.CacheHome, "patchup"),
		"manifest_file": "patches.json",
	}
}

// Load builds the configuration. When path is non-empty that file
// must exist and parse; otherwise the candidate files in the working
// directory are probed and silently skipped when absent.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default configuration")
	}

	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
				WithDetail("path", path)
		}
	} else {
		for _, candidate := range candidateFiles {
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			if err := k.Load(file.Provider(candidate), parserFor(candidate)); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", candidate).
					WithDetail("path", candidate)
			}
			logger.Debug().Str("path", candidate).Msg("Loaded config file")
			break
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	logger.Debug().
		Str("tempDir", cfg.TempDir).
		Str("manifestFile", cfg.ManifestFile).
		Msg("Configuration loaded")

	return &cfg, nil
}

// parserFor picks the koanf parser by file extension. TOML is the
// default, matching the candidate list.
func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
