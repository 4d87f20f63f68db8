// Package config loads run settings from defaults, an optional YAML file
// and THEMEGEN_ environment variables, in increasing precedence.
// Command-line flags are applied on top by the cli package.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"

	"github.com/jmylchreest/themegen/internal/discovery"
	"github.com/jmylchreest/themegen/internal/vcs"
)

// EnvPrefix is stripped from environment variables; "__" maps to ".",
// e.g. THEMEGEN_LOG__LEVEL sets log.level.
const EnvPrefix = "THEMEGEN_"

// Config holds the settings of one run.
type Config struct {
	// Source is the directory whose subdirectories are themes.
	Source string `koanf:"source" validate:"required"`

	// Templates is an optional directory of template overrides.
	Templates string `koanf:"templates"`

	// Exclude lists directory names that are never themes.
	Exclude []string `koanf:"exclude"`

	// Git is the git executable.
	Git string `koanf:"git" validate:"required"`

	DryRun bool `koanf:"dry_run"`

	Log Log `koanf:"log"`
}

// Log configures the logger.
type Log struct {
	Level string `koanf:"level" validate:"oneof=trace debug info warn error off"`
	// JSON switches to machine-readable log lines.
	JSON bool `koanf:"json"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Source:  ".",
		Exclude: append([]string(nil), discovery.DefaultExcludes...),
		Git:     vcs.DefaultBinary,
		Log:     Log{Level: "info"},
	}
}

var validate = validator.New()

// Load merges the YAML file at path (skipped when empty) and the environment
// over the defaults, then validates the result.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config file %q: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	// Slices decode into existing elements, so the default list is only
	// filled in when nothing was configured.
	cfg := Default()
	cfg.Exclude = nil
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Exclude == nil {
		cfg.Exclude = Default().Exclude
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings after flags have been applied.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// envKey maps THEMEGEN_LOG__LEVEL to log.level and splits list values.
func envKey(key, value string) (string, any) {
	key = strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(key, EnvPrefix), "__", "."))
	if key == "exclude" {
		return key, splitList(value)
	}
	return key, value
}

func splitList(value string) []string {
	items := []string{}
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
