// Package config holds the runtime configuration of the Aardvark tools.
//
// Configuration is read from aardvark.yaml:
//
//	files:
//	  missing: empty      # "error" (default) or "empty"
//	random:
//	  seed: 42            # 0 or omitted: seed from system entropy
//	log:
//	  level: debug        # logrus level name, default "warn"
//
// The CLI layers environment variables and flags on top of the file.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the top-level aardvark.yaml document.
type Config struct {
	Files  FilesConfig  `yaml:"files"`
	Random RandomConfig `yaml:"random"`
	Log    LogConfig    `yaml:"log"`
}

// FilesConfig controls the filesystem helpers.
type FilesConfig struct {
	// Missing selects what reading a nonexistent file yields:
	// MissingError surfaces an I/O error, MissingEmpty yields "".
	Missing string `yaml:"missing,omitempty"`
}

// RandomConfig controls the random utilities.
type RandomConfig struct {
	// Seed makes the generator deterministic when non-zero.
	Seed uint64 `yaml:"seed,omitempty"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Files: FilesConfig{Missing: MissingError},
		Log:   LogConfig{Level: "warn"},
	}
}

// Load reads path and merges it over the defaults. A nonexistent path is
// not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return cfg, nil
}

// Parse decodes YAML data into cfg and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(err, "invalid YAML")
	}
	cfg.normalize()
	return cfg.Validate()
}

func (c *Config) normalize() {
	c.Files.Missing = strings.ToLower(strings.TrimSpace(c.Files.Missing))
	if c.Files.Missing == "" {
		c.Files.Missing = MissingError
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Files.Missing {
	case MissingError, MissingEmpty:
	default:
		return errors.Errorf("files.missing: expected %q or %q, got %q", MissingError, MissingEmpty, c.Files.Missing)
	}
	for _, lvl := range LogLevels {
		if c.Log.Level == lvl {
			return nil
		}
	}
	return errors.Errorf("log.level: unknown level %q", c.Log.Level)
}

// Set applies a single overlay value by key. Keys are the Key* constants.
func (c *Config) Set(key string, value any) error {
	switch key {
	case KeySeed:
		switch v := value.(type) {
		case uint64:
			c.Random.Seed = v
		case int64:
			c.Random.Seed = uint64(v)
		case int:
			c.Random.Seed = uint64(v)
		default:
			return errors.Errorf("%s: unexpected %T", key, value)
		}
	case KeyMissing:
		s, ok := value.(string)
		if !ok {
			return errors.Errorf("%s: unexpected %T", key, value)
		}
		c.Files.Missing = s
	case KeyLogLevel:
		s, ok := value.(string)
		if !ok {
			return errors.Errorf("%s: unexpected %T", key, value)
		}
		c.Log.Level = s
	default:
		return errors.Errorf("unknown configuration key %q", key)
	}
	c.normalize()
	return c.Validate()
}
