package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/matchers"
	"github.com/arthur-debert/sublsync/pkg/paths"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "SUBLSYNC_"

// Config is the effective sublsync configuration
type Config struct {
	Source       string            `koanf:"source" toml:"source,omitempty"`
	Destination  string            `koanf:"destination" toml:"destination"`
	ProjectsDir  string            `koanf:"projects_dir" toml:"projects_dir"`
	BackupSuffix string            `koanf:"backup_suffix" toml:"backup_suffix"`
	Patterns     matchers.Patterns `koanf:"patterns" toml:"patterns"`
}

// LoadOptions selects which files Load reads
type LoadOptions struct {
	// ConfigFile replaces the default user config path; it must exist when set
	ConfigFile string

	// SourceDir enables loading <SourceDir>/.sublsync.toml
	SourceDir string
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	userPath := opts.ConfigFile
	if userPath == "" {
		userPath = paths.UserConfigPath()
		if err := loadIfExists(k, userPath); err != nil {
			return nil, err
		}
	} else {
		if err := loadFile(k, paths.ExpandHome(userPath)); err != nil {
			return nil, err
		}
	}

	if opts.SourceDir != "" {
		if err := loadIfExists(k, paths.SourceConfigPath(opts.SourceDir)); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// envKey maps SUBLSYNC_PATTERNS_KEYMAP to patterns.keymap and
// SUBLSYNC_PROJECTS_DIR to projects_dir
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "patterns_"); ok {
		return "patterns." + rest
	}
	return key
}

func loadIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", path)
	}
	return loadFile(k, path)
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

// Validate checks the configuration can produce a usable layout
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Destination) == "" {
		return errors.New(errors.ErrConfigValid, "destination is empty")
	}
	if c.BackupSuffix == "" {
		return errors.New(errors.ErrConfigValid, "backup_suffix is empty")
	}
	if err := paths.ValidateProjectsDir(c.ProjectsDir); err != nil {
		return err
	}
	return c.Patterns.Validate()
}
