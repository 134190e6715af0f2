package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/sublsync/pkg/errors"
	"github.com/arthur-debert/sublsync/pkg/filesystem"
	toml "github.com/pelletier/go-toml/v2"
)

// Encode renders the configuration as TOML
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.Bytes(), nil
}

// WriteFile atomically writes the configuration to path
func WriteFile(cfg *Config, path string) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(path))
	}
	if err := filesystem.WriteFileAtomic(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}
